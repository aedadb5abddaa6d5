package utils

import (
    "fmt"

    "github.com/shopspring/decimal"
)

// ParseAmount parses a charge amount from its request representation. The
// gateway rejects zero and negative amounts, so they are refused here.
func ParseAmount(s string) (decimal.Decimal, error) {
    amount, err := decimal.NewFromString(s)
    if err != nil {
        return decimal.Zero, fmt.Errorf("invalid amount %q: %v", s, err)
    }
    if amount.LessThanOrEqual(decimal.Zero) {
        return decimal.Zero, fmt.Errorf("amount must be greater than zero")
    }
    if amount.Exponent() < -2 {
        return decimal.Zero, fmt.Errorf("amount must have at most two decimal places")
    }
    return amount, nil
}

// FormatAmount renders an amount with two decimal places for display and
// receipts.
func FormatAmount(amount decimal.Decimal) string {
    return amount.StringFixed(2)
}
