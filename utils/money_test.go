package utils

import (
    "testing"

    "github.com/shopspring/decimal"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
    amount, err := ParseAmount("49.95")
    require.NoError(t, err)
    assert.Equal(t, "49.95", amount.StringFixed(2))

    amount, err = ParseAmount("100")
    require.NoError(t, err)
    assert.Equal(t, "100.00", amount.StringFixed(2))
}

func TestParseAmountRejectsBadValues(t *testing.T) {
    tests := []struct {
        name  string
        input string
    }{
        {"empty", ""},
        {"not a number", "ten dollars"},
        {"zero", "0"},
        {"negative", "-5.00"},
        {"three decimals", "1.005"},
    }
    for _, tt := range tests {
        t.Run(tt.name, func(t *testing.T) {
            _, err := ParseAmount(tt.input)
            assert.Error(t, err)
        })
    }
}

func TestFormatAmount(t *testing.T) {
    assert.Equal(t, "49.95", FormatAmount(decimal.NewFromFloat(49.95)))
    assert.Equal(t, "100.00", FormatAmount(decimal.NewFromInt(100)))
    assert.Equal(t, "0.50", FormatAmount(decimal.NewFromFloat(0.5)))
}

func TestGenerateReferenceID(t *testing.T) {
    ref := GenerateReferenceID()
    assert.Len(t, ref, 20)
    assert.NotEqual(t, ref, GenerateReferenceID())
}
