package forms

import (
    "fmt"
    "strconv"
)

// A Validator checks one field value and returns a message describing the
// failure, or an empty string when the value passes.
type Validator func(value string) string

// ExactLength requires the value to be exactly expected characters long.
func ExactLength(expected int) Validator {
    return func(value string) string {
        if len(value) != expected {
            return fmt.Sprintf("%s must be exactly %d chars long", value, expected)
        }
        return ""
    }
}

// LengthRange requires the value length to fall inside [min, max].
func LengthRange(min, max int) Validator {
    return func(value string) string {
        length := len(value)
        if length < min || length > max {
            return fmt.Sprintf("%s must be of length >= %d and <= %d. Input was of length %d",
                value, min, max, length)
        }
        return ""
    }
}

// IsInteger requires the value to parse as a whole number.
func IsInteger(value string) string {
    if _, err := strconv.Atoi(value); err != nil {
        return fmt.Sprintf("%s must be an integer", value)
    }
    return ""
}

// MaxLength caps the value length.
func MaxLength(max int) Validator {
    return func(value string) string {
        if len(value) > max {
            return fmt.Sprintf("value must be at most %d chars long, got %d", max, len(value))
        }
        return ""
    }
}

// Required rejects empty values.
func Required(value string) string {
    if value == "" {
        return "this field is required"
    }
    return ""
}

// Luhn rejects card numbers that fail the Luhn checksum.
func Luhn(cardNumber string) string {
    sum := 0
    isEven := len(cardNumber)%2 == 0

    for i, r := range cardNumber {
        digit := int(r - '0')
        if digit < 0 || digit > 9 {
            return "card number must contain only digits"
        }

        if isEven == (i%2 == 0) {
            digit *= 2
            if digit > 9 {
                digit -= 9
            }
        }
        sum += digit
    }

    if sum%10 != 0 {
        return "card number failed checksum"
    }
    return ""
}
