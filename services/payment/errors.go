package payment

import (
    "errors"
    "fmt"
)

// ErrValidation marks a local precondition failure: bad enum value,
// missing contact details, an account without a saved profile ID. These
// never reach the gateway and are never retried.
var ErrValidation = errors.New("validation error")

func validationErrorf(format string, args ...interface{}) error {
    return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
