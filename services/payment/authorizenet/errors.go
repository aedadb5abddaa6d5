package authorizenet

import "errors"

var (
    // ErrProfileNotFound is returned when the gateway answer lacks the
    // expected messages shape, which in practice means the gateway was
    // unreachable or the profile does not exist.
    ErrProfileNotFound = errors.New("unable to retrieve payment data")

    // ErrMalformedResponse is returned when a response decodes but holds
    // neither branch of an expected union, such as a payment profile that
    // is neither a credit card nor a bank account.
    ErrMalformedResponse = errors.New("malformed gateway response")
)

// GatewayError is a non-Ok result from the gateway. Message carries the
// vendor's own text when one was supplied, otherwise the raw result code.
type GatewayError struct {
    Code    string
    Message string
}

func (e *GatewayError) Error() string {
    if e.Message != "" {
        return e.Message
    }
    return e.Code
}

// newGatewayError builds a GatewayError from a messages block, falling
// back to the result code when the gateway sent no message text.
func newGatewayError(messages MessagesType) *GatewayError {
    ge := &GatewayError{Code: messages.ResultCode}
    if len(messages.Message) > 0 {
        ge.Code = messages.Message[0].Code
        ge.Message = messages.Message[0].Text
    }
    return ge
}

// IsGatewayError reports whether err is a gateway-result failure and
// returns it when so.
func IsGatewayError(err error) (*GatewayError, bool) {
    var ge *GatewayError
    if errors.As(err, &ge) {
        return ge, true
    }
    return nil, false
}
