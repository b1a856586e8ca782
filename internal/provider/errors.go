package provider

import (
	"errors"
	"fmt"
)

// ValidationError reports bad or missing input, including gateway-side
// rejections of a create request. The gateway's own message is preserved
// verbatim.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func WrapValidationError(message string, err error) *ValidationError {
	return &ValidationError{Message: message, Err: err}
}

// InvalidStateError reports an operation attempted against a payment whose
// current gateway status is incompatible. The offending status is always
// named in the message.
type InvalidStateError struct {
	Op     string
	Status string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s payment in status %q", e.Op, e.Status)
}

func NewInvalidStateError(op, status string) *InvalidStateError {
	return &InvalidStateError{Op: op, Status: status}
}

// GatewayError wraps a network, auth or remote failure. The upstream message
// is kept intact; this layer never retries.
type GatewayError struct {
	Gateway string
	Op      string
	Message string
	Err     error
}

func (e *GatewayError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s %s failed: %s", e.Gateway, e.Op, e.Message)
	}
	return fmt.Sprintf("%s %s failed: %v", e.Gateway, e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

func NewGatewayError(gateway, op string, err error) *GatewayError {
	return &GatewayError{Gateway: gateway, Op: op, Err: err}
}

func IsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	ok := errors.As(err, &ve)
	return ve, ok
}

func IsInvalidStateError(err error) (*InvalidStateError, bool) {
	var se *InvalidStateError
	ok := errors.As(err, &se)
	return se, ok
}

func IsGatewayError(err error) (*GatewayError, bool) {
	var ge *GatewayError
	ok := errors.As(err, &ge)
	return ge, ok
}
