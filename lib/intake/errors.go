package intake

import "github.com/pkg/errors"

// ValidationError marks missing or invalid required input. Controllers map
// it to HTTP 400; every other pipeline error surfaces as a generic 500.
type ValidationError struct {
	msg string
}

func (e ValidationError) Error() string {
	return e.msg
}

func NewValidationError(msg string) error {
	return ValidationError{msg: msg}
}

func IsValidationError(err error) bool {
	var vErr ValidationError
	return errors.As(err, &vErr)
}
