package config

import "errors"

// ErrInvalid is wrapped by every ValidationError.
var ErrInvalid = errors.New("invalid config")

type ValidationError struct {
	Field string
	msg   string
}

func (e *ValidationError) Error() string {
	return "config: " + e.Field + ": " + e.msg
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalid
}
