package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDecode       = errors.New("failed to decode pull requests")
	ErrMissingField = errors.New("missing required field")
)

// DecodeError reports why a pull request list could not be decoded.
// Index is -1 when the document itself is malformed.
type DecodeError struct {
	Err   error
	Field string
	Index int
}

func (e *DecodeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%v: %v", ErrDecode, e.Err)
	}
	if e.Field == "" {
		return fmt.Sprintf("%v: record %d: %v", ErrDecode, e.Index, e.Err)
	}
	return fmt.Sprintf("%v: record %d: field %q: %v", ErrDecode, e.Index, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrDecode) match any DecodeError
func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
