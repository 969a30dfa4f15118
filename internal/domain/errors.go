package domain

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is returned when an input does not have the expected textual shape.
var ErrMalformedInput = errors.New("malformed input")

// LookupError is returned when a collaborator call fails or yields no usable data.
type LookupError struct {
	Op  string // e.g. "fetch timeline", "describe issue"
	ID  string // issue id or project; may be empty
	Err error
}

func (e *LookupError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.ID, e.Err)
}

func (e *LookupError) Unwrap() error {
	return e.Err
}
