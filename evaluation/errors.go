package evaluation

import "fmt"

// InvalidInputError reports a malformed record passed to a check.
type InvalidInputError struct {
	Side  string // "observed" or "expected"
	Index int
	Err   error
}

// Error implements the error interface for InvalidInputError.
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s tool call at index %d: %v", e.Side, e.Index, e.Err)
}

// Unwrap returns the underlying record error.
func (e *InvalidInputError) Unwrap() error { return e.Err }
