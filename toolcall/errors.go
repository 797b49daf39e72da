package toolcall

import "fmt"

// InvalidRecordError reports a malformed Record.
type InvalidRecordError struct {
	Field   string `json:"field"`   // Field that failed validation
	Message string `json:"message"` // Human-readable error message
}

// Error implements the error interface for InvalidRecordError.
func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid tool call record: field '%s': %s", e.Field, e.Message)
}
