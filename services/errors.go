package services

import "fmt"

// MissingFieldError reports a required field absent from a source record.
// It aborts the entire run: a partially extracted batch would break the
// cross-file deduplication guarantees of the staged output.
type MissingFieldError struct {
	File  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing required field %s", e.File, e.Field)
}

// FormatError reports a timestamp that does not match the expected token
// structure. Fatal to the run, same propagation as MissingFieldError.
type FormatError struct {
	Value  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed timestamp %q: %s", e.Value, e.Reason)
}
