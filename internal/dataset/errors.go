package dataset

import (
	"errors"
	"fmt"
)

// ErrFileNotFound is returned when the input path does not exist or a
// directory holds no dataset files.
var ErrFileNotFound = errors.New("dataset file not found")

// MissingFieldError reports a required column that is absent from the header
// or empty in a row. Line is 1 for a header problem.
type MissingFieldError struct {
	File  string
	Line  int
	Field string
}

func (e *MissingFieldError) Error() string {
	if e.Line <= 1 {
		return fmt.Sprintf("%s: missing required column %q", e.File, e.Field)
	}
	return fmt.Sprintf("%s:%d: missing required field %q", e.File, e.Line, e.Field)
}
