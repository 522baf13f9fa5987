package figure

import (
	"errors"
	"fmt"
)

// ErrEmptyDataset is returned when there is nothing to chart: no records
// were loaded, or the single-sense policy removed every word.
var ErrEmptyDataset = errors.New("empty dataset")

// WriteError reports an output directory or figure file that could not be
// written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
