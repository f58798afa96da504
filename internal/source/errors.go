package source

import (
	"errors"
	"fmt"
)

// ErrUnsupportedFormat indicates a source file extension that Load cannot read.
var ErrUnsupportedFormat = errors.New("unsupported source format")

// ErrMissingColumn indicates a cleaned table without one of its header columns.
var ErrMissingColumn = errors.New("missing column")

// ReadError wraps a failure to read a source file.
type ReadError struct {
	Path   string
	Format string // "csv", "tsv", "xlsx", "cleaned"
	Err    error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s source %q: %v", e.Format, e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
