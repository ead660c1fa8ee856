package frame

import (
	"errors"
	"fmt"
)

var (
	ErrDirNotFound   = errors.New("frame: directory not found")
	ErrCountMismatch = errors.New("frame: binary and descriptor file counts differ")
	ErrNoIndex       = errors.New("frame: no binary file has a numeric index")
	ErrTruncated     = errors.New("frame: declared length exceeds remaining bytes")
	ErrFrameTooLarge = errors.New("frame: declared length exceeds limit")
	ErrBadLine       = errors.New("frame: malformed descriptor line")
)

// LineError describes a descriptor line that was skipped.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}
