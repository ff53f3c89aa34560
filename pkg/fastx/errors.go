// 12 Mar 2026

package fastx

import (
	"errors"
	"fmt"
)

// ErrTruncated marks the subset of format errors where the input
// stopped in the middle of a record. Check for it with errors.Is.
var ErrTruncated = errors.New("truncated record")

// A FormatError says the input did not look like fasta or fastq.
// Line is the 1-based line where we noticed and Byte is the offset of
// the start of that line, counted from the start of the stream, so
// before any decompression games the caller might have played.
// After a FormatError the reader's position is not defined. Do not
// keep calling Next unless the reader was built with ResyncOnErr.
type FormatError struct {
	Line int64
	Byte int64
	Msg  string
	kind error // ErrTruncated or nil
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d (byte %d): %s", e.Line, e.Byte, e.Msg)
}

func (e *FormatError) Unwrap() error { return e.kind }
