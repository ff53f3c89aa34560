// 12 Mar 2026
// Little hooks so tests outside the package can poke at things.

package fastx

import "io"

// SetCloser lets a test hand the reader something to close, the way
// Open does, without going through a file.
func (r *Reader) SetCloser(c io.Closer) { r.clsr = c }
