// 12 Mar 2026

package fastx

import (
	"io"
	"os"

	"github.com/andrew-torda/fastx/pkg/zwrap"
)

// Open makes a reader over the file at path. "-" means standard
// input. Compressed files (gzip or zstd) are recognised by their first
// bytes and unwrapped on the fly, which also works when the input is a
// pipe. Close on the returned reader closes whatever was opened here,
// once, and in the right order.
func Open(path string, opts *Options) (*Reader, error) {
	var fp io.ReadCloser
	if path == "-" {
		fp = io.NopCloser(os.Stdin)
	} else {
		t, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		fp = t
	}
	z, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, err
	}
	r := NewReader(z, opts)
	r.clsr = z
	return r, nil
}
