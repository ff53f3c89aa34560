// 14 Mar 2026

// Package zwrap takes a readCloser and, if the stream turns out to be
// compressed, wraps it so Read gives you decompressed bytes and Close
// shuts down the decompressor followed by the underlying source.
// We decide by looking at the first bytes rather than trying a
// decompressor and catching the error, since our sources are often
// pipes which cannot seek back.
package zwrap

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"

	"github.com/klauspost/compress/zstd"
)

// Magic numbers at the start of the compressed formats we know.
var (
	gzMagic   = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

const nSniff = 4 // longest magic we look for

// FpZ is what we return. It remembers everything that has to be
// closed, in the order it has to happen.
type FpZ struct {
	rdr   io.Reader
	clsrs []io.Closer
}

// Read reads from the possibly-decompressed stream.
func (fc *FpZ) Read(p []byte) (int, error) { return fc.rdr.Read(p) }

// Close closes the decompressor, then the backing source. Each error
// is kept, but we carry on so nothing is left dangling.
func (fc *FpZ) Close() error {
	var s string
	for _, c := range fc.clsrs {
		if e := c.Close(); e != nil {
			if s != "" {
				s = s + " "
			}
			s = s + e.Error()
		}
	}
	fc.clsrs = nil
	if s == "" {
		return nil
	}
	return errors.New(s)
}

// closeNothing lets us put the zstd decoder, whose Close returns
// nothing, into the closer list with everybody else.
type closeNothing struct{ f func() }

func (c closeNothing) Close() error { c.f(); return nil }

// WrapMaybe looks at the start of fpIn and decides whether it needs a
// decompressor. The sniffed bytes are stitched back on the front, so
// the caller sees the stream from its beginning either way. A source
// shorter than the longest magic number is passed through untouched.
func WrapMaybe(fpIn io.ReadCloser) (*FpZ, error) {
	var magic [nSniff]byte
	n, err := io.ReadFull(fpIn, magic[:])
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	rejoined := io.MultiReader(bytes.NewReader(magic[:n]), fpIn)

	switch {
	case n >= len(gzMagic) && bytes.Equal(magic[:len(gzMagic)], gzMagic):
		zr, err := gzip.NewReader(rejoined)
		if err != nil {
			return nil, err
		}
		return &FpZ{rdr: zr, clsrs: []io.Closer{zr, fpIn}}, nil
	case n >= len(zstdMagic) && bytes.Equal(magic[:len(zstdMagic)], zstdMagic):
		zr, err := zstd.NewReader(rejoined)
		if err != nil {
			return nil, err
		}
		return &FpZ{
			rdr:   zr,
			clsrs: []io.Closer{closeNothing{zr.Close}, fpIn},
		}, nil
	}
	return &FpZ{rdr: rejoined, clsrs: []io.Closer{fpIn}}, nil
}
