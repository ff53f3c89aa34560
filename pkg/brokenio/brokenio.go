// 14 Mar 2026

// brokenio wraps an io.ReadCloser so we can make it misbehave on
// purpose. Typical use: you have a file pointer or a reader from a
// compressed or http source. You write rdr = brokenio.NewReader(rdr)
// and everything works as before, except for the faults you asked
// for. Unlike an earlier version which rolled dice, the faults here
// are deterministic. Tests that sometimes fail are worse than no
// tests.
package brokenio

import (
	"errors"
	"io"
)

// ErrInjected is what Read returns when a failure was scheduled.
var ErrInjected = errors.New("injected read failure")

// A BrknRdrClsr is a reader with scheduled bad behaviour. The zero
// settings give a reader that behaves itself perfectly.
type BrknRdrClsr struct {
	rdrOrig   io.ReadCloser // wrapped reader
	nZeroRead int           // this many leading reads say (0, nil)
	shortRead int           // if > 0, never hand out more bytes than this
	failAt    int           // if > 0, fail once this many bytes have passed
	nCalled   int
	nByte     int
	nClosed   int
}

// NewReader returns a wrapper around the old reader.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{rdrOrig: rIn}
}

// SetZeroReads makes the first n calls to Read return (0, nil). This
// is the transient nothing-to-say-yet case which io.Reader allows and
// which callers must not confuse with the end of the stream.
func (r *BrknRdrClsr) SetZeroReads(n int) { r.nZeroRead = n }

// SetShortRead caps every read at n bytes, so a consumer sees lots of
// small partial reads, the way a slow network delivers data.
func (r *BrknRdrClsr) SetShortRead(n int) { r.shortRead = n }

// SetFailAt schedules a read error after n bytes have been delivered.
func (r *BrknRdrClsr) SetFailAt(n int) { r.failAt = n }

// NClosed says how often Close has been called, for tests that care
// about closing exactly once.
func (r *BrknRdrClsr) NClosed() int { return r.nClosed }

// Read passes data through, with the scheduled faults applied.
func (r *BrknRdrClsr) Read(p []byte) (int, error) {
	r.nCalled++
	if len(p) == 0 {
		return 0, nil
	}
	if r.nZeroRead > 0 {
		r.nZeroRead--
		return 0, nil
	}
	if r.failAt > 0 && r.nByte >= r.failAt {
		return 0, ErrInjected
	}
	if r.shortRead > 0 && len(p) > r.shortRead {
		p = p[:r.shortRead]
	}
	n, err := r.rdrOrig.Read(p)
	r.nByte += n
	return n, err
}

// Close wraps the original Close method and counts the calls.
func (r *BrknRdrClsr) Close() error {
	r.nClosed++
	return r.rdrOrig.Close()
}
