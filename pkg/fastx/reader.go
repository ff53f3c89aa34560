// 12 Mar 2026

package fastx

import (
	"fmt"
	"io"

	"github.com/andrew-torda/fastx/pkg/white"
)

// The reader walks through a small set of phases for each record. The
// phase names are only here so the transitions can be talked about and
// tested. We never go backwards within a record.
type phase byte

const (
	beforeRecord phase = iota // between records, eating blank lines
	inHeader                  // on a ">" or "@" line
	inSequence                // collecting sequence lines
	inQuality                 // collecting quality lines, fastq only
)

// What to do after a FormatError.
type OnErr byte

const (
	AbortOnErr  OnErr = iota // reader is finished, default
	ResyncOnErr              // skip forward to the next header line
)

// Options are the choices passed in by the caller. The zero value is
// fine for almost everybody.
type Options struct {
	OnErr   OnErr
	BufSize int // initial size of the line buffer, 0 for the default
}

const dfltBufSize = 64 * 1024

// A Reader hands out records one at a time from rdr. It owns a
// growable buffer, a cursor into it and a one-line pushback slot, so
// do not share one Reader between goroutines. Separate readers over
// separate sources do not talk to each other at all.
type Reader struct {
	rdr   io.Reader
	clsr  io.Closer // closed exactly once, may be nil
	buf   []byte
	start int // window of unread bytes is buf[start:end]
	end   int
	eof   bool // the source has said io.EOF
	done  bool // no more records will be produced

	pushed     []byte // the ungot line, valid until the next readLine
	pushedAt   int64
	havePushed bool

	state    phase
	lineNum  int64 // number of the line most recently handed out
	lineByte int64 // byte offset of the start of that line
	pos      int64 // byte offset of the next line to be handed out

	opts Options
}

// NewReader makes a reader over any byte source. opts may be nil.
// Nothing is read until the first call to Next.
func NewReader(rdr io.Reader, opts *Options) *Reader {
	r := &Reader{rdr: rdr, state: beforeRecord}
	if opts != nil {
		r.opts = *opts
	}
	n := r.opts.BufSize
	if n <= 0 {
		n = dfltBufSize
	}
	r.buf = make([]byte, n)
	r.start, r.end = 0, 0
	return r
}

// Close releases the underlying source, if we were given one that can
// be closed. Calling it twice is harmless.
func (r *Reader) Close() error {
	r.done = true
	if r.clsr == nil {
		return nil
	}
	c := r.clsr
	r.clsr = nil
	return c.Close()
}

// fill tries to get more bytes from the source into buf[end:]. A read
// of zero bytes without an error means nothing yet, not the end, so we
// just come back for more. Only io.EOF flips the eof flag.
func (r *Reader) fill() error {
	for {
		n, err := r.rdr.Read(r.buf[r.end:])
		r.end += n
		if err == io.EOF {
			r.eof = true
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading sequence data: %w", err)
		}
		if n > 0 {
			return nil
		}
	}
}

// readLine returns the next line with its newline (and any \r before
// it) removed. The slice points into the reader's buffer or pushback
// slot and is only good until the next call, so copy anything you want
// to keep. At the end of input it returns io.EOF.
func (r *Reader) readLine() ([]byte, error) {
	if r.havePushed {
		r.havePushed = false
		r.lineNum++
		r.lineByte = r.pushedAt
		return r.pushed, nil
	}
	for {
		for i := r.start; i < r.end; i++ {
			if r.buf[i] != '\n' {
				continue
			}
			line := r.buf[r.start:i]
			consumed := i + 1 - r.start
			r.start = i + 1
			if n := len(line); n > 0 && line[n-1] == '\r' {
				line = line[:n-1]
			}
			r.lineNum++
			r.lineByte = r.pos
			r.pos += int64(consumed)
			return line, nil
		}
		if r.eof {
			if r.start == r.end {
				return nil, io.EOF
			}
			line := r.buf[r.start:r.end] // last line, no newline
			consumed := r.end - r.start
			r.start = r.end
			if n := len(line); n > 0 && line[n-1] == '\r' {
				line = line[:n-1]
			}
			r.lineNum++
			r.lineByte = r.pos
			r.pos += int64(consumed)
			return line, nil
		}
		// No newline in the window. Shuffle what we have to the
		// front, grow if the line really is bigger than the whole
		// buffer, then ask for more bytes.
		if r.start > 0 {
			copy(r.buf, r.buf[r.start:r.end])
			r.end -= r.start
			r.start = 0
		}
		if r.end == len(r.buf) {
			bigger := make([]byte, 2*len(r.buf))
			copy(bigger, r.buf[:r.end])
			r.buf = bigger
		}
		if err := r.fill(); err != nil {
			r.done = true
			return nil, err
		}
	}
}

// unreadLine puts the line that announced the next record back, so the
// next call to Next can start with it. There is only one slot. That is
// all the lookahead this format ever needs.
func (r *Reader) unreadLine(line []byte) {
	r.pushed = line
	r.pushedAt = r.lineByte
	r.havePushed = true
	r.lineNum--
}

// formatErr builds the error for the line we are currently looking at
// and leaves the reader in the state the OnErr option asks for.
func (r *Reader) formatErr(kind error, format string, args ...interface{}) error {
	e := &FormatError{
		Line: r.lineNum,
		Byte: r.lineByte,
		Msg:  fmt.Sprintf(format, args...),
		kind: kind,
	}
	r.state = beforeRecord
	if r.opts.OnErr == ResyncOnErr {
		r.resync()
	} else {
		r.done = true
	}
	return e
}

// resync eats lines until one starts with a header character, then
// puts it back. Recovery is the caller's decision. We only move the
// cursor somewhere that has a chance of working.
func (r *Reader) resync() {
	for {
		line, err := r.readLine()
		if err != nil {
			r.done = true
			return
		}
		if len(line) > 0 && (line[0] == fastaSigil || line[0] == fastqSigil) {
			r.unreadLine(line)
			return
		}
	}
}

// Next returns the next record from the stream. When the input is used
// up it returns io.EOF. Malformed input comes back as a *FormatError
// and I/O trouble from the source is passed through wrapped. Records
// come back in file order, one per call, and the caller owns them.
func (r *Reader) Next() (*Record, error) {
	if r.done {
		return nil, io.EOF
	}
	r.state = beforeRecord
	var line []byte
	for { // blank lines between records are fine
		l, err := r.readLine()
		if err != nil {
			if err == io.EOF {
				r.done = true
			}
			return nil, err
		}
		if !white.IsBlank(l) {
			line = l
			break
		}
	}

	r.state = inHeader
	sigil := line[0]
	if sigil != fastaSigil && sigil != fastqSigil {
		return nil, r.formatErr(nil,
			"expected '>' or '@' at start of record, got %q", line[0])
	}
	rec := new(Record)
	name, cmmt := splitHeader(line[1:])
	rec.Name = append([]byte{}, name...)
	rec.Cmmt = append([]byte{}, cmmt...)

	r.state = inSequence
	if sigil == fastaSigil {
		return r.finishFasta(rec)
	}
	return r.finishFastq(rec)
}

// finishFasta collects sequence lines until the next header or the end
// of input. The header that stops us belongs to the next record, so it
// goes into the pushback slot.
func (r *Reader) finishFasta(rec *Record) (*Record, error) {
	rec.Seq = []byte{}
	for {
		line, err := r.readLine()
		if err == io.EOF {
			break // a fasta record may simply run out of file
		}
		if err != nil {
			r.done = true
			return nil, err
		}
		if len(line) > 0 && (line[0] == fastaSigil || line[0] == fastqSigil) {
			r.unreadLine(line)
			break
		}
		white.Remove(&line) // blank lines add nothing, which is fine
		rec.Seq = append(rec.Seq, line...)
	}
	r.state = beforeRecord
	return rec, nil
}

// finishFastq collects sequence lines up to the "+" separator, then
// exactly as many quality bytes as there were sequence bytes. The
// quality block may be wrapped differently from the sequence block.
// Anything on the separator line after the "+" is thrown away.
func (r *Reader) finishFastq(rec *Record) (*Record, error) {
	rec.Seq = []byte{}
	rec.Qual = []byte{}
	for { // sequence lines until the separator
		line, err := r.readLine()
		if err == io.EOF {
			return nil, r.formatErr(ErrTruncated,
				"fastq record %q ends before its '+' line", rec.Name)
		}
		if err != nil {
			r.done = true
			return nil, err
		}
		if len(line) > 0 && line[0] == qualSigil {
			break
		}
		if len(line) > 0 && (line[0] == fastaSigil || line[0] == fastqSigil) {
			// A new record here means the quality block is missing,
			// so this record could never satisfy len(qual)==len(seq).
			r.unreadLine(line)
			return nil, r.formatErr(ErrTruncated,
				"fastq record %q has no '+' line before the next record", rec.Name)
		}
		white.Remove(&line)
		rec.Seq = append(rec.Seq, line...)
	}

	r.state = inQuality
	for len(rec.Qual) < len(rec.Seq) {
		line, err := r.readLine()
		if err == io.EOF {
			return nil, r.formatErr(ErrTruncated,
				"fastq record %q has %d quality values for %d bases",
				rec.Name, len(rec.Qual), len(rec.Seq))
		}
		if err != nil {
			r.done = true
			return nil, err
		}
		white.Remove(&line)
		rec.Qual = append(rec.Qual, line...)
	}
	if len(rec.Qual) > len(rec.Seq) {
		return nil, r.formatErr(nil,
			"fastq record %q has %d quality values for %d bases",
			rec.Name, len(rec.Qual), len(rec.Seq))
	}
	r.state = beforeRecord
	return rec, nil
}
