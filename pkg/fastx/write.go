// 13 Mar 2026

package fastx

import (
	"fmt"
	"io"
)

// WriteFasta writes the record in fasta format, wrapping the sequence
// at width columns. A width of zero or less means one long line. The
// quality values, if the record has any, are not written. Fasta has
// nowhere to put them.
func (rec *Record) WriteFasta(w io.Writer, width int) error {
	if _, err := fmt.Fprintf(w, "%c%s\n", fastaSigil, rec.header()); err != nil {
		return err
	}
	s := rec.Seq
	if width > 0 {
		for ; len(s) > width; s = s[width:] {
			if _, err := w.Write(s[:width]); err != nil {
				return err
			}
			if _, err := w.Write([]byte{'\n'}); err != nil {
				return err
			}
		}
	}
	if _, err := w.Write(s); err != nil {
		return err
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

// WriteFastq writes the record in the four line fastq form with a bare
// "+" separator. A fasta record, with no quality values, cannot be
// written this way.
func (rec *Record) WriteFastq(w io.Writer) error {
	if !rec.IsFastq() {
		return fmt.Errorf("record %q has no quality values", rec.Name)
	}
	_, err := fmt.Fprintf(w, "%c%s\n%s\n%c\n%s\n",
		fastqSigil, rec.header(), rec.Seq, qualSigil, rec.Qual)
	return err
}
