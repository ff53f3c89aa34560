// 15 Mar 2026

// randseq writes files full of random sequences, in fasta or fastq
// format. It exists so tests and benchmarks can make inputs of any
// size with known total length, rather than carting test data files
// around.
package randseq

import (
	"fmt"
	"io"
	"math/rand"
)

var letters = []byte("acdefghiklmnpqrstvwy")

const qualLo, qualHi = '!', '~' // printable phred range

// RandSeqArgs is the set of arguments passed to the main function.
type RandSeqArgs struct {
	Iseed      int64     // random number seed
	Wrtr       io.Writer // where we write to
	Cmmt       string    // comment for the sequences
	Nseq       int       // number of sequences
	Len        int       // length of each sequence
	Width      int       // wrap sequence lines at this, 0 for no wrapping
	Fastq      bool      // write fastq instead of fasta
	BlankLines bool      // sprinkle blank lines inside sequence blocks
	TruncQual  bool      // drop the last quality value, to provoke errors
}

// getseq returns a byte slice with a random sequence in it.
func getseq(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	l := int32(len(letters))
	for i := 0; i < seqlen; i++ {
		ret[i] = letters[rnd.Int31n(l)]
	}
	return ret
}

// getqual returns random quality values of the same length.
func getqual(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	for i := 0; i < seqlen; i++ {
		ret[i] = byte(qualLo + rnd.Int31n(qualHi-qualLo+1))
	}
	return ret
}

// writeBlock writes s wrapped at width columns, with the occasional
// blank line thrown in if asked for.
func writeBlock(w io.Writer, s []byte, args *RandSeqArgs, rnd *rand.Rand) error {
	width := args.Width
	if width <= 0 {
		width = len(s)
	}
	for len(s) > 0 {
		n := width
		if n > len(s) {
			n = len(s)
		}
		if _, err := fmt.Fprintf(w, "%s\n", s[:n]); err != nil {
			return err
		}
		s = s[n:]
		if args.BlankLines && rnd.Int31n(4) == 0 {
			if _, err := fmt.Fprint(w, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// RandSeqMain writes random sequences to an io.Writer and returns the
// total number of residues written, so a caller can check that a
// reader gets the same number back.
func RandSeqMain(args *RandSeqArgs) (totLen int, err error) {
	rnd := rand.New(rand.NewSource(args.Iseed))
	ndigit := len(fmt.Sprintf("%d", args.Nseq))
	for i := 1; i <= args.Nseq; i++ {
		s := getseq(args.Len, rnd)
		sigil := ">"
		if args.Fastq {
			sigil = "@"
		}
		_, err := fmt.Fprintf(args.Wrtr, "%s%s_%0*d %s\n", sigil, "seq", ndigit, i, args.Cmmt)
		if err != nil {
			return totLen, err
		}
		if err := writeBlock(args.Wrtr, s, args, rnd); err != nil {
			return totLen, err
		}
		totLen += len(s)
		if !args.Fastq {
			continue
		}
		q := getqual(args.Len, rnd)
		if args.TruncQual && i == args.Nseq && len(q) > 0 {
			q = q[:len(q)-1]
		}
		if _, err := fmt.Fprintln(args.Wrtr, "+"); err != nil {
			return totLen, err
		}
		if err := writeBlock(args.Wrtr, q, args, rnd); err != nil {
			return totLen, err
		}
	}
	return totLen, nil
}
