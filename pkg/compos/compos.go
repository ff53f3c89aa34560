// 16 Mar 2026

// compos tallies which symbols turn up at each site across all the
// records of a stream. For reads off a sequencing machine, which all
// have much the same length, this is the usual first look at whether
// something went wrong at one end of the reads.
package compos

import (
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"

	"github.com/andrew-torda/fastx/pkg/fastx"
)

// We only read ascii characters, so anything bigger than this is not
// a valid symbol.
const maxSym uint8 = 127

const badMap = maxSym // marks a symbol that never occurs

// A SiteComp holds the tallies. counts.Mat looks like
// [number_of_symbols][length_of_longest_sequence]. We store counts as
// float32 since they are usually normalised to fractions later and we
// can reuse the matrix for that without another allocation.
type SiteComp struct {
	counts  *matrix.FMatrix2d
	mapping [maxSym]uint8 // mapping['c'] is the row used for 'c'
	revmap  []uint8       // revmap[2] is the symbol stored in row 2
	seqs    [][]byte
	maxlen  int
	fracs   bool // have counts been turned into fractions ?
}

// add remembers one sequence. Tallying waits until we know the set of
// symbols that actually occur, so we do not have 127 mostly-empty
// rows.
func (sc *SiteComp) add(s []byte) {
	sc.seqs = append(sc.seqs, s)
	if len(s) > sc.maxlen {
		sc.maxlen = len(s)
	}
}

// NSeq is the number of sequences that went into the tally.
func (sc *SiteComp) NSeq() int { return len(sc.seqs) }

// mapsyms finds the symbols in use and gives each one a row.
func (sc *SiteComp) mapsyms() {
	var used [maxSym]bool
	for _, s := range sc.seqs {
		for _, c := range s {
			if uint8(c) < maxSym {
				used[c] = true
			}
		}
	}
	for i := range sc.mapping { // initialise with bad value, to
		sc.mapping[i] = badMap // trap errors later
	}
	var n uint8
	for i := range used {
		if used[i] {
			sc.mapping[i] = n
			sc.revmap = append(sc.revmap, uint8(i))
			n++
		}
	}
}

// tally fills the count matrix. Sequences shorter than the longest
// one simply contribute nothing to the sites they do not reach.
func (sc *SiteComp) tally() {
	sc.counts = matrix.NewFMatrix2d(len(sc.revmap), sc.maxlen)
	for _, s := range sc.seqs {
		for i, c := range s {
			if uint8(c) >= maxSym {
				continue
			}
			sc.counts.Mat[sc.mapping[c]][i] += 1
		}
	}
}

// FromReader eats all the records a reader can give and returns the
// per-site composition.
func FromReader(rdr *fastx.Reader) (*SiteComp, error) {
	sc := new(SiteComp)
	for {
		rec, err := rdr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		sc.add(rec.Seq)
	}
	if len(sc.seqs) == 0 {
		return nil, fmt.Errorf("no sequences found")
	}
	sc.mapsyms()
	sc.tally()
	return sc, nil
}

// Frac converts the counts at each site to fractions of the number of
// sequences reaching that site. Calling it twice does nothing new.
func (sc *SiteComp) Frac() {
	if sc.fracs {
		return
	}
	nrow, ncol := sc.counts.Size()
	for icol := 0; icol < ncol; icol++ {
		var total float32
		for irow := 0; irow < nrow; irow++ {
			total += sc.counts.Mat[irow][icol]
		}
		if total == 0 {
			continue
		}
		for irow := 0; irow < nrow; irow++ {
			sc.counts.Mat[irow][icol] /= total
		}
	}
	sc.fracs = true
}

// Count returns the tally for symbol c at site i, so tests and other
// packages do not have to know how we store things.
func (sc *SiteComp) Count(c byte, i int) float32 {
	if uint8(c) >= maxSym || sc.mapping[c] == badMap || i >= sc.maxlen {
		return 0
	}
	return sc.counts.Mat[sc.mapping[c]][i]
}

// Table writes the tallies as tab separated text, one row per symbol,
// one column per site.
func (sc *SiteComp) Table(wrtr io.Writer) error {
	nrow, ncol := sc.counts.Size()
	for irow := 0; irow < nrow; irow++ {
		if _, err := fmt.Fprintf(wrtr, "%c", sc.revmap[irow]); err != nil {
			return err
		}
		for icol := 0; icol < ncol; icol++ {
			var err error
			if sc.fracs {
				_, err = fmt.Fprintf(wrtr, "\t%.4f", sc.counts.Mat[irow][icol])
			} else {
				_, err = fmt.Fprintf(wrtr, "\t%g", sc.counts.Mat[irow][icol])
			}
			if err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(wrtr); err != nil {
			return err
		}
	}
	return nil
}
