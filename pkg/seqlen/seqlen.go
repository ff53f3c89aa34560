// 13 Mar 2026

// seqlen adds up the sequence lengths in fasta or fastq files. The
// work per file is just opening a reader and summing record lengths.
// With more than one file we do them at the same time, since each
// reader owns its own buffer and they have nothing to say to each
// other.
package seqlen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"
	"golang.org/x/sync/errgroup"

	"github.com/andrew-torda/fastx/pkg/fastx"
)

// CmdArgs is literally the command line arguments after parsing.
type CmdArgs struct {
	InSeqFname []string // input files, "-" for stdin
	UseMmap    bool     // map files instead of reading them
	CountQual  bool     // also total the quality values as a cross check
}

// sumRecords drains a reader and adds up the lengths.
func sumRecords(r *fastx.Reader, countQual bool) (int64, error) {
	var tot, totQ int64
	for {
		rec, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return tot, err
		}
		tot += int64(rec.Len())
		if countQual {
			totQ += int64(len(rec.Qual))
		}
	}
	if countQual && totQ != 0 && totQ != tot {
		return tot, fmt.Errorf("quality total %d does not match sequence total %d", totQ, tot)
	}
	return tot, nil
}

// totalMmap maps the file and lets the reader walk over the mapping.
// The reader does not know or care that its byte source is a mapping
// rather than a file.
func totalMmap(fname string, countQual bool) (int64, error) {
	fp, err := os.Open(fname)
	if err != nil {
		return 0, err
	}
	defer fp.Close()
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer mm.Unmap()
	r := fastx.NewReader(bytes.NewReader(mm), nil)
	return sumRecords(r, countQual)
}

// Total is the length sum for one file.
func Total(fname string, args *CmdArgs) (int64, error) {
	if args.UseMmap && fname != "-" {
		return totalMmap(fname, args.CountQual)
	}
	r, err := fastx.Open(fname, nil)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	return sumRecords(r, args.CountQual)
}

// Mymain sums over all the input files and prints the grand total as
// a decimal integer on its own line.
func Mymain(args *CmdArgs, wrtr io.Writer) error {
	if len(args.InSeqFname) == 0 {
		return errors.New("no input files")
	}
	tots := make([]int64, len(args.InSeqFname))
	var g errgroup.Group
	for i, fname := range args.InSeqFname {
		i, fname := i, fname // per-iteration copies; go directive predates 1.22 loopvar semantics
		g.Go(func() error {
			t, err := Total(fname, args)
			if err != nil {
				return fmt.Errorf("file %s: %w", fname, err)
			}
			tots[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	var tot int64
	for _, t := range tots {
		tot += t
	}
	_, err := fmt.Fprintf(wrtr, "%d\n", tot)
	return err
}
