// 15 Mar 2026
// randseq writes a file of random sequences for testing.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrew-torda/fastx/pkg/common"
	"github.com/andrew-torda/fastx/pkg/randseq"
)

func main() {
	f := flag.NewFlagSet("randseq", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.RandSeqArgs

	f.BoolVar(&args.Fastq, "q", false, "write fastq instead of fasta")
	f.BoolVar(&args.BlankLines, "b", false, "put blank lines inside sequences")
	f.BoolVar(&args.TruncQual, "e", false, "provoke errors by truncating the last quality string")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	f.IntVar(&args.Width, "w", 60, "wrap sequence lines at this width, 0 for none")
	f.StringVar(&args.Cmmt, "c", "made by randseq", "comment for the sequences")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(common.ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Too few args\nrandseq [..] file nseq length")
		f.Usage()
		os.Exit(common.ExitUsageError)
	}

	fname := f.Args()[0]
	if fname == "-" || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		ft, err := os.Create(fname)
		if err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(common.ExitFailure)
		}
		defer ft.Close()
		args.Wrtr = ft
	}
	if _, err := fmt.Sscan(f.Args()[1], &args.Nseq); err != nil {
		fmt.Fprintln(os.Stderr, "Did not understand nseq:", err)
		os.Exit(common.ExitUsageError)
	}
	if _, err := fmt.Sscan(f.Args()[2], &args.Len); err != nil {
		fmt.Fprintln(os.Stderr, "Did not understand length:", err)
		os.Exit(common.ExitUsageError)
	}

	if _, err := randseq.RandSeqMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
