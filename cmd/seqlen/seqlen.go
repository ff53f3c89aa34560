// 13 Mar 2026
// seqlen visits fasta or fastq files and prints the total number of
// bases or residues in all their sequences.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrew-torda/fastx/pkg/common"
	"github.com/andrew-torda/fastx/pkg/seqlen"
)

func main() {
	var cmdArgs seqlen.CmdArgs
	flag.BoolVar(&cmdArgs.UseMmap, "m", false, "read files via mmap")
	flag.BoolVar(&cmdArgs.CountQual, "q", false, "also total quality values as a cross check")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input [input...]\n\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Expected at least one input file. Use - for stdin.")
		flag.Usage()
		os.Exit(common.ExitUsageError)
	}
	cmdArgs.InSeqFname = flag.Args()

	if err := seqlen.Mymain(&cmdArgs, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
