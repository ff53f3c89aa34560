// 16 Mar 2026
// compos prints a table of which symbols occur at each site across
// the records of a fasta or fastq file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrew-torda/fastx/pkg/common"
	"github.com/andrew-torda/fastx/pkg/compos"
	"github.com/andrew-torda/fastx/pkg/fastx"
)

func mymain() int {
	var doFrac bool
	flag.BoolVar(&doFrac, "f", false, "print fractions instead of counts")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Expected one input file. Use - for stdin.")
		flag.Usage()
		return common.ExitUsageError
	}

	rdr, err := fastx.Open(flag.Arg(0), nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return common.ExitFailure
	}
	defer rdr.Close()
	sc, err := compos.FromReader(rdr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return common.ExitFailure
	}
	if doFrac {
		sc.Frac()
	}
	if err := sc.Table(os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return common.ExitFailure
	}
	return common.ExitSuccess
}

func main() { os.Exit(mymain()) }
