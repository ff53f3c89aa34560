// 13 Mar 2026
// numseq prints the number of sequence records in a file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/andrew-torda/fastx/pkg/common"
	"github.com/andrew-torda/fastx/pkg/numseq"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s input\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Expected one input file. Use - for stdin.")
		flag.Usage()
		os.Exit(common.ExitUsageError)
	}
	if err := numseq.Mymain(flag.Arg(0), os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(common.ExitFailure)
	}
	os.Exit(common.ExitSuccess)
}
