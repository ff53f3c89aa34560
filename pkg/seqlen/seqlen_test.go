// 13 Mar 2026

package seqlen_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/andrew-torda/fastx/pkg/common"
	"github.com/andrew-torda/fastx/pkg/seqlen"
)

// wrtTmp writes a string to a temp file and arranges for cleanup.
func wrtTmp(t *testing.T, s string) string {
	t.Helper()
	name, err := common.WrtTemp(s)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Remove(name) })
	return name
}

func TestTotalOneFile(t *testing.T) {
	fname := wrtTmp(t, ">a\nACGT\nAC\n>b\nGG\n")
	for _, useMmap := range []bool{false, true} {
		args := &seqlen.CmdArgs{UseMmap: useMmap}
		tot, err := seqlen.Total(fname, args)
		if err != nil {
			t.Fatal(err)
		}
		if tot != 8 {
			t.Fatalf("mmap=%v: wanted 8, got %d", useMmap, tot)
		}
	}
}

func TestMymainManyFiles(t *testing.T) {
	f1 := wrtTmp(t, ">a\nACGT\n")                // 4
	f2 := wrtTmp(t, "@r\nACGTAC\n+\nIIIIII\n")   // 6
	f3 := wrtTmp(t, ">x\nA\n>y\nCC\n>z\nGGG\n")  // 6
	args := &seqlen.CmdArgs{InSeqFname: []string{f1, f2, f3}}
	var b bytes.Buffer
	if err := seqlen.Mymain(args, &b); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "16\n" {
		t.Fatalf("wanted \"16\\n\", got %q", got)
	}
}

func TestCountQual(t *testing.T) {
	fname := wrtTmp(t, "@r\nACGT\n+\nIIII\n")
	args := &seqlen.CmdArgs{InSeqFname: []string{fname}, CountQual: true}
	var b bytes.Buffer
	if err := seqlen.Mymain(args, &b); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "4\n" {
		t.Fatalf("wanted \"4\\n\", got %q", got)
	}
}

// A bad file should name itself in the error, since we may be working
// on many at once.
func TestBadFileNamed(t *testing.T) {
	good := wrtTmp(t, ">a\nACGT\n")
	bad := wrtTmp(t, "this is not a sequence file\n")
	args := &seqlen.CmdArgs{InSeqFname: []string{good, bad}}
	err := seqlen.Mymain(args, &bytes.Buffer{})
	if err == nil {
		t.Fatal("a broken file must give an error")
	}
	if !strings.Contains(err.Error(), bad) {
		t.Fatalf("error does not say which file: %v", err)
	}
}

func TestNoFiles(t *testing.T) {
	if err := seqlen.Mymain(&seqlen.CmdArgs{}, &bytes.Buffer{}); err == nil {
		t.Fatal("no input files should be an error")
	}
}
