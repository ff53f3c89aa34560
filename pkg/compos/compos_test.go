// 16 Mar 2026

package compos_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andrew-torda/fastx/pkg/compos"
	"github.com/andrew-torda/fastx/pkg/fastx"
)

func fromString(t *testing.T, s string) *compos.SiteComp {
	t.Helper()
	rdr := fastx.NewReader(strings.NewReader(s), nil)
	sc, err := compos.FromReader(rdr)
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func TestCounts(t *testing.T) {
	sc := fromString(t, ">a\nAAC\n>b\nAC\n>c\nACG\n")
	if sc.NSeq() != 3 {
		t.Fatalf("wanted 3 sequences, got %d", sc.NSeq())
	}
	checks := []struct {
		c    byte
		site int
		want float32
	}{
		{'A', 0, 3}, // every sequence starts with A
		{'A', 1, 1},
		{'C', 1, 2},
		{'C', 2, 1},
		{'G', 2, 1},
		{'A', 2, 0},
		{'T', 0, 0}, // T never occurs at all
	}
	for _, tc := range checks {
		if got := sc.Count(tc.c, tc.site); got != tc.want {
			t.Fatalf("count of %c at site %d: wanted %g got %g",
				tc.c, tc.site, tc.want, got)
		}
	}
}

func TestFrac(t *testing.T) {
	sc := fromString(t, ">a\nAA\n>b\nAC\n>c\nAC\n>d\nAG\n")
	sc.Frac()
	if got := sc.Count('A', 0); got != 1 {
		t.Fatalf("site 0 is all A, fraction should be 1, got %g", got)
	}
	if got := sc.Count('C', 1); got != 0.5 {
		t.Fatalf("C at site 1: wanted 0.5 got %g", got)
	}
	sc.Frac() // a second call must not normalise again
	if got := sc.Count('C', 1); got != 0.5 {
		t.Fatalf("second Frac changed the answer to %g", got)
	}
}

// Sequences of different lengths: short ones just stop contributing.
func TestRaggedLengths(t *testing.T) {
	sc := fromString(t, ">a\nA\n>b\nAAAA\n")
	if got := sc.Count('A', 3); got != 1 {
		t.Fatalf("only one sequence reaches site 3, wanted 1 got %g", got)
	}
}

func TestTable(t *testing.T) {
	sc := fromString(t, ">a\nAC\n>b\nAC\n")
	var b bytes.Buffer
	if err := sc.Table(&b); err != nil {
		t.Fatal(err)
	}
	want := "A\t2\t0\nC\t0\t2\n"
	if b.String() != want {
		t.Fatalf("table wrong:\n%q\nwanted\n%q", b.String(), want)
	}
}

func TestEmptyInput(t *testing.T) {
	rdr := fastx.NewReader(strings.NewReader(""), nil)
	if _, err := compos.FromReader(rdr); err == nil {
		t.Fatal("no sequences should be an error")
	}
}
