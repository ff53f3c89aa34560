// 13 Mar 2026

package fastx_test

import (
	"bytes"
	"strings"
	"testing"
)

// Write a record out wrapped at a width it was not read with, read it
// back, and make sure nothing changed.
func TestWriteFastaWrap(t *testing.T) {
	orig := rdAll(t, ">a some comment\nACGTACGTACGTAC\n", nil)[0]
	var b bytes.Buffer
	if err := orig.WriteFasta(&b, 4); err != nil {
		t.Fatal(err)
	}
	if nLines := strings.Count(b.String(), "\n"); nLines != 5 { // header + 4 seq lines
		t.Fatalf("wrapping at 4 gave %d lines:\n%s", nLines, b.String())
	}
	back := rdAll(t, b.String(), nil)[0]
	if !orig.Equal(back) {
		t.Fatalf("record changed in the round trip:\n%+v\n%+v", orig, back)
	}
}

func TestWriteFastq(t *testing.T) {
	orig := rdAll(t, "@r1 lane3\nACGT\n+r1\nII~!\n", nil)[0]
	var b bytes.Buffer
	if err := orig.WriteFastq(&b); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "@r1 lane3\nACGT\n+\nII~!\n" {
		t.Fatalf("fastq output wrong:\n%q", got)
	}
}

// A fasta record has nothing to put on the quality lines.
func TestWriteFastqNoQual(t *testing.T) {
	rec := rdAll(t, ">a\nACGT\n", nil)[0]
	if err := rec.WriteFastq(&bytes.Buffer{}); err == nil {
		t.Fatal("writing a fasta record as fastq should fail")
	}
}
