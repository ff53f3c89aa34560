// 12 Mar 2026

// Package fastx reads sequence records from fasta or fastq format
// streams. It does not care which of the two formats it is given. Each
// record announces itself with ">" or "@", so a file of mixed records
// is handled without being told what to expect.
// The reader pulls bytes from its source as it needs them. It never
// wants the whole file, so a file much bigger than memory is fine. The
// only real limit is the length of the longest single line.
package fastx

import (
	"bytes"

	"github.com/andrew-torda/fastx/pkg/white"
)

// The characters which introduce the parts of a record.
const (
	fastaSigil = '>' // fasta header
	fastqSigil = '@' // fastq header
	qualSigil  = '+' // fastq separator before quality lines
)

// A Record is one sequence from a fasta or fastq file. Name is the
// first word of the header line and Cmmt is whatever came after it.
// Seq has had all its white space removed, so newlines in the file do
// not appear here. Qual is nil for a fasta record. For a fastq record
// it is the quality string and is exactly as long as Seq.
// A record does not share storage with the reader that made it. You
// can hang on to it after the reader has gone away.
type Record struct {
	Name []byte
	Cmmt []byte
	Seq  []byte
	Qual []byte
}

// IsFastq says whether the record came with quality values.
func (rec *Record) IsFastq() bool { return rec.Qual != nil }

// Len is the number of bases or residues in the sequence.
func (rec *Record) Len() int { return len(rec.Seq) }

// splitHeader breaks a header line, minus its sigil, into the name
// (up to the first white space) and the comment (everything after the
// run of white space). Either or both may be empty.
func splitHeader(b []byte) (name, cmmt []byte) {
	i := 0
	for ; i < len(b); i++ {
		if white.Is(b[i]) {
			break
		}
	}
	name = b[:i]
	for ; i < len(b); i++ { // jump over the run of white space
		if !white.Is(b[i]) {
			break
		}
	}
	cmmt = b[i:]
	return name, cmmt
}

// header rebuilds the header line without its sigil.
func (rec *Record) header() []byte {
	if len(rec.Cmmt) == 0 {
		return rec.Name
	}
	b := make([]byte, 0, len(rec.Name)+1+len(rec.Cmmt))
	b = append(b, rec.Name...)
	b = append(b, ' ')
	return append(b, rec.Cmmt...)
}

// Equal says if two records have the same contents. Empty and nil
// sequences compare as the same thing.
func (rec *Record) Equal(t *Record) bool {
	if rec.IsFastq() != t.IsFastq() {
		return false
	}
	return bytes.Equal(rec.Name, t.Name) && bytes.Equal(rec.Cmmt, t.Cmmt) &&
		bytes.Equal(rec.Seq, t.Seq) && bytes.Equal(rec.Qual, t.Qual)
}
