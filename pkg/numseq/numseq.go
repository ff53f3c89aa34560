// 13 Mar 2026

// numseq counts the records in a sequence file. For a plain fasta
// file we do not need the parser at all. Every record starts with a
// ">" at the start of a line, so we map the file and count those.
// Quality strings in fastq files are allowed to contain "@", which
// kills that trick, so fastq and compressed files go through the real
// reader.
package numseq

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/andrew-torda/fastx/pkg/fastx"
)

// ByMmap counts line-anchored ">" characters in a mapped file.
func ByMmap(fname string) (int, error) {
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
	n := bytes.Count(mm, []byte{'\n', '>'})
	if len(mm) > 0 && mm[0] == '>' {
		n++
	}
	return n, nil
}

// ByParse counts records the honest way, with the parser.
func ByParse(rdr *fastx.Reader) (int, error) {
	n := 0
	for {
		_, err := rdr.Next()
		if err == io.EOF {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}

// looksPlainFasta peeks at the first byte of the file. Anything which
// is not an uncompressed fasta file gets the slow path.
func looksPlainFasta(fname string) bool {
	fp, err := os.Open(fname)
	if err != nil {
		return false
	}
	defer fp.Close()
	var b [1]byte
	if n, _ := fp.Read(b[:]); n != 1 {
		return false
	}
	return b[0] == '>'
}

// Mymain counts the records in fname and prints the count.
func Mymain(fname string, wrtr io.Writer) error {
	var n int
	var err error
	if fname != "-" && looksPlainFasta(fname) {
		n, err = ByMmap(fname)
	} else {
		var rdr *fastx.Reader
		if rdr, err = fastx.Open(fname, nil); err == nil {
			defer rdr.Close()
			n, err = ByParse(rdr)
		}
	}
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(wrtr, "%d\n", n)
	return err
}
