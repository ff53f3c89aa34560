// 14 Mar 2026

package zwrap_test

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"

	"github.com/andrew-torda/fastx/pkg/zwrap"
)

const someSeqs = ">a tiny file\nACGTACGT\n>b\nGGGG\n"

func rdBack(t *testing.T, in io.ReadCloser) string {
	t.Helper()
	z, err := zwrap.WrapMaybe(in)
	if err != nil {
		t.Fatal(err)
	}
	b, err := io.ReadAll(z)
	if err != nil {
		t.Fatal(err)
	}
	if err := z.Close(); err != nil {
		t.Fatal(err)
	}
	return string(b)
}

func TestPlain(t *testing.T) {
	got := rdBack(t, io.NopCloser(strings.NewReader(someSeqs)))
	if got != someSeqs {
		t.Fatalf("plain stream mangled: %q", got)
	}
}

func TestGzip(t *testing.T) {
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	io.WriteString(zw, someSeqs)
	zw.Close()
	if got := rdBack(t, io.NopCloser(&b)); got != someSeqs {
		t.Fatalf("gzip stream mangled: %q", got)
	}
}

func TestZstd(t *testing.T) {
	var b bytes.Buffer
	zw, err := zstd.NewWriter(&b)
	if err != nil {
		t.Fatal(err)
	}
	io.WriteString(zw, someSeqs)
	zw.Close()
	if got := rdBack(t, io.NopCloser(&b)); got != someSeqs {
		t.Fatalf("zstd stream mangled: %q", got)
	}
}

// Files shorter than the longest magic number must pass through,
// not break.
func TestTiny(t *testing.T) {
	for _, s := range []string{"", ">", ">a\n"} {
		if got := rdBack(t, io.NopCloser(strings.NewReader(s))); got != s {
			t.Fatalf("tiny input %q came back as %q", s, got)
		}
	}
}
