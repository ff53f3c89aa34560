// 12 Mar 2026

package white_test

import (
	"testing"

	"github.com/andrew-torda/fastx/pkg/white"
)

func TestRemove(t *testing.T) {
	tests := []struct{ in, want string }{
		{"", ""},
		{" \t\n\r", ""},
		{"acgt", "acgt"},
		{"ac gt", "acgt"},
		{" a c\tg\nt \r", "acgt"},
	}
	for _, tc := range tests {
		b := []byte(tc.in)
		white.Remove(&b)
		if string(b) != tc.want {
			t.Fatalf("Remove(%q) gave %q wanted %q", tc.in, b, tc.want)
		}
	}
}

func TestIsBlank(t *testing.T) {
	if !white.IsBlank([]byte(" \t\r")) || !white.IsBlank(nil) {
		t.Fatal("blank slices not recognised")
	}
	if white.IsBlank([]byte(" a ")) {
		t.Fatal("non-blank slice called blank")
	}
}
