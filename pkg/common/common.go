// 12 Mar 2026

// Package common holds the few constants and helpers that every
// command and test wants.
package common

import (
	"fmt"
	"io"
	"os"
)

const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

// WrtTemp writes a string to a temporary file and returns the
// filename. It is used all over the place in testing. The caller
// removes the file.
func WrtTemp(s string) (string, error) {
	fTmp, err := os.CreateTemp("", "_del_me_testing")
	if err != nil {
		return "", fmt.Errorf("tempfile fail")
	}
	if _, err := io.WriteString(fTmp, s); err != nil {
		return "", fmt.Errorf("writing string to temp file %v", fTmp.Name())
	}
	name := fTmp.Name()
	fTmp.Close()
	return name, nil
}
