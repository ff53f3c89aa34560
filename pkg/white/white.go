// 12 Mar 2026

// Package white removes white space from byte slices. The library
// versions know about unicode. We only ever see ascii in sequence
// data, so a little table is enough and saves the allocations.
package white

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

// Is says whether c is an ascii white space character.
func Is(c byte) bool { return asciiSpace[c] }

// Remove squeezes the white space out of *p, in place. The length is
// adjusted and the capacity left alone.
func Remove(p *[]byte) {
	s := *p
	n := 0
	for _, c := range s {
		if !asciiSpace[c] {
			s[n] = c
			n++
		}
	}
	*p = s[:n]
}

// IsBlank says whether the whole slice is white space or empty.
func IsBlank(s []byte) bool {
	for _, c := range s {
		if !asciiSpace[c] {
			return false
		}
	}
	return true
}
