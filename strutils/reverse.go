// Package strutils holds string reversal and truncation helpers.
package strutils

import "unicode/utf8"

// Reverse returns s with its runes in reverse order.
// A run of bytes that are not valid UTF-8 moves as one block and keeps its inner
// order, so reversing twice always gives back s.
func Reverse(s string) string {
	result := make([]byte, len(s))
	end := len(s)
	for i := 0; i < len(s); {
		size := unitSize(s[i:])
		copy(result[end-size:end], s[i:i+size])
		end -= size
		i += size
	}
	return string(result)
}

// unitSize is the byte length of the rune s starts with, or of the whole
// invalid byte run s starts with.
func unitSize(s string) int {
	n := 0
	for n < len(s) {
		r, size := utf8.DecodeRuneInString(s[n:])
		if r != utf8.RuneError || size != 1 {
			if n == 0 {
				return size
			}
			break
		}
		n++
	}
	return n
}
