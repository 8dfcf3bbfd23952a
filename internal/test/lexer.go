package test

import (
	"math/rand"
	"strings"
)

const validFragments = "\\a;\\a b;\\par;a;b;c;A;B;C; ;\n;\n\n;{;};$;&;#;^;_;~;%comment\n"

// GetRandomTokens returns a string of size random TeX-like fragments
// concatenated with no separator, suitable for feeding to a Lexer in a
// benchmark.
func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, "")
}

// GetRandomTokensWithSep is like GetRandomTokens but joins fragments with
// sep instead of the empty string.
func GetRandomTokensWithSep(size int, sep string) string {
	valid := strings.Split(validFragments, ";")

	var frags []string
	for len(frags) < size {
		frags = append(frags, valid[rand.Intn(len(valid))])
	}

	return strings.Join(frags, sep)
}
