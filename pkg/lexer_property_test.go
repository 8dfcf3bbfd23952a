package texide

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestLexerSourceSpanRoundTrip is the source-span round-trip property
// from spec.md §8: for every emitted non-synthetic token, slicing
// line.Content at [column, column+width) reconstructs that token's own
// source text. The generator sticks to letters, single control
// sequences, and group delimiters, separated by a punctuation character,
// so that every token is unambiguous and no whitespace, comment, or
// paragraph-break span (explicitly excluded by the property) is ever
// produced.
func TestLexerSourceSpanRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	letters := []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")

	var src strings.Builder
	for i := 0; i < 200; i++ {
		switch rng.Intn(3) {
		case 0:
			src.WriteRune(letters[rng.Intn(len(letters))])
		case 1:
			src.WriteByte('\\')
			for n := 1 + rng.Intn(3); n > 0; n-- {
				src.WriteRune(letters[rng.Intn(len(letters))])
			}
		default:
			src.WriteByte('{')
		}

		// A trailing separator keeps two adjacent fragments (e.g. a
		// control sequence followed by a letter) from merging into one
		// longer control-sequence name.
		src.WriteByte(',')
	}

	cats := DefaultCategoryTable()
	l := NewLexer(strings.NewReader(src.String()), "prop")

	for {
		tok, err := l.Next(cats)
		assert.NoError(t, err)

		if tok == nil {
			return
		}

		var width int
		var want string

		switch v := tok.Value.(type) {
		case Character:
			width = 1
			want = string(v.Char)
		case ControlSequence:
			width = len([]rune(v.Name)) + 1
			want = string(v.Escape) + v.Name
		}

		runes := []rune(tok.Source.Line.Content)
		col := tok.Source.Column

		assert.Equal(t, want, string(runes[col:col+width]))
	}
}
