package texide

import (
	"strings"
	"testing"

	"github.com/juju/errors"
	"github.com/stretchr/testify/assert"

	"go.texide.dev/internal/test"
)

// tokenValues drains a Lexer against cats and returns just the Values,
// discarding Source, since tests only care about the tokenization
// result, not its provenance.
func tokenValues(t *testing.T, l *Lexer, cats *CategoryTable) []Value {
	t.Helper()

	var values []Value

	for {
		tok, err := l.Next(cats)
		assert.NoError(t, err)

		if tok == nil {
			return values
		}

		values = append(values, tok.Value)
	}
}

func TestLexerControlSequenceThenGroup(t *testing.T) {
	cats := DefaultCategoryTable()
	l := NewLexer(strings.NewReader(`\a{b}`), "test")

	got := tokenValues(t, l, cats)
	want := []Value{
		ControlSequence{Escape: '\\', Name: "a"},
		Character{Char: '{', Cat: BeginGroup},
		Character{Char: 'b', Cat: Letter},
		Character{Char: '}', Cat: EndGroup},
	}

	assert.Equal(t, want, got)
}

func TestLexerControlWordGobblesTrailingSpace(t *testing.T) {
	cats := DefaultCategoryTable()
	l := NewLexer(strings.NewReader(`\a b`), "test")

	got := tokenValues(t, l, cats)
	want := []Value{
		ControlSequence{Escape: '\\', Name: "a"},
		Character{Char: 'b', Cat: Letter},
	}

	assert.Equal(t, want, got)
}

func TestLexerControlWordGobblesNewlineAndSpace(t *testing.T) {
	cats := DefaultCategoryTable()
	l := NewLexer(strings.NewReader("\\a\n b"), "test")

	got := tokenValues(t, l, cats)
	want := []Value{
		ControlSequence{Escape: '\\', Name: "a"},
		Character{Char: 'b', Cat: Letter},
	}

	assert.Equal(t, want, got)
}

func TestLexerSingleCharControlSequence(t *testing.T) {
	cats := DefaultCategoryTable()
	l := NewLexer(strings.NewReader(`\,x`), "test")

	got := tokenValues(t, l, cats)
	want := []Value{
		ControlSequence{Escape: '\\', Name: ","},
		Character{Char: 'x', Cat: Letter},
	}

	assert.Equal(t, want, got)
}

func TestLexerCommentRemovesLineAndNewline(t *testing.T) {
	cats := DefaultCategoryTable()
	l := NewLexer(strings.NewReader("A%comment\nC"), "test")

	got := tokenValues(t, l, cats)
	want := []Value{
		Character{Char: 'A', Cat: Letter},
		Character{Char: 'C', Cat: Letter},
	}

	assert.Equal(t, want, got)
}

func TestLexerTwoNewlinesProduceParagraphBreak(t *testing.T) {
	cats := DefaultCategoryTable()
	l := NewLexer(strings.NewReader("A\n\nB"), "test")

	got := tokenValues(t, l, cats)
	want := []Value{
		Character{Char: 'A', Cat: Letter},
		ControlSequence{Escape: '\\', Name: "par"},
		Character{Char: 'B', Cat: Letter},
	}

	assert.Equal(t, want, got)
}

func TestLexerCustomParName(t *testing.T) {
	cats := DefaultCategoryTable()
	l := NewLexer(strings.NewReader("A\n\nB"), "test")
	l.ParName = "endgraf"

	got := tokenValues(t, l, cats)
	want := []Value{
		Character{Char: 'A', Cat: Letter},
		ControlSequence{Escape: '\\', Name: "endgraf"},
		Character{Char: 'B', Cat: Letter},
	}

	assert.Equal(t, want, got)
}

func TestLexerRunsOfSpacesCollapse(t *testing.T) {
	cats := DefaultCategoryTable()
	l := NewLexer(strings.NewReader("A   B"), "test")

	got := tokenValues(t, l, cats)
	want := []Value{
		Character{Char: 'A', Cat: Letter},
		Character{Char: ' ', Cat: Space},
		Character{Char: 'B', Cat: Letter},
	}

	assert.Equal(t, want, got)
}

func TestLexerRespectsRebindingViaPassedTable(t *testing.T) {
	cats := DefaultCategoryTable()
	cats.Insert('Z', Ignored)

	l := NewLexer(strings.NewReader("AZB"), "test")

	got := tokenValues(t, l, cats)
	want := []Value{
		Character{Char: 'A', Cat: Letter},
		Character{Char: 'B', Cat: Letter},
	}

	assert.Equal(t, want, got)
}

func TestLexerMidStreamRebindingAffectsNextToken(t *testing.T) {
	// Because Next consults cats on every call rather than once at
	// construction, a category mutation that happens between two Next
	// calls changes how the next character is tokenized: this is the
	// "just in time" property the lexer exists to preserve.
	cats := DefaultCategoryTable()
	l := NewLexer(strings.NewReader("ZZ"), "test")

	first, err := l.Next(cats)
	assert.NoError(t, err)
	assert.Equal(t, Character{Char: 'Z', Cat: Letter}, first.Value)

	cats.Insert('Z', Ignored)

	second, err := l.Next(cats)
	assert.NoError(t, err)
	assert.Nil(t, second)
}

func TestLexerInvalidCategoryErrors(t *testing.T) {
	cats := DefaultCategoryTable()
	cats.Insert('@', Invalid)

	l := NewLexer(strings.NewReader("@"), "test")

	_, err := l.Next(cats)
	assert.Error(t, err)

	_, ok := errors.Cause(err).(*InvalidTokenError)
	assert.True(t, ok)
}

func TestLexerTrailingEscapeErrors(t *testing.T) {
	cats := DefaultCategoryTable()
	l := NewLexer(strings.NewReader(`\`), "test")

	_, err := l.Next(cats)
	assert.Error(t, err)

	_, ok := errors.Cause(err).(*MalformedControlSequenceError)
	assert.True(t, ok)
}

func TestLexerMultiLetterControlSequenceSpansLine(t *testing.T) {
	cats := DefaultCategoryTable()
	l := NewLexer(strings.NewReader(`\hello`), "test")

	got := tokenValues(t, l, cats)
	want := []Value{ControlSequence{Escape: '\\', Name: "hello"}}

	assert.Equal(t, want, got)
}

func TestLexerSourceTracksLineAndColumn(t *testing.T) {
	cats := DefaultCategoryTable()
	l := NewLexer(strings.NewReader("A\nB"), "test")

	first, err := l.Next(cats)
	assert.NoError(t, err)
	assert.Equal(t, 1, first.Source.Line.LineNumber)
	assert.Equal(t, 0, first.Source.Column)

	// A single newline between A and B is not a paragraph break, so it
	// collapses to a single space character rather than being dropped.
	second, err := l.Next(cats)
	assert.NoError(t, err)
	assert.Equal(t, Character{Char: ' ', Cat: Space}, second.Value)

	third, err := l.Next(cats)
	assert.NoError(t, err)
	assert.Equal(t, Character{Char: 'B', Cat: Letter}, third.Value)
	assert.Equal(t, 2, third.Source.Line.LineNumber)
}

// Use a package-level variable to avoid compiler optimization eliding the
// benchmark loop body.
var benchResult []Value

func benchmarkLexer(size int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		b.StopTimer()
		data := test.GetRandomTokens(size)
		cats := DefaultCategoryTable()
		l := NewLexer(strings.NewReader(data), "bench")
		b.StartTimer()

		benchResult = tokenValuesBench(l, cats)
	}
}

func tokenValuesBench(l *Lexer, cats *CategoryTable) []Value {
	var values []Value

	for {
		tok, err := l.Next(cats)
		if err != nil {
			return values
		}

		if tok == nil {
			return values
		}

		values = append(values, tok.Value)
	}
}

func BenchmarkLexer100(b *testing.B)     { benchmarkLexer(100, b) }
func BenchmarkLexer1000(b *testing.B)    { benchmarkLexer(1000, b) }
func BenchmarkLexer10000(b *testing.B)   { benchmarkLexer(10000, b) }
func BenchmarkLexer100000(b *testing.B)  { benchmarkLexer(100000, b) }
func BenchmarkLexer1000000(b *testing.B) { benchmarkLexer(1000000, b) }
