package texide

import "fmt"

// Value is the payload of a Token. It is implemented by exactly two
// types: Character and ControlSequence.
type Value interface {
	isValue()
	String() string
}

// Character is a single source character together with the category code
// the lexer emitted it under.
type Character struct {
	Char rune
	Cat  CatCode
}

func (Character) isValue() {}

func (c Character) String() string {
	return fmt.Sprintf("Character(%q, %s)", c.Char, c.Cat)
}

// ControlSequence is a control sequence token: the escape character that
// introduced it, plus its name. The name may be empty (never actually
// produced by the lexer, but representable), a single non-letter
// character, or one-or-more letters.
type ControlSequence struct {
	Escape rune
	Name   string
}

func (ControlSequence) isValue() {}

func (cs ControlSequence) String() string {
	return fmt.Sprintf("ControlSequence(%q, %q)", cs.Escape, cs.Name)
}

// Line is a single line of source text, shared by every Token produced
// from it.
type Line struct {
	Content    string
	LineNumber int
	FileName   string
}

// Source records where a Token came from: the line it was read from, and
// the column (rune offset) within that line.
type Source struct {
	Line   *Line
	Column int
}

func (s *Source) String() string {
	if s == nil || s.Line == nil {
		return "<no source>"
	}

	return fmt.Sprintf("%s:%d:%d", s.Line.FileName, s.Line.LineNumber, s.Column)
}

// Token is a single tokenization result: a Value together with its
// provenance. Equality is structural over Value only; Source is metadata
// and is ignored by Equal.
type Token struct {
	Value  Value
	Source *Source
}

// NewCharacterToken builds a Character token with the given source.
func NewCharacterToken(ch rune, cat CatCode, src *Source) Token {
	return Token{Value: Character{Char: ch, Cat: cat}, Source: src}
}

// NewControlSequenceToken builds a ControlSequence token with the given
// source.
func NewControlSequenceToken(escape rune, name string, src *Source) Token {
	return Token{Value: ControlSequence{Escape: escape, Name: name}, Source: src}
}

// Equal reports whether t and o carry the same Value, ignoring Source.
func (t Token) Equal(o Token) bool {
	return t.Value == o.Value
}

func (t Token) String() string {
	if t.Value == nil {
		return "<empty token>"
	}

	return t.Value.String()
}
