package texide

import (
	"bufio"
	"io"
)

// rawToken is a single character read from the byte source together with
// the category code it currently maps to, and its source location.
type rawToken struct {
	Cat    RawCatCode
	Char   rune
	Source *Source
}

// rawLexer is a line-buffered character source. It reads one full source
// line per buffer refill, so that every token produced from that line can
// share the same *Line without re-reading the underlying reader.
type rawLexer struct {
	reader   *bufio.Reader
	fileName string

	line      *Line
	lineChars []rune
	charIndex int
	sawEOF    bool
}

func newRawLexer(r io.Reader, fileName string) *rawLexer {
	return &rawLexer{
		reader:   bufio.NewReader(r),
		fileName: fileName,
		line:     &Line{LineNumber: 0, FileName: fileName},
	}
}

// fillBuffer reads another line into the buffer if the current one is
// exhausted. It reports eof=true once the underlying reader has nothing
// left at all.
func (l *rawLexer) fillBuffer() (eof bool, err error) {
	if l.charIndex < len(l.lineChars) {
		return false, nil
	}

	if l.sawEOF {
		return true, nil
	}

	text, rerr := l.reader.ReadString('\n')
	if rerr != nil && rerr != io.EOF {
		return false, rerr
	}

	if rerr == io.EOF {
		l.sawEOF = true
	}

	if text == "" {
		return true, nil
	}

	l.lineChars = []rune(text)
	l.charIndex = 0
	l.line = &Line{
		Content:    text,
		LineNumber: l.line.LineNumber + 1,
		FileName:   l.fileName,
	}

	return false, nil
}

// peek returns the next character paired with its current category,
// without advancing. It is idempotent until advance is called.
func (l *rawLexer) peek(cats *CategoryTable) (*rawToken, error) {
	eof, err := l.fillBuffer()
	if err != nil {
		return nil, NewIOError(err)
	}

	if eof {
		return nil, nil
	}

	ch := l.lineChars[l.charIndex]

	return &rawToken{
		Cat:  cats.Get(ch),
		Char: ch,
		Source: &Source{
			Line:   l.line,
			Column: l.charIndex,
		},
	}, nil
}

// advance moves past the previously peeked character.
func (l *rawLexer) advance() {
	l.charIndex++
}

// next peeks then advances.
func (l *rawLexer) next(cats *CategoryTable) (*rawToken, error) {
	t, err := l.peek(cats)
	if err != nil || t == nil {
		return t, err
	}

	l.advance()

	return t, nil
}

// Lexer is the stateful TeX tokenizer. It turns raw (character, category)
// pairs from a rawLexer into Tokens, applying whitespace collapsing,
// comment stripping, and control-sequence recognition.
//
// Because the category table used to classify a character is supplied on
// every call to Next rather than captured once at construction, an
// expansion primitive that mutates the table between tokens changes how
// the very next character is tokenized. Consumers must therefore call
// Next one token at a time ("just in time") rather than draining the
// lexer in a batch.
type Lexer struct {
	raw *rawLexer

	// ParName is the control sequence name synthesized when two or more
	// newlines (modulo whitespace) are seen. Defaults to "par".
	ParName string

	trimNextWhitespace bool
}

// NewLexer returns a Lexer reading from r, attributing tokens to
// fileName.
func NewLexer(r io.Reader, fileName string) *Lexer {
	return &Lexer{
		raw:     newRawLexer(r, fileName),
		ParName: "par",
	}
}

// Next produces the next Token, consulting cats to classify each raw
// character as it is read. It returns (nil, nil) at end of input.
func (l *Lexer) Next(cats *CategoryTable) (*Token, error) {
	for {
		raw, err := l.raw.next(cats)
		if err != nil {
			return nil, err
		}

		if raw == nil {
			return nil, nil
		}

		switch raw.Cat {
		case Ignored:
			continue

		case Invalid:
			return nil, NewInvalidTokenError(raw.Source)

		case Comment:
			if err := l.skipComment(cats); err != nil {
				return nil, err
			}

			l.trimNextWhitespace = true

			continue

		case Escape:
			name, err := l.readControlSequenceName(raw, cats)
			if err != nil {
				return nil, err
			}

			l.trimNextWhitespace = true

			return &Token{
				Value:  ControlSequence{Escape: raw.Char, Name: name},
				Source: raw.Source,
			}, nil
		}

		if cat, ok := raw.Cat.IsRegular(); ok && cat != Space {
			l.trimNextWhitespace = false

			return &Token{
				Value:  Character{Char: raw.Char, Cat: cat},
				Source: raw.Source,
			}, nil
		}

		// Regular(Space) or EndOfLine: whitespace collapsing.
		tok, err := l.collapseWhitespace(raw, cats)
		if err != nil {
			return nil, err
		}

		if tok == nil {
			continue
		}

		return tok, nil
	}
}

// skipComment discards raw tokens through (and including) the next
// EndOfLine, or until the input ends.
func (l *Lexer) skipComment(cats *CategoryTable) error {
	for {
		raw, err := l.raw.peek(cats)
		if err != nil {
			return err
		}

		if raw == nil {
			return nil
		}

		l.raw.advance()

		if raw.Cat == EndOfLine {
			return nil
		}
	}
}

// collapseWhitespace handles a leading Space-or-EndOfLine raw token: it
// counts consecutive whitespace, synthesizes a \par control sequence on
// two-or-more newlines, otherwise emits a single Space (or nothing, if
// trimNextWhitespace is set).
func (l *Lexer) collapseWhitespace(first *rawToken, cats *CategoryTable) (*Token, error) {
	newlines := 0
	if first.Cat == EndOfLine {
		newlines++
	}

	for {
		raw, err := l.raw.peek(cats)
		if err != nil {
			return nil, err
		}

		if raw == nil {
			break
		}

		if raw.Cat == EndOfLine {
			newlines++
		} else if cat, ok := raw.Cat.IsRegular(); !ok || cat != Space {
			break
		}

		l.raw.advance()
	}

	switch {
	case newlines >= 2:
		l.trimNextWhitespace = true

		return &Token{
			Value:  ControlSequence{Escape: '\\', Name: l.ParName},
			Source: first.Source,
		}, nil
	case l.trimNextWhitespace:
		return nil, nil
	default:
		l.trimNextWhitespace = false

		// A line end collapses to a space character proper, not the
		// literal '\n' rune, matching TeX's end-of-line-as-space rule.
		ch := first.Char
		if first.Cat == EndOfLine {
			ch = ' '
		}

		return &Token{
			Value:  Character{Char: ch, Cat: Space},
			Source: first.Source,
		}, nil
	}
}

// readControlSequenceName consumes the character(s) following an escape
// character: a run of letters becomes a multi-letter name, anything else
// becomes a single-character name.
func (l *Lexer) readControlSequenceName(escapeTok *rawToken, cats *CategoryTable) (string, error) {
	first, err := l.raw.next(cats)
	if err != nil {
		return "", err
	}

	if first == nil {
		return "", NewMalformedControlSequenceError(escapeTok.Source)
	}

	cat, isLetter := first.Cat.IsRegular()
	if !isLetter || cat != Letter {
		return string(first.Char), nil
	}

	name := []rune{first.Char}

	for {
		raw, err := l.raw.peek(cats)
		if err != nil {
			return "", err
		}

		if raw == nil {
			break
		}

		if cat, ok := raw.Cat.IsRegular(); !ok || cat != Letter {
			break
		}

		name = append(name, raw.Char)
		l.raw.advance()
	}

	return string(name), nil
}
