package texide

// Stream is the uniform pull interface used everywhere tokens are
// consumed: by the expander over its unexpanded input, by primitives
// reading arguments, and by the driver reading fully expanded output.
//
// Some streams need to perform side-effecting work (run a lexer, run an
// expansion) to know what their next token is. To let a consumer hold an
// immutable reference to "the next token" without re-triggering that
// work, peeking is split into two halves: PreparePeek performs whatever
// mutation is needed, and ImutPeek then returns the cached result. It is
// a contract error to call ImutPeek without first calling PreparePeek
// since the last mutation; implementations are permitted to simply
// return (nil, nil) in that case rather than erroring, but must never
// return a different answer than the PreparePeek that should have
// preceded it would have produced.
type Stream interface {
	// Next consumes and returns the next token, or (nil, nil) at end of
	// stream.
	Next() (*Token, error)

	// PreparePeek performs any side-effecting work needed to know the
	// next token.
	PreparePeek() error

	// ImutPeek returns the next token without consuming it. PreparePeek
	// must have been called since the last mutation of the stream.
	ImutPeek() (*Token, error)
}

// Peek prepares and returns the next token of s without consuming it.
func Peek(s Stream) (*Token, error) {
	if err := s.PreparePeek(); err != nil {
		return nil, err
	}

	return s.ImutPeek()
}

// Consume discards the next token of s.
func Consume(s Stream) error {
	_, err := s.Next()
	return err
}

// EmptyStream is a Stream with no tokens. It is useful as the return
// value of expansion primitives that produce no replacement tokens.
type EmptyStream struct{}

func (EmptyStream) Next() (*Token, error)     { return nil, nil }
func (EmptyStream) PreparePeek() error        { return nil }
func (EmptyStream) ImutPeek() (*Token, error) { return nil, nil }

// SingletonStream is a Stream consisting of exactly one token. Peeking
// does not require PreparePeek to have been called first.
type SingletonStream struct {
	tok *Token
}

// NewSingletonStream returns a stream that yields t once.
func NewSingletonStream(t Token) *SingletonStream {
	return &SingletonStream{tok: &t}
}

func (s *SingletonStream) Next() (*Token, error) {
	t := s.tok
	s.tok = nil

	return t, nil
}

func (s *SingletonStream) PreparePeek() error { return nil }

func (s *SingletonStream) ImutPeek() (*Token, error) {
	return s.tok, nil
}

// VecStream is a Stream consisting of a fixed sequence of tokens returned
// in order. Tokens are stored reversed internally so that Next is O(1).
// Peeking does not require PreparePeek to have been called first.
type VecStream struct {
	reversed []Token
}

// NewVecStream returns a stream that yields the tokens of toks in order.
func NewVecStream(toks []Token) *VecStream {
	reversed := make([]Token, len(toks))
	for i, t := range toks {
		reversed[len(toks)-1-i] = t
	}

	return &VecStream{reversed: reversed}
}

func (s *VecStream) Next() (*Token, error) {
	n := len(s.reversed)
	if n == 0 {
		return nil, nil
	}

	t := s.reversed[n-1]
	s.reversed = s.reversed[:n-1]

	return &t, nil
}

func (s *VecStream) PreparePeek() error { return nil }

func (s *VecStream) ImutPeek() (*Token, error) {
	n := len(s.reversed)
	if n == 0 {
		return nil, nil
	}

	return &s.reversed[n-1], nil
}

// LexerStream adapts a Lexer into a Stream, caching the next token on
// PreparePeek the way a Parser in a hand-rolled recursive-descent front
// end buffers its next token.
type LexerStream struct {
	lexer *Lexer
	cats  *CategoryTable

	cached      bool
	cachedToken *Token
}

// NewLexerStream returns a Stream that pulls tokens from lexer, classified
// against cats.
func NewLexerStream(lexer *Lexer, cats *CategoryTable) *LexerStream {
	return &LexerStream{lexer: lexer, cats: cats}
}

func (s *LexerStream) PreparePeek() error {
	if s.cached {
		return nil
	}

	tok, err := s.lexer.Next(s.cats)
	if err != nil {
		return err
	}

	s.cachedToken = tok
	s.cached = true

	return nil
}

func (s *LexerStream) ImutPeek() (*Token, error) {
	if !s.cached {
		return nil, nil
	}

	return s.cachedToken, nil
}

func (s *LexerStream) Next() (*Token, error) {
	if err := s.PreparePeek(); err != nil {
		return nil, err
	}

	t := s.cachedToken
	s.cachedToken = nil
	s.cached = false

	return t, nil
}
