package texide

// unexpandedStream is the root stream plus a LIFO stack of replacement
// streams pushed by expansion. Reading always drains the topmost
// non-empty stream on the stack before falling through to root, which is
// exactly the "pushback buffer" TeX uses to splice macro replacement text
// back into the input without copying the rest of the source.
type unexpandedStream struct {
	root  Stream
	stack []Stream
}

func newUnexpandedStream(root Stream) *unexpandedStream {
	return &unexpandedStream{root: root}
}

// push installs s as the new topmost stream.
func (u *unexpandedStream) push(s Stream) {
	u.stack = append(u.stack, s)
}

// current returns the stream that the next read should come from,
// popping any exhausted streams off the stack first.
func (u *unexpandedStream) current() (Stream, error) {
	for len(u.stack) > 0 {
		top := u.stack[len(u.stack)-1]

		tok, err := Peek(top)
		if err != nil {
			return nil, err
		}

		if tok != nil {
			return top, nil
		}

		u.stack = u.stack[:len(u.stack)-1]
	}

	return u.root, nil
}

func (u *unexpandedStream) Next() (*Token, error) {
	s, err := u.current()
	if err != nil {
		return nil, err
	}

	return s.Next()
}

func (u *unexpandedStream) PreparePeek() error {
	s, err := u.current()
	if err != nil {
		return err
	}

	return s.PreparePeek()
}

func (u *unexpandedStream) ImutPeek() (*Token, error) {
	s, err := u.current()
	if err != nil {
		return nil, err
	}

	return s.ImutPeek()
}

// Expander is a Stream that transparently expands control sequences
// bound to expansion primitives as it is read, recursing until the head
// token is either a Character or a ControlSequence with no expansion
// primitive bound. It also implements Input so that primitives' expand
// functions can recurse into it.
type Expander struct {
	state      *State
	unexpanded *unexpandedStream
}

// NewExpander returns an Expander reading from state's root stream and
// consulting state's primitive registry.
func NewExpander(state *State) *Expander {
	return &Expander{
		state:      state,
		unexpanded: newUnexpandedStream(state.Root),
	}
}

// State implements Input.
func (e *Expander) State() *State { return e.state }

// Stream implements Input, returning the Expander itself: a primitive
// that wants to read further (already-expanded) tokens reads from here.
func (e *Expander) Stream() Stream { return e }

// UnexpandedStream implements Input.
func (e *Expander) UnexpandedStream() Stream { return e.unexpanded }

// lookupPrimitive returns the primitive bound to tok's control sequence
// name, if tok is a ControlSequence and such a binding exists.
func (e *Expander) lookupPrimitive(tok *Token) (Primitive, bool) {
	cs, ok := tok.Value.(ControlSequence)
	if !ok {
		return Primitive{}, false
	}

	return e.state.Primitives.Get(cs.Name)
}

// ExpandNext implements Input: it peeks the head of the unexpanded
// stream, and if it names an expansion primitive, consumes it and pushes
// its replacement stream. It reports false (without error) if the head
// was not an expansion primitive, or if the stream is empty.
func (e *Expander) ExpandNext() (bool, error) {
	tok, err := Peek(e.unexpanded)
	if err != nil {
		return false, err
	}

	if tok == nil {
		return false, nil
	}

	prim, ok := e.lookupPrimitive(tok)
	if !ok || !prim.IsExpansion() {
		return false, nil
	}

	if err := Consume(e.unexpanded); err != nil {
		return false, err
	}

	replacement, err := prim.Expand(e)
	if err != nil {
		return false, err
	}

	e.unexpanded.push(replacement)

	return true, nil
}

// expandToHead repeatedly calls ExpandNext until the head of the
// unexpanded stream is not an expansion primitive (or the stream is
// empty), so that Next and ImutPeek/PreparePeek always observe a token
// that is safe to hand to a caller as-is.
func (e *Expander) expandToHead() error {
	for {
		expanded, err := e.ExpandNext()
		if err != nil {
			return err
		}

		if !expanded {
			return nil
		}
	}
}

func (e *Expander) PreparePeek() error {
	if err := e.expandToHead(); err != nil {
		return err
	}

	return e.unexpanded.PreparePeek()
}

func (e *Expander) ImutPeek() (*Token, error) {
	return e.unexpanded.ImutPeek()
}

func (e *Expander) Next() (*Token, error) {
	if err := e.expandToHead(); err != nil {
		return nil, err
	}

	return e.unexpanded.Next()
}
