package texide

// Identity distinguishes primitives whose behavior depends on what they
// intrinsically are, not on what name they happen to be bound to. The
// conditional primitives are the motivating case: \else and \fi must be
// recognizable by the expander even if a user has rebound \else to some
// other name, which rules out a name-based (string) comparison. Rust's
// original used TypeId for this; Go has no exact analogue for values of
// a single concrete struct type, so Identity is carried explicitly.
type Identity int

const (
	// IdentityNone marks a primitive with no special identity: ordinary
	// expansion macros and the like.
	IdentityNone Identity = iota
	IdentityIf
	IdentityElse
	IdentityFi
)

func (id Identity) String() string {
	switch id {
	case IdentityIf:
		return "if"
	case IdentityElse:
		return "else"
	case IdentityFi:
		return "fi"
	default:
		return "none"
	}
}

// Input is the view of the expansion machinery a primitive's expansion
// function is given. It exposes the state to read and mutate, the fully
// unexpanded stream to pull raw lookahead tokens from (used by
// conditionals skipping to \else/\fi), and the ability to trigger a
// single further expansion step.
type Input interface {
	// State returns the shared expansion state.
	State() *State

	// Stream returns the expander's own output stream, i.e. what the
	// primitive's caller is reading from.
	Stream() Stream

	// UnexpandedStream returns the raw, unexpanded token source: reading
	// from it does not recursively trigger expansion. Conditionals use
	// this to scan for \else/\fi without expanding the skipped tokens.
	UnexpandedStream() Stream

	// ExpandNext performs one expansion step on the head of the
	// unexpanded stream, pushing its replacement. It returns false if the
	// head token was not an expansion primitive (nothing was pushed).
	ExpandNext() (bool, error)
}

// Primitive is a single built-in meaning: either an expansion macro (one
// that, when encountered, is replaced by a Stream of further tokens) or
// an ordinary non-expandable primitive. Expansion is the only kind the
// front end currently implements; there is no separate kind field, and
// IsExpansion reports whether an expansion function is set.
type Primitive struct {
	identity Identity
	expand   func(Input) (Stream, error)
	doc      string
}

// NewExpansionPrimitive returns a Primitive that, when expanded, calls fn
// to produce its replacement stream. identity should be IdentityNone
// unless the primitive needs to be recognized regardless of its bound
// name.
func NewExpansionPrimitive(identity Identity, doc string, fn func(Input) (Stream, error)) Primitive {
	return Primitive{identity: identity, expand: fn, doc: doc}
}

// IsExpansion reports whether p expands to a replacement stream.
func (p Primitive) IsExpansion() bool {
	return p.expand != nil
}

// GetIdentity returns p's intrinsic identity.
func (p Primitive) GetIdentity() Identity {
	return p.identity
}

// Doc returns a short human-readable description of p.
func (p Primitive) Doc() string {
	return p.doc
}

// Expand runs p's expansion function against input. It panics if p is
// not an expansion primitive; callers must check IsExpansion first.
func (p Primitive) Expand(input Input) (Stream, error) {
	return p.expand(input)
}
