package texide

// BaseState holds the two pieces of scoped global state every primitive
// and the lexer consult: the category table and the primitive registry.
// It is split out from State so that it can be embedded without also
// carrying a root Stream, which only the top-level State needs.
type BaseState struct {
	Categories *CategoryTable
	Primitives *ScopedMap[string, Primitive]

	// conditionalDepth counts \if groups entered but not yet closed by a
	// matching \fi. It is not part of the original TeX conditional
	// machinery (which tracks true/false branch state); it exists so that
	// \fi has an observable, testable effect even though \if itself is a
	// documented stub. See the conditional primitives for details.
	conditionalDepth int
}

// NewBaseState returns a BaseState seeded with the default category table
// and no registered primitives.
func NewBaseState() *BaseState {
	return &BaseState{
		Categories: DefaultCategoryTable(),
		Primitives: NewScopedMap[string, Primitive](),
	}
}

// BeginGroup opens a new scope over both the category table and the
// primitive registry.
func (s *BaseState) BeginGroup() {
	s.Categories.BeginScope()
	s.Primitives.BeginScope()
}

// EndGroup closes the most recently opened scope, rolling back any
// category or primitive bindings made inside it. It returns false iff no
// scope was open in either table (the two are always opened and closed
// together, so this only happens on a programmer error).
func (s *BaseState) EndGroup() bool {
	okCats := s.Categories.EndScope()
	okPrims := s.Primitives.EndScope()

	return okCats && okPrims
}

// EnterConditional records that an \if has been entered.
func (s *BaseState) EnterConditional() {
	s.conditionalDepth++
}

// ExitConditional records that a \fi has closed the innermost open \if. It
// returns false if no conditional was open.
func (s *BaseState) ExitConditional() bool {
	if s.conditionalDepth == 0 {
		return false
	}

	s.conditionalDepth--

	return true
}

// ConditionalDepth reports how many \if groups are currently open.
func (s *BaseState) ConditionalDepth() int {
	return s.conditionalDepth
}

// State is the full expansion state: the scoped category/primitive tables
// plus the root stream expansion reads from once its pushback stack is
// empty.
type State struct {
	*BaseState

	Root Stream
}

// NewState returns a State reading from root once expansion replacement
// streams are exhausted.
func NewState(root Stream) *State {
	return &State{
		BaseState: NewBaseState(),
		Root:      root,
	}
}
