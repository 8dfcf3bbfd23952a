package texide

// CategoryTable maps characters to category codes. It is a thin façade
// over a ScopedMap so that category assignments made inside a group are
// rolled back on group exit, just like any other scoped state. A
// character with no mapping defaults to Regular(Other).
type CategoryTable struct {
	scopes *ScopedMap[rune, RawCatCode]
}

// NewCategoryTable returns an empty category table (every character
// defaults to Regular(Other)).
func NewCategoryTable() *CategoryTable {
	return &CategoryTable{scopes: NewScopedMap[rune, RawCatCode]()}
}

// DefaultCategoryTable returns a category table seeded with the standard
// TeX mapping: the escape character, group delimiters, math shift,
// alignment tab, end of line, parameter, sub/superscript, active
// character, comment, space, and ASCII letters.
func DefaultCategoryTable() *CategoryTable {
	t := NewCategoryTable()

	t.Insert('\\', Escape)
	t.Insert('{', Regular(BeginGroup))
	t.Insert('}', Regular(EndGroup))
	t.Insert('$', Regular(MathShift))
	t.Insert('&', Regular(AlignmentTab))
	t.Insert('\n', EndOfLine)
	t.Insert('#', Regular(Parameter))
	t.Insert('^', Regular(Superscript))
	t.Insert('_', Regular(Subscript))
	t.Insert('~', Regular(Active))
	t.Insert('%', Comment)
	t.Insert(' ', Regular(Space))

	for c := 'a'; c <= 'z'; c++ {
		t.Insert(c, Regular(Letter))
	}

	for c := 'A'; c <= 'Z'; c++ {
		t.Insert(c, Regular(Letter))
	}

	return t
}

// Get returns the category assigned to c, or Regular(Other) if c has no
// mapping.
func (t *CategoryTable) Get(c rune) RawCatCode {
	if code, ok := t.scopes.Get(c); ok {
		return code
	}

	return Regular(Other)
}

// Insert assigns code to c in the current scope.
func (t *CategoryTable) Insert(c rune, code RawCatCode) {
	t.scopes.Insert(c, code)
}

// InsertGlobal assigns code to c in every open scope and the global scope.
func (t *CategoryTable) InsertGlobal(c rune, code RawCatCode) {
	t.scopes.InsertGlobal(c, code)
}

// BeginScope opens a new group.
func (t *CategoryTable) BeginScope() {
	t.scopes.BeginScope()
}

// EndScope closes the most recently opened group, rolling back any
// category assignments made inside it. It returns false iff no scope was
// open.
func (t *CategoryTable) EndScope() bool {
	return t.scopes.EndScope()
}
