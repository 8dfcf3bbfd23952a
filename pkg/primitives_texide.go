package texide

// TexidePrimitive returns \texide, a supplemented primitive (not present
// in the distilled spec) that expands to the six letter tokens spelling
// "Texide". It exists mainly as a minimal, hand-traceable fixture for
// exercising expansion end to end, the way the original project's own
// test suite uses a handful of literal macros for the same purpose.
func TexidePrimitive() Primitive {
	return NewExpansionPrimitive(IdentityNone, "expand to the literal text \"Texide\"", func(input Input) (Stream, error) {
		letters := []rune("Texide")
		toks := make([]Token, len(letters))

		for i, ch := range letters {
			toks[i] = NewCharacterToken(ch, Letter, nil)
		}

		return NewVecStream(toks), nil
	})
}

// RegisterDefaultPrimitives binds the front end's built-in primitives
// into prims, as a fresh State's Primitives table would need before
// running any input.
func RegisterDefaultPrimitives(prims *ScopedMap[string, Primitive]) {
	prims.InsertGlobal("if", IfPrimitive())
	prims.InsertGlobal("else", ElsePrimitive())
	prims.InsertGlobal("fi", FiPrimitive())
	prims.InsertGlobal("texide", TexidePrimitive())
}
