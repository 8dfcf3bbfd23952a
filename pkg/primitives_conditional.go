package texide

// The conditional family (\if, \else, \fi) is the one place the front
// end's scope stops short of full TeX: \if does not evaluate a
// condition, since this tokenizer has no notion of "equal characters" or
// "equal category codes" to test. Instead it behaves as if the condition
// were always false: it discards the unexpanded stream up to and
// including the token bearing the \else identity, so only the else
// branch ever reaches the caller. \else and \fi themselves do no
// scanning: \else returns an empty stream wherever it is reached, and \fi
// returns an empty stream when it closes an open conditional but fails
// with UnexpectedEndOfInputError when none is open. This is a
// documented stub, not real TeX — see the Open
// Question discussion in DESIGN.md.

// IfPrimitive returns the \if primitive: scanning the unexpanded stream
// for the matching \else and discarding everything up to and including
// it. It does not track nested \if/\else/\fi at all, matching the
// ground-truth source's naive single-level scan.
func IfPrimitive() Primitive {
	return NewExpansionPrimitive(IdentityIf, "discard tokens up to the matching \\else (always takes the false branch)", func(input Input) (Stream, error) {
		input.State().EnterConditional()

		unexpanded := input.UnexpandedStream()

		for {
			tok, err := unexpanded.Next()
			if err != nil {
				return nil, err
			}

			if tok == nil {
				return nil, NewUnexpectedEndOfInputError()
			}

			cs, ok := tok.Value.(ControlSequence)
			if !ok {
				continue
			}

			prim, bound := input.State().Primitives.Get(cs.Name)
			if !bound {
				continue
			}

			if prim.GetIdentity() == IdentityElse {
				return EmptyStream{}, nil
			}
		}
	})
}

// ElsePrimitive returns the \else primitive: a no-op, per spec. It is
// only ever meant to be consumed by \if's scan; reaching it directly in
// an expanded stream is not specifically handled here.
func ElsePrimitive() Primitive {
	return NewExpansionPrimitive(IdentityElse, "end of an \\if's discarded branch (no-op)", func(input Input) (Stream, error) {
		return EmptyStream{}, nil
	})
}

// FiPrimitive returns the \fi primitive: it produces no tokens and closes
// the innermost open conditional (the conditional-nesting depth counter's
// only consumer, layered on top of the no-op token behavior for the \fi
// Open Question — see DESIGN.md). With no conditional open it fails with
// UnexpectedEndOfInputError.
func FiPrimitive() Primitive {
	return NewExpansionPrimitive(IdentityFi, "end a conditional (no-op)", func(input Input) (Stream, error) {
		if !input.State().ExitConditional() {
			return nil, NewUnexpectedEndOfInputError()
		}

		return EmptyStream{}, nil
	})
}
