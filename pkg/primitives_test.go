package texide

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityString(t *testing.T) {
	assert.Equal(t, "if", IdentityIf.String())
	assert.Equal(t, "else", IdentityElse.String())
	assert.Equal(t, "fi", IdentityFi.String())
	assert.Equal(t, "none", IdentityNone.String())
}

func TestPrimitiveIsExpansion(t *testing.T) {
	prim := IfPrimitive()
	assert.True(t, prim.IsExpansion())
	assert.Equal(t, IdentityIf, prim.GetIdentity())

	var zero Primitive
	assert.False(t, zero.IsExpansion())
}

func TestRegisterDefaultPrimitivesBindsByName(t *testing.T) {
	prims := NewScopedMap[string, Primitive]()
	RegisterDefaultPrimitives(prims)

	for _, name := range []string{"if", "else", "fi", "texide"} {
		p, ok := prims.Get(name)
		assert.True(t, ok, "expected %q to be bound", name)
		assert.True(t, p.IsExpansion())
	}
}

func TestIdentityIsRecognizedAcrossRebinding(t *testing.T) {
	// A primitive's Identity travels with the Primitive value itself, not
	// the name it's bound under: rebinding \fi to a different name must
	// not stop the conditional machinery from recognizing it.
	prims := NewScopedMap[string, Primitive]()
	prims.InsertGlobal("endif", FiPrimitive())

	p, ok := prims.Get("endif")
	assert.True(t, ok)
	assert.Equal(t, IdentityFi, p.GetIdentity())
}
