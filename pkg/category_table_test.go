package texide

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryTableDefaultsUnknownToOther(t *testing.T) {
	table := NewCategoryTable()
	assert.Equal(t, Regular(Other), table.Get('!'))
}

func TestDefaultCategoryTableSeeds(t *testing.T) {
	table := DefaultCategoryTable()

	assert.Equal(t, Escape, table.Get('\\'))
	assert.Equal(t, Regular(BeginGroup), table.Get('{'))
	assert.Equal(t, Regular(EndGroup), table.Get('}'))
	assert.Equal(t, EndOfLine, table.Get('\n'))
	assert.Equal(t, Comment, table.Get('%'))
	assert.Equal(t, Regular(Space), table.Get(' '))
	assert.Equal(t, Regular(Letter), table.Get('a'))
	assert.Equal(t, Regular(Letter), table.Get('Z'))
	assert.Equal(t, Regular(Other), table.Get('1'))
}

func TestCategoryTableScoping(t *testing.T) {
	table := NewCategoryTable()
	table.Insert('Z', Regular(Letter))

	table.BeginScope()
	table.Insert('Z', Ignored)
	assert.Equal(t, Ignored, table.Get('Z'))

	assert.True(t, table.EndScope())
	assert.Equal(t, Regular(Letter), table.Get('Z'))

	assert.False(t, table.EndScope())
}
