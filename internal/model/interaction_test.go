package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInteractionCounts_HasAllTypes(t *testing.T) {
	c := NewInteractionCounts()
	assert.Len(t, c, 4)
	for _, typ := range InteractionTypes {
		v, ok := c[typ]
		assert.True(t, ok, typ)
		assert.Zero(t, v)
	}
}

func TestInteractionCounts_ApplyRevert(t *testing.T) {
	c := NewInteractionCounts()
	c[InteractionLove] = 3

	revert := c.Apply(InteractionLove)
	assert.EqualValues(t, 4, c[InteractionLove])
	revert()
	assert.EqualValues(t, 3, c[InteractionLove])

	commit := c.Clone()
	c.Apply(InteractionLike)
	assert.EqualValues(t, 1, c[InteractionLike])
	assert.EqualValues(t, 0, commit[InteractionLike])
}

func TestPostPatch_Columns(t *testing.T) {
	title := "New"
	p := PostPatch{Title: &title}
	assert.Equal(t, map[string]any{"title": "New"}, p.Columns())
	assert.False(t, p.IsEmpty())
	assert.True(t, PostPatch{}.IsEmpty())
}

func TestInteractionType_Valid(t *testing.T) {
	assert.True(t, InteractionCelebrate.Valid())
	assert.False(t, InteractionType("dislike").Valid())
}
