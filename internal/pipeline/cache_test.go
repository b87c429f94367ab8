package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderCache_GetPut(t *testing.T) {
	c := newRenderCache(2)

	_, ok := c.get("a")
	assert.False(t, ok)

	c.put("a", rendering{characters: 3, segments: []string{"abc"}})
	got, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, 3, got.characters)
	assert.Equal(t, []string{"abc"}, got.segments)
}

func TestRenderCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newRenderCache(2)
	c.put("a", rendering{characters: 1})
	c.put("b", rendering{characters: 2})

	// touch a so b becomes the eviction candidate
	_, ok := c.get("a")
	require.True(t, ok)

	c.put("c", rendering{characters: 3})
	assert.Equal(t, 2, c.len())

	_, ok = c.get("b")
	assert.False(t, ok)
	_, ok = c.get("a")
	assert.True(t, ok)
	_, ok = c.get("c")
	assert.True(t, ok)
}

func TestRenderCache_PutOverwrites(t *testing.T) {
	c := newRenderCache(2)
	c.put("a", rendering{characters: 1})
	c.put("a", rendering{characters: 5})

	got, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, 5, got.characters)
	assert.Equal(t, 1, c.len())
}
