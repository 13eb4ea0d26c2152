package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigateClampsToList(t *testing.T) {
	n := New(func() int { return 3 })

	assert.False(t, n.Navigate(DirectionUp))
	assert.True(t, n.Navigate(DirectionDown))
	n.Navigate(DirectionEnd)
	assert.Equal(t, 2, n.Cursor())
	assert.False(t, n.Navigate(DirectionDown))
	n.Navigate(DirectionHome)
	assert.Equal(t, 0, n.Cursor())
}

func TestNavigateScrollsViewport(t *testing.T) {
	n := New(func() int { return 50 })
	n.SetViewportHeight(10)

	n.Navigate(DirectionPageDown)
	assert.Equal(t, 9, n.Cursor())
	assert.Equal(t, 0, n.ViewportOffset())

	n.Navigate(DirectionDown)
	assert.Equal(t, 1, n.ViewportOffset())

	n.MoveTo(49)
	assert.Equal(t, 40, n.ViewportOffset())

	n.Navigate(DirectionPageUp)
	assert.Equal(t, 40, n.Cursor())
	n.Navigate(DirectionUp)
	assert.Equal(t, 39, n.ViewportOffset())
}

func TestRowToIndex(t *testing.T) {
	n := New(func() int { return 12 })
	n.SetViewportHeight(10)
	n.MoveTo(11)

	idx, ok := n.RowToIndex(0)
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = n.RowToIndex(10)
	assert.False(t, ok)
	_, ok = n.RowToIndex(-1)
	assert.False(t, ok)
}

func TestEmptyList(t *testing.T) {
	n := New(func() int { return 0 })
	n.Navigate(DirectionEnd)
	assert.Equal(t, 0, n.Cursor())
	_, ok := n.RowToIndex(0)
	assert.False(t, ok)
}
