package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleSelect(t *testing.T) {
	list := newTestList("a", "b", "c")
	s := NewSingle[string, *testItem](list, nil)

	s.Select("b")
	item, ok := s.SelectedItem()
	require.True(t, ok)
	assert.Same(t, list.item("b"), item)

	s.Select("c")
	item, _ = s.SelectedItem()
	assert.Same(t, list.item("c"), item)
	assert.False(t, s.IsSelected(list.item("b")))

	s.ClearSelected()
	_, ok = s.SelectedItem()
	assert.False(t, ok)
	_, ok = s.Selected()
	assert.False(t, ok)
}

func TestSingleFallback(t *testing.T) {
	list := newTestList("a", "b", "c")
	s := NewSingle[string, *testItem](list, nil)

	s.SetFallbackSelection("a")
	v, ok := s.Selected()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	s.SetSelected("zz")
	v, _ = s.Selected()
	assert.Equal(t, "a", v)
	item, ok := s.SelectedItem()
	require.True(t, ok)
	assert.Same(t, list.item("a"), item)
}

func TestSingleUnresolvableFallbackStops(t *testing.T) {
	list := newTestList("a", "b")
	s := NewSingle[string, *testItem](list, nil)
	s.SetSelected("b")

	s.SetFallbackSelection("q")
	s.SetSelected("zz")

	v, _ := s.Selected()
	assert.Equal(t, "q", v)
	_, ok := s.SelectedItem()
	assert.False(t, ok)
}

func TestSingleItemsChanged(t *testing.T) {
	list := newTestList("a", "b")
	s := NewSingle[string, *testItem](list, nil)
	s.SetSelected("b")

	list.remove("b")
	s.ItemsChanged()

	_, ok := s.SelectedItem()
	assert.False(t, ok)

	list.items = append(list.items, &testItem{name: "b"})
	s.ItemsChanged()
	item, ok := s.SelectedItem()
	require.True(t, ok)
	assert.Equal(t, "b", item.name)
}
