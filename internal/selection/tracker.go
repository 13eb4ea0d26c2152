package selection

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ChangeFunc is called by the Tracker whenever an item changes state
type ChangeFunc[I comparable] func(item I, selected bool)

// Tracker owns the set of currently selected items. Items are kept in the
// order they were selected.
type Tracker[I comparable] struct {
	multi    bool
	items    *orderedmap.OrderedMap[I, struct{}]
	onChange ChangeFunc[I]
}

// NewTracker creates an empty tracker. onChange may be nil.
func NewTracker[I comparable](onChange ChangeFunc[I]) *Tracker[I] {
	return &Tracker[I]{
		items:    orderedmap.New[I, struct{}](),
		onChange: onChange,
	}
}

// Multi reports whether more than one item may be selected
func (t *Tracker[I]) Multi() bool {
	return t.multi
}

// SetMulti switches the tracker mode. Existing selections are kept; the
// owner is expected to reconcile right after.
func (t *Tracker[I]) SetMulti(multi bool) {
	t.multi = multi
}

// Get returns the selected items. In single mode at most one item is
// returned.
func (t *Tracker[I]) Get() []I {
	if !t.multi {
		if pair := t.items.Oldest(); pair != nil {
			return []I{pair.Key}
		}
		return nil
	}

	result := make([]I, 0, t.items.Len())
	for pair := t.items.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Key)
	}
	return result
}

// Len returns the number of tracked items
func (t *Tracker[I]) Len() int {
	return t.items.Len()
}

// IsSelected checks if an item is selected
func (t *Tracker[I]) IsSelected(item I) bool {
	_, ok := t.items.Get(item)
	return ok
}

// SetItemSelected sets the state of one item. Nothing happens, and no
// change is reported, if the item already has that state.
func (t *Tracker[I]) SetItemSelected(item I, selected bool) {
	if selected == t.IsSelected(item) {
		return
	}

	if selected {
		t.items.Set(item, struct{}{})
	} else {
		t.items.Delete(item)
	}

	if t.onChange != nil {
		t.onChange(item, selected)
	}
}

// Clear deselects every item not contained in except
func (t *Tracker[I]) Clear(except []I) {
	keep := make(map[I]struct{}, len(except))
	for _, item := range except {
		keep[item] = struct{}{}
	}

	// Snapshot first, the change callback may read the set
	var drop []I
	for pair := t.items.Oldest(); pair != nil; pair = pair.Next() {
		if _, ok := keep[pair.Key]; !ok {
			drop = append(drop, pair.Key)
		}
	}
	for _, item := range drop {
		t.SetItemSelected(item, false)
	}
}

// Select toggles item in multi mode and makes it the only selected item
// otherwise.
func (t *Tracker[I]) Select(item I) {
	if t.multi {
		t.Toggle(item)
		return
	}
	t.Clear([]I{item})
	t.SetItemSelected(item, true)
}

// Toggle flips the state of item
func (t *Tracker[I]) Toggle(item I) {
	t.SetItemSelected(item, !t.IsSelected(item))
}
