package selection

import (
	"slices"

	"pickwise/internal/eventbus"
)

// Controller layers multi selection on top of Single. In multi mode the
// selection is driven by an ordered list of values which can be replaced
// or spliced; every mutation reconciles the tracker right away.
type Controller[V comparable, I comparable] struct {
	*Single[V, I]

	multi       bool
	toggleShift bool

	selectedValues []V
	selectedItems  []I

	// anchor for shift range extension, -1 once an unknown value was toggled
	latest    int
	latestSet bool

	fallbackActive bool
}

// NewController creates a controller in single mode with an empty
// selection. A nil bus disables notifications.
func NewController[V comparable, I comparable](mapper Mapper[V, I], bus eventbus.EventBus) *Controller[V, I] {
	c := &Controller[V, I]{
		Single:         newSingle(mapper, bus),
		selectedValues: []V{},
		selectedItems:  []I{},
	}
	c.tracker = NewTracker(func(I, bool) { c.selectionChange() })
	return c
}

// Multi reports whether multiple selections are allowed
func (c *Controller[V, I]) Multi() bool {
	return c.multi
}

// SetMulti switches the selection mode and reconciles for the new mode.
// The current selection carries over: a single selected value seeds an
// empty value list and the first value seeds an unset single selection.
func (c *Controller[V, I]) SetMulti(multi bool) {
	if c.multi == multi {
		return
	}
	c.multi = multi
	c.tracker.SetMulti(multi)

	if multi {
		if len(c.selectedValues) == 0 && c.hasSelected {
			c.splice(0, 0, []V{c.selected})
		}
	} else if !c.hasSelected && len(c.selectedValues) > 0 {
		c.assignSelected(c.selectedValues[0])
	}

	c.bus.Publish(MultiChangedEvent{Multi: multi})
	c.updateSelected()
	c.selectionChange()
}

// ToggleShift reports whether plain clicks replace the selection and only
// modified clicks extend it
func (c *Controller[V, I]) ToggleShift() bool {
	return c.toggleShift
}

// SetToggleShift sets the toggle-shift gesture mode
func (c *Controller[V, I]) SetToggleShift(toggleShift bool) {
	c.toggleShift = toggleShift
}

// SelectedValues returns a copy of the selected values in selection order
func (c *Controller[V, I]) SelectedValues() []V {
	return slices.Clone(c.selectedValues)
}

// SelectedItems returns a copy of the selected items
func (c *Controller[V, I]) SelectedItems() []I {
	return slices.Clone(c.selectedItems)
}

// LatestSelection returns the index of the most recently toggled value
func (c *Controller[V, I]) LatestSelection() (int, bool) {
	return c.latest, c.latestSet
}

// SetSelectedValues replaces the selected values
func (c *Controller[V, I]) SetSelectedValues(values []V) {
	c.splice(0, len(c.selectedValues), slices.Clone(values))
}

// PushSelectedValues appends values
func (c *Controller[V, I]) PushSelectedValues(values ...V) {
	c.splice(len(c.selectedValues), 0, values)
}

// SpliceSelectedValues removes deleteCount values at start and inserts
// values in their place. A negative start counts from the end. The removed
// values are returned.
func (c *Controller[V, I]) SpliceSelectedValues(start, deleteCount int, values ...V) []V {
	return c.splice(start, deleteCount, values)
}

// SetSelected assigns the single selected value
func (c *Controller[V, I]) SetSelected(value V) {
	if c.assignSelected(value) {
		c.updateSelected()
	}
}

// ClearSelected drops the single selected value
func (c *Controller[V, I]) ClearSelected() {
	if c.unassignSelected() {
		c.updateSelected()
	}
}

// SetFallbackSelection sets the value selected when nothing else is, and
// reconciles
func (c *Controller[V, I]) SetFallbackSelection(value V) {
	c.fallback, c.hasFallback = value, true
	c.updateSelected()
}

// ItemsChanged must be called when the candidate list changed
func (c *Controller[V, I]) ItemsChanged() {
	c.updateSelected()
}

// ValueKeyChanged must be called when values are derived differently.
// In multi mode the value list is rebuilt from the selected items.
func (c *Controller[V, I]) ValueKeyChanged() {
	if !c.multi {
		c.updateAttrForSelected()
		return
	}
	if len(c.selectedItems) == 0 {
		return
	}

	values := make([]V, 0, len(c.selectedItems))
	for _, item := range c.selectedItems {
		if v, ok := c.mapper.IndexToValue(c.mapper.IndexOf(item)); ok {
			values = append(values, v)
		}
	}
	c.SetSelectedValues(values)
}

// Select selects value. In multi mode the value is toggled, or with
// toggle-shift enabled, selected alone or range extended depending on the
// modifier keys. In single mode value becomes the selected value.
func (c *Controller[V, I]) Select(value V, metaKey, shiftKey bool) {
	if c.multi {
		c.toggleSelected(value, metaKey, shiftKey)
		return
	}
	c.SetSelected(value)
}

func (c *Controller[V, I]) toggleSelected(value V, metaKey, shiftKey bool) {
	idx := c.mapper.ValueToIndex(value)

	if c.toggleShift && !metaKey && !(shiftKey && c.latestSet && idx == c.latest) {
		if shiftKey && c.latestSet {
			c.splice(len(c.selectedValues), 0, c.extension(idx))
		} else {
			c.splice(0, len(c.selectedValues), []V{value})
		}
	} else {
		if i := slices.Index(c.selectedValues, value); i < 0 {
			c.splice(len(c.selectedValues), 0, []V{value})
		} else {
			c.splice(i, 1, nil)
		}
	}

	c.latest, c.latestSet = idx, true
}

// extension returns the values from the anchor towards idx, excluding the
// anchor and including idx
func (c *Controller[V, I]) extension(idx int) []V {
	if idx < 0 || c.latest < 0 {
		return nil
	}

	first := min(idx, c.latest)
	if c.latest < idx {
		first++
	}
	n := idx - c.latest
	if n < 0 {
		n = -n
	}

	values := make([]V, 0, n)
	for k := range n {
		// indices without a value are dropped rather than pushed as zero values
		if v, ok := c.mapper.IndexToValue(first + k); ok {
			values = append(values, v)
		}
	}
	return values
}

// splice applies one mutation to the value list and reconciles. A splice
// that neither removes nor inserts is dropped.
func (c *Controller[V, I]) splice(start, deleteCount int, values []V) []V {
	n := len(c.selectedValues)
	if start < 0 {
		start = max(n+start, 0)
	}
	start = min(start, n)
	deleteCount = min(max(deleteCount, 0), n-start)

	if deleteCount == 0 && len(values) == 0 {
		return nil
	}

	removed := slices.Clone(c.selectedValues[start : start+deleteCount])

	// Build a new slice so nested calls never see a half-applied mutation
	next := make([]V, 0, n-deleteCount+len(values))
	next = append(next, c.selectedValues[:start]...)
	next = append(next, values...)
	next = append(next, c.selectedValues[start+deleteCount:]...)
	c.selectedValues = next

	// Publish before reconciling so a fallback splice is reported after this one
	c.bus.Publish(ValuesChangedEvent[V]{
		Values: slices.Clone(c.selectedValues),
		Splice: Splice[V]{Index: start, Removed: removed, AddedCount: len(values)},
	})

	c.updateSelected()
	return removed
}

func (c *Controller[V, I]) updateSelected() {
	if c.multi {
		c.selectMulti(c.selectedValues)
	} else {
		c.selectSelected()
	}
}

func (c *Controller[V, I]) selectMulti(values []V) {
	items := valuesToItems(c.mapper, values)

	c.tracker.Clear(items)
	for _, item := range items {
		c.tracker.SetItemSelected(item, true)
	}

	if !c.hasFallback || c.fallbackActive || c.tracker.Len() > 0 {
		return
	}
	if _, ok := c.mapper.ValueToItem(c.fallback); !ok {
		return
	}

	c.fallbackActive = true
	defer func() { c.fallbackActive = false }()
	c.Select(c.fallback, false, false)
}

func (c *Controller[V, I]) selectionChange() {
	items := c.tracker.Get()
	c.setSelectedItems(items)

	if !c.multi {
		c.Single.selectionChange()
		return
	}
	if len(items) > 0 {
		c.setSelectedItem(items[0], true)
		return
	}
	var zero I
	c.setSelectedItem(zero, false)
}

func (c *Controller[V, I]) setSelectedItems(items []I) {
	if items == nil {
		items = []I{}
	}
	if slices.Equal(c.selectedItems, items) {
		return
	}
	c.selectedItems = items
	c.bus.Publish(ItemsChangedEvent[I]{Items: slices.Clone(items)})
}
