package selection

import (
	"pickwise/internal/eventbus"
)

// Single is the single-selection capability: one assignable selected
// value, resolved to one selected item.
type Single[V comparable, I comparable] struct {
	mapper  Mapper[V, I]
	tracker *Tracker[I]
	bus     eventbus.EventBus

	selected    V
	hasSelected bool

	selectedItem    I
	hasSelectedItem bool

	fallback    V
	hasFallback bool
}

// NewSingle creates a single-selection controller over mapper. A nil bus
// disables notifications.
func NewSingle[V comparable, I comparable](mapper Mapper[V, I], bus eventbus.EventBus) *Single[V, I] {
	s := newSingle(mapper, bus)
	s.tracker = NewTracker(func(I, bool) { s.selectionChange() })
	return s
}

func newSingle[V comparable, I comparable](mapper Mapper[V, I], bus eventbus.EventBus) *Single[V, I] {
	if bus == nil {
		bus = eventbus.NullBus{}
	}
	return &Single[V, I]{
		mapper: mapper,
		bus:    bus,
	}
}

// Mapper returns the value/item mapping the selection resolves through
func (s *Single[V, I]) Mapper() Mapper[V, I] {
	return s.mapper
}

// Selected returns the selected value
func (s *Single[V, I]) Selected() (V, bool) {
	return s.selected, s.hasSelected
}

// SetSelected selects value. Assigning the current value again does nothing.
func (s *Single[V, I]) SetSelected(value V) {
	if s.assignSelected(value) {
		s.selectSelected()
	}
}

// ClearSelected drops the selected value
func (s *Single[V, I]) ClearSelected() {
	if s.unassignSelected() {
		s.selectSelected()
	}
}

// Select selects value
func (s *Single[V, I]) Select(value V) {
	s.SetSelected(value)
}

// SelectedItem returns the item of the selected value
func (s *Single[V, I]) SelectedItem() (I, bool) {
	return s.selectedItem, s.hasSelectedItem
}

// IsSelected reports whether item is currently selected
func (s *Single[V, I]) IsSelected(item I) bool {
	return s.tracker.IsSelected(item)
}

// FallbackSelection returns the value selected when nothing else is
func (s *Single[V, I]) FallbackSelection() (V, bool) {
	return s.fallback, s.hasFallback
}

// SetFallbackSelection sets the fallback and reconciles
func (s *Single[V, I]) SetFallbackSelection(value V) {
	s.fallback, s.hasFallback = value, true
	s.selectSelected()
}

// ClearFallbackSelection removes the fallback
func (s *Single[V, I]) ClearFallbackSelection() {
	var zero V
	s.fallback, s.hasFallback = zero, false
}

// ItemsChanged must be called when the candidate list changed
func (s *Single[V, I]) ItemsChanged() {
	s.selectSelected()
}

// ValueKeyChanged must be called when values are derived differently;
// the selected value is re-derived from the selected item.
func (s *Single[V, I]) ValueKeyChanged() {
	s.updateAttrForSelected()
}

func (s *Single[V, I]) assignSelected(value V) bool {
	if s.hasSelected && s.selected == value {
		return false
	}
	s.selected, s.hasSelected = value, true
	return true
}

func (s *Single[V, I]) unassignSelected() bool {
	if !s.hasSelected {
		return false
	}
	var zero V
	s.selected, s.hasSelected = zero, false
	return true
}

func (s *Single[V, I]) selectSelected() {
	if s.hasSelected {
		if item, ok := s.mapper.ValueToItem(s.selected); ok {
			s.tracker.Select(item)
		} else {
			s.tracker.Clear(nil)
		}
	} else {
		s.tracker.Clear(nil)
	}

	// The equality check stops an unresolvable fallback from reassigning forever
	if s.hasFallback && s.mapper.Len() > 0 && s.tracker.Len() == 0 &&
		!(s.hasSelected && s.selected == s.fallback) {
		s.SetSelected(s.fallback)
	}
}

func (s *Single[V, I]) selectionChange() {
	items := s.tracker.Get()
	if len(items) == 1 {
		s.setSelectedItem(items[0], true)
		return
	}
	var zero I
	s.setSelectedItem(zero, false)
}

func (s *Single[V, I]) setSelectedItem(item I, ok bool) {
	if s.hasSelectedItem == ok && s.selectedItem == item {
		return
	}
	s.selectedItem, s.hasSelectedItem = item, ok
	s.bus.Publish(ItemChangedEvent[I]{Item: item, Selected: ok})
}

func (s *Single[V, I]) updateAttrForSelected() {
	if !s.hasSelectedItem {
		return
	}
	value, ok := s.mapper.IndexToValue(s.mapper.IndexOf(s.selectedItem))
	if !ok {
		return
	}
	s.SetSelected(value)
}
