package selection

import "pickwise/internal/domain"

// Splice records one mutation of the selected values
type Splice[V comparable] struct {
	Index      int
	Removed    []V
	AddedCount int
}

// ValuesChangedEvent is published after the selected values changed and
// were reconciled
type ValuesChangedEvent[V comparable] struct {
	Values []V
	Splice Splice[V]
}

func (e ValuesChangedEvent[V]) Type() domain.EventType { return domain.EventSelectedValuesChanged }

// ItemsChangedEvent is published when the derived item list changed
type ItemsChangedEvent[I comparable] struct {
	Items []I
}

func (e ItemsChangedEvent[I]) Type() domain.EventType { return domain.EventSelectedItemsChanged }

// ItemChangedEvent is published when the primary selected item changed.
// Selected is false when no item is selected anymore.
type ItemChangedEvent[I comparable] struct {
	Item     I
	Selected bool
}

func (e ItemChangedEvent[I]) Type() domain.EventType { return domain.EventSelectedItemChanged }

// MultiChangedEvent is published when the selection mode changed
type MultiChangedEvent struct {
	Multi bool
}

func (e MultiChangedEvent) Type() domain.EventType { return domain.EventMultiChanged }
