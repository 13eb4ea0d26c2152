package navigation

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)

// Navigator moves a cursor over a list and keeps it inside the viewport
type Navigator struct {
	cursor         int
	viewportOffset int
	viewportHeight int
	count          func() int
}

// New creates a navigator over a list whose length count reports
func New(count func() int) *Navigator {
	return &Navigator{
		viewportHeight: 20,
		count:          count,
	}
}

// Cursor returns current cursor position
func (n *Navigator) Cursor() int {
	return n.cursor
}

// ViewportOffset returns the first visible row
func (n *Navigator) ViewportOffset() int {
	return n.viewportOffset
}

// ViewportHeight returns the number of visible rows
func (n *Navigator) ViewportHeight() int {
	return n.viewportHeight
}

// SetViewportHeight updates the number of visible rows
func (n *Navigator) SetViewportHeight(height int) {
	if height < 1 {
		height = 1
	}
	n.viewportHeight = height
	n.ensureVisible()
}

// Navigate moves the cursor and reports whether it moved
func (n *Navigator) Navigate(direction Direction) bool {
	old := n.cursor
	page := max(n.viewportHeight-1, 1)

	switch direction {
	case DirectionUp:
		n.cursor--
	case DirectionDown:
		n.cursor++
	case DirectionPageUp:
		n.cursor -= page
	case DirectionPageDown:
		n.cursor += page
	case DirectionHome:
		n.cursor = 0
	case DirectionEnd:
		n.cursor = n.count() - 1
	}

	n.cursor = n.clamp(n.cursor)
	n.ensureVisible()
	return old != n.cursor
}

// MoveTo moves the cursor to index
func (n *Navigator) MoveTo(index int) {
	n.cursor = n.clamp(index)
	n.ensureVisible()
}

// RowToIndex converts a visible row to a list index
func (n *Navigator) RowToIndex(row int) (int, bool) {
	if row < 0 || row >= n.viewportHeight {
		return 0, false
	}
	index := n.viewportOffset + row
	if index >= n.count() {
		return 0, false
	}
	return index, true
}

func (n *Navigator) clamp(index int) int {
	last := n.count() - 1
	if index > last {
		index = last
	}
	if index < 0 {
		index = 0
	}
	return index
}

func (n *Navigator) ensureVisible() {
	if n.cursor < n.viewportOffset {
		n.viewportOffset = n.cursor
	} else if n.cursor >= n.viewportOffset+n.viewportHeight {
		n.viewportOffset = n.cursor - n.viewportHeight + 1
	}
}
