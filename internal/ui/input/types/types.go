package types

import tea "github.com/charmbracelet/bubbletea"

// Mode represents an input mode
type Mode int

const (
	ModeNormal Mode = iota
)

// Action represents a command the model should execute
type Action interface {
	Type() string
}

// Context provides read-only access to model state needed for input handling
type Context interface {
	CurrentIndex() int
	TotalItems() int
	Multi() bool
	// IndexAtRow maps a screen row to a list index
	IndexAtRow(y int) (int, bool)
}

// ModeHandler handles input for a specific mode
type ModeHandler interface {
	// HandleKey processes a key message and returns actions and whether to consume the event
	HandleKey(msg tea.KeyMsg, ctx Context) ([]Action, bool)

	// HandleMouse processes a mouse message
	HandleMouse(msg tea.MouseMsg, ctx Context) ([]Action, bool)

	// Name returns the mode name for display
	Name() string
}
