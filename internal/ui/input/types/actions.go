package types

// Navigation actions
type NavigateAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a NavigateAction) Type() string { return "navigate" }

// SelectAction is a selection gesture on one entry. Meta and Shift carry
// the modifier keys of a click.
type SelectAction struct {
	Index int // -1 for current
	Meta  bool
	Shift bool
}

func (a SelectAction) Type() string { return "select" }

// MoveSelectAction moves the cursor and shift-extends the selection to it
type MoveSelectAction struct {
	Direction string
}

func (a MoveSelectAction) Type() string { return "move_select" }

type ClearSelectionAction struct{}

func (a ClearSelectionAction) Type() string { return "clear_selection" }

// Mode actions
type ToggleMultiAction struct{}

func (a ToggleMultiAction) Type() string { return "toggle_multi" }

type ToggleShiftModeAction struct{}

func (a ToggleShiftModeAction) Type() string { return "toggle_shift_mode" }

type CycleValueKeyAction struct{}

func (a CycleValueKeyAction) Type() string { return "cycle_value_key" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type QuitAction struct {
	Force bool // true for Ctrl+C, the selection is discarded
}

func (a QuitAction) Type() string { return "quit" }
