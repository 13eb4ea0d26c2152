package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pickwise/internal/ui/input/types"
)

type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Abort):
		return []types.Action{types.QuitAction{Force: true}}, true
	case key.Matches(msg, k.Accept):
		return []types.Action{types.QuitAction{}}, true

	case key.Matches(msg, k.ExtendUp):
		return []types.Action{types.MoveSelectAction{Direction: "up"}}, true
	case key.Matches(msg, k.ExtendDown):
		return []types.Action{types.MoveSelectAction{Direction: "down"}}, true

	case key.Matches(msg, k.Up):
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case key.Matches(msg, k.Down):
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case key.Matches(msg, k.PageUp):
		return []types.Action{types.NavigateAction{Direction: "pageup"}}, true
	case key.Matches(msg, k.PageDown):
		return []types.Action{types.NavigateAction{Direction: "pagedown"}}, true
	case key.Matches(msg, k.Home):
		return []types.Action{types.NavigateAction{Direction: "home"}}, true
	case key.Matches(msg, k.End):
		return []types.Action{types.NavigateAction{Direction: "end"}}, true

	case key.Matches(msg, k.Toggle):
		if ctx.TotalItems() == 0 {
			return nil, false
		}
		// Space behaves like a ctrl-click
		return []types.Action{types.SelectAction{Index: -1, Meta: true}}, true
	case key.Matches(msg, k.Pick):
		if ctx.TotalItems() == 0 {
			return nil, false
		}
		return []types.Action{types.SelectAction{Index: -1}}, true
	case key.Matches(msg, k.Clear):
		return []types.Action{types.ClearSelectionAction{}}, true

	case key.Matches(msg, k.Multi):
		return []types.Action{types.ToggleMultiAction{}}, true
	case key.Matches(msg, k.ToggleShift):
		return []types.Action{types.ToggleShiftModeAction{}}, true
	case key.Matches(msg, k.ValueKey):
		return []types.Action{types.CycleValueKeyAction{}}, true
	case key.Matches(msg, k.Help):
		return []types.Action{types.ToggleHelpAction{}}, true
	}

	return nil, false
}

// HandleMouse turns a left click into a selection gesture. Terminals do
// not report the command key, so alt stands in for it.
func (m *NormalMode) HandleMouse(msg tea.MouseMsg, ctx types.Context) ([]types.Action, bool) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		return []types.Action{types.NavigateAction{Direction: "up"}}, true
	case tea.MouseButtonWheelDown:
		return []types.Action{types.NavigateAction{Direction: "down"}}, true
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionPress {
			return nil, false
		}
		index, ok := ctx.IndexAtRow(msg.Y)
		if !ok {
			return nil, false
		}
		return []types.Action{types.SelectAction{
			Index: index,
			Meta:  msg.Ctrl || msg.Alt,
			Shift: msg.Shift,
		}}, true
	}
	return nil, false
}
