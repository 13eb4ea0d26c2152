package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"pickwise/internal/ui/input/modes"
	"pickwise/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        types.KeyMap
}

func New(keys types.KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)

	return h
}

// HandleKey translates a key press into actions
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}
	return actions
}

// HandleMouse translates a mouse event into actions
func (h *Handler) HandleMouse(msg tea.MouseMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleMouse(msg, ctx)
	if !consumed {
		return nil
	}
	return actions
}

// Keys returns the key bindings, for the help view
func (h *Handler) Keys() types.KeyMap {
	return h.keys
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}
