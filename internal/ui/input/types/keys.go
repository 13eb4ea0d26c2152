package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the picker
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	Toggle      key.Binding
	Pick        key.Binding
	ExtendUp    key.Binding
	ExtendDown  key.Binding
	Clear       key.Binding
	Multi       key.Binding
	ToggleShift key.Binding
	ValueKey    key.Binding
	Help        key.Binding
	Accept      key.Binding
	Abort       key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "top")),
		End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "bottom")),
		Toggle:      key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		Pick:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		ExtendUp:    key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("shift+↑", "extend up")),
		ExtendDown:  key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("shift+↓", "extend down")),
		Clear:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Multi:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "multi")),
		ToggleShift: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle-shift")),
		ValueKey:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "value key")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Accept:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "done")),
		Abort:       key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "abort")),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Pick, k.ExtendDown, k.Multi, k.Help, k.Accept}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Toggle, k.Pick, k.ExtendUp, k.ExtendDown, k.Clear},
		{k.Multi, k.ToggleShift, k.ValueKey, k.Help, k.Accept, k.Abort},
	}
}
