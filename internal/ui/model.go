package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"pickwise/internal/config"
	"pickwise/internal/domain"
	"pickwise/internal/eventbus"
	"pickwise/internal/logic"
	"pickwise/internal/selection"
	"pickwise/internal/ui/input"
	inputtypes "pickwise/internal/ui/input/types"
	"pickwise/internal/ui/navigation"
	"pickwise/internal/ui/views"
)

// footerRows is the space kept below the list for the scroll hint, status
// and help bar
const footerRows = 3

// Result is what the picker hands back when it exits
type Result struct {
	Values  []string
	Entries []*domain.Entry
	Aborted bool
}

// Model represents the UI state
type Model struct {
	config *config.Config
	title  string

	store     *logic.EntryStore
	selection *selection.Controller[string, *domain.Entry]

	width       int
	height      int
	help        help.Model
	status      string
	statusError bool
	inPagerMode bool
	aborted     bool

	navigator    *navigation.Navigator
	renderer     *views.Renderer
	inputHandler *input.Handler
	helpOps      *HelpOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model over store. The selection notifies bus.
func NewModel(bus eventbus.EventBus, cfg *config.Config, store *logic.EntryStore, title string) *Model {
	if bus == nil {
		bus = eventbus.NullBus{}
	}

	m := &Model{
		config:       cfg,
		title:        title,
		store:        store,
		selection:    selection.NewController[string, *domain.Entry](store, bus),
		help:         help.New(),
		navigator:    navigation.New(store.Len),
		renderer:     views.NewRenderer(views.NewStyles()),
		inputHandler: input.New(inputtypes.DefaultKeyMap()),
	}

	m.selection.SetMulti(cfg.Multi)
	m.selection.SetToggleShift(cfg.ToggleShift)
	if cfg.FallbackSelection != "" {
		m.selection.SetFallbackSelection(cfg.FallbackSelection)
	}

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

// Selection exposes the selection controller
func (m *Model) Selection() *selection.Controller[string, *domain.Entry] {
	return m.selection
}

// Preselect applies an initial selection
func (m *Model) Preselect(values []string) {
	if len(values) == 0 {
		return
	}
	if m.selection.Multi() {
		m.selection.SetSelectedValues(values)
	} else {
		m.selection.SetSelected(values[0])
	}
	if idx := m.store.ValueToIndex(values[0]); idx >= 0 {
		m.navigator.MoveTo(idx)
	}
}

// Result returns the current selection
func (m *Model) Result() Result {
	if m.aborted {
		return Result{Aborted: true}
	}
	if m.selection.Multi() {
		return Result{
			Values:  m.selection.SelectedValues(),
			Entries: m.selection.SelectedItems(),
		}
	}

	value, ok := m.selection.Selected()
	if !ok {
		return Result{}
	}
	res := Result{Values: []string{value}}
	if entry, ok := m.selection.SelectedItem(); ok {
		res.Entries = []*domain.Entry{entry}
	}
	return res
}

// CurrentIndex implements inputtypes.Context
func (m *Model) CurrentIndex() int {
	return m.navigator.Cursor()
}

// TotalItems implements inputtypes.Context
func (m *Model) TotalItems() int {
	return m.store.Len()
}

// Multi implements inputtypes.Context
func (m *Model) Multi() bool {
	return m.selection.Multi()
}

// IndexAtRow implements inputtypes.Context
func (m *Model) IndexAtRow(y int) (int, bool) {
	return m.navigator.RowToIndex(y - views.HeaderRows)
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	m.selection.ItemsChanged()
	return nil
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.updateViewportHeight()
		return m, nil

	case tea.KeyMsg:
		return m, m.processActions(m.inputHandler.HandleKey(msg, m))

	case tea.MouseMsg:
		return m, m.processActions(m.inputHandler.HandleMouse(msg, m))

	default:
		return m.handleNonKeyboardMsg(msg)
	}
}

func (m *Model) processActions(actions []inputtypes.Action) tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		m.navigator.Navigate(navigation.Direction(a.Direction))

	case inputtypes.SelectAction:
		index := a.Index
		if index < 0 {
			index = m.navigator.Cursor()
		} else {
			m.navigator.MoveTo(index)
		}
		m.selectIndex(index, a.Meta, a.Shift)

	case inputtypes.MoveSelectAction:
		if m.navigator.Navigate(navigation.Direction(a.Direction)) {
			m.selectIndex(m.navigator.Cursor(), false, true)
		}

	case inputtypes.ClearSelectionAction:
		if m.selection.Multi() {
			m.selection.SetSelectedValues(nil)
		} else {
			m.selection.ClearSelected()
		}

	case inputtypes.ToggleMultiAction:
		m.selection.SetMulti(!m.selection.Multi())
		m.config.Multi = m.selection.Multi()
		return m.setStatus(fmt.Sprintf("multi %s", onOff(m.selection.Multi())), false)

	case inputtypes.ToggleShiftModeAction:
		m.selection.SetToggleShift(!m.selection.ToggleShift())
		m.config.ToggleShift = m.selection.ToggleShift()
		return m.setStatus(fmt.Sprintf("toggle-shift %s", onOff(m.selection.ToggleShift())), false)

	case inputtypes.CycleValueKeyAction:
		next := domain.ValueKeyText
		if m.store.ValueKey() == domain.ValueKeyText {
			next = domain.ValueKeyIndex
		}
		m.setValueKey(next)
		return m.setStatus(fmt.Sprintf("value key %s", next), false)

	case inputtypes.ToggleHelpAction:
		if m.program == nil {
			m.help.ShowAll = !m.help.ShowAll
			m.updateViewportHeight()
			return nil
		}
		return m.fetchHelpPager(NewHelpRenderer(m.inputHandler.Keys()).Render())

	case inputtypes.QuitAction:
		m.aborted = a.Force
		return tea.Quit
	}

	return nil
}

func (m *Model) selectIndex(index int, meta, shift bool) {
	value, ok := m.store.IndexToValue(index)
	if !ok {
		return
	}
	m.selection.Select(value, meta, shift)
}

func (m *Model) setValueKey(key domain.ValueKey) {
	if m.store.SetValueKey(key) {
		m.config.ValueKey = key
		m.selection.ValueKeyChanged()
	}
}

func (m *Model) setStatus(status string, isError bool) tea.Cmd {
	m.status = status
	m.statusError = isError
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// handleNonKeyboardMsg handles non-keyboard messages
func (m *Model) handleNonKeyboardMsg(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
			m.help.ShowAll = !m.help.ShowAll
			m.updateViewportHeight()
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		return m, nil

	case clearStatusMsg:
		m.status = ""
		m.statusError = false
		return m, nil
	}
	return m, nil
}

// handleEvent processes domain events
func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.EntriesLoadedEvent:
		m.selection.ItemsChanged()
		m.navigator.MoveTo(m.navigator.Cursor())
		return m.setStatus(fmt.Sprintf("loaded %d entries from %s", e.Count, e.Source), false)

	case eventbus.ConfigChangedEvent:
		m.selection.SetMulti(e.Multi)
		m.selection.SetToggleShift(e.ToggleShift)
		if e.Fallback != "" {
			m.selection.SetFallbackSelection(e.Fallback)
		} else {
			m.selection.ClearFallbackSelection()
		}
		if key := domain.ValueKey(e.ValueKey); key.Valid() {
			m.setValueKey(key)
		}
		m.config.Multi = e.Multi
		m.config.ToggleShift = e.ToggleShift
		m.config.FallbackSelection = e.Fallback
		return m.setStatus("config reloaded", false)

	case eventbus.ErrorEvent:
		log.Printf("error: %s: %v", e.Message, e.Err)
		return m.setStatus(e.Message, true)
	}
	return nil
}

func (m *Model) updateViewportHeight() {
	height := m.height - views.HeaderRows - footerRows
	if m.help.ShowAll {
		height -= 5
	}
	m.navigator.SetViewportHeight(height)
}

// fetchHelpPager returns a command that shows help using ov pager
func (m *Model) fetchHelpPager(helpContent string) tea.Cmd {
	return func() tea.Msg {
		m.program.Send(pauseRenderingMsg{})
		err := m.helpOps.ShowHelpInPager(helpContent)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	values := m.selection.SelectedValues()
	if !m.selection.Multi() {
		values = nil
		if v, ok := m.selection.Selected(); ok {
			values = []string{v}
		}
	}

	var primary *domain.Entry
	if items := m.selection.SelectedItems(); m.selection.Multi() && len(items) > 0 {
		primary = items[0]
	}

	offset := m.navigator.ViewportOffset()
	end := min(offset+m.navigator.ViewportHeight(), m.store.Len())
	rows := make([]views.Row, 0, max(end-offset, 0))
	for i := offset; i < end; i++ {
		entry := m.store.At(i)
		if entry == nil {
			continue
		}
		value, _ := m.store.IndexToValue(i)
		rows = append(rows, views.Row{
			Index:    i,
			Text:     entry.Text,
			Value:    value,
			Cursor:   i == m.navigator.Cursor(),
			Selected: m.selection.IsSelected(entry),
			Primary:  entry == primary,
		})
	}

	state := views.ViewState{
		Title:       m.title,
		Width:       m.width,
		Multi:       m.selection.Multi(),
		ToggleShift: m.selection.ToggleShift(),
		ValueKey:    string(m.store.ValueKey()),
		Rows:        rows,
		Total:       m.store.Len(),
		Offset:      offset,
		Selected:    values,
		ShowCounts:  m.config.UISettings.ShowCounts,
		Status:      m.status,
		StatusError: m.statusError,
	}
	if m.config.UISettings.ShowHelpBar {
		state.Help = m.help.View(m.inputHandler.Keys())
	}

	return m.renderer.Render(state)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
