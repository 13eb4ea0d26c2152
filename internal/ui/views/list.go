package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// HeaderRows is the number of lines rendered above the list
const HeaderRows = 2

// Row is one visible entry
type Row struct {
	Index    int
	Text     string
	Value    string
	Cursor   bool
	Selected bool
	Primary  bool // the first selected item
}

// ViewState is everything the renderer needs for one frame
type ViewState struct {
	Title       string
	Width       int
	Multi       bool
	ToggleShift bool
	ValueKey    string
	Rows        []Row
	Total       int
	Offset      int
	Selected    []string // values, in selection order
	ShowCounts  bool
	Status      string
	StatusError bool
	Help        string
}

// Renderer renders the picker
type Renderer struct {
	styles *Styles
}

// NewRenderer creates a new renderer
func NewRenderer(styles *Styles) *Renderer {
	return &Renderer{styles: styles}
}

// Render renders a full frame. The first HeaderRows lines are the header so
// mouse rows can be mapped back to entries.
func (r *Renderer) Render(state ViewState) string {
	var b strings.Builder

	b.WriteString(r.styles.Title.Render(state.Title))
	b.WriteString("\n")
	b.WriteString(r.renderModes(state))
	b.WriteString("\n")

	for _, row := range state.Rows {
		b.WriteString(r.RenderRow(row, state.Multi, state.Width))
		b.WriteString("\n")
	}

	if state.Offset+len(state.Rows) < state.Total {
		b.WriteString(r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", state.Total-state.Offset-len(state.Rows))))
		b.WriteString("\n")
	}

	if state.Status != "" {
		style := r.styles.Status
		if state.StatusError {
			style = r.styles.StatusError
		}
		b.WriteString(style.Render(state.Status))
		b.WriteString("\n")
	}
	if state.Help != "" {
		b.WriteString(state.Help)
	}

	return b.String()
}

func (r *Renderer) renderModes(state ViewState) string {
	flag := func(name string, on bool) string {
		if on {
			return r.styles.ModeOn.Render(name)
		}
		return r.styles.Dim.Render(name)
	}

	parts := []string{
		flag("multi", state.Multi),
		flag("toggle-shift", state.ToggleShift),
		r.styles.Mode.Render("key:" + state.ValueKey),
	}
	if state.ShowCounts {
		parts = append(parts, r.styles.Mode.Render(fmt.Sprintf("%d/%d selected", len(state.Selected), state.Total)))
	}
	return strings.Join(parts, "  ")
}

// RenderRow renders one entry line
func (r *Renderer) RenderRow(row Row, multi bool, width int) string {
	marker := "  "
	if multi {
		marker = "[ ] "
		if row.Selected {
			marker = "[x] "
		}
	} else if row.Selected {
		marker = "> "
	}

	textStyle := lipgloss.NewStyle()
	switch {
	case row.Primary:
		textStyle = r.styles.Primary
	case row.Selected:
		textStyle = r.styles.Selected
	}

	line := marker + textStyle.Render(row.Text)
	if row.Cursor {
		if width > 0 {
			return r.styles.Cursor.Width(width).Render(line)
		}
		return r.styles.Cursor.Render(line)
	}
	return line
}
