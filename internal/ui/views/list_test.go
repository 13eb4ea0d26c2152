package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestRenderMarksSelection(t *testing.T) {
	r := NewRenderer(NewStyles())
	out := r.Render(ViewState{
		Title: "pickwise",
		Multi: true,
		Rows: []Row{
			{Index: 0, Text: "alpha", Selected: true, Primary: true},
			{Index: 1, Text: "beta", Cursor: true},
			{Index: 2, Text: "gamma", Selected: true},
		},
		Total:      5,
		Selected:   []string{"0", "2"},
		ShowCounts: true,
		ValueKey:   "index",
	})

	lines := strings.Split(out, "\n")
	require.GreaterOrEqual(t, len(lines), HeaderRows+4)
	assert.Equal(t, "pickwise", lines[0])
	assert.Contains(t, lines[1], "2/5 selected")
	assert.Equal(t, "[x] alpha", lines[HeaderRows])
	assert.Equal(t, "[ ] beta", strings.TrimRight(lines[HeaderRows+1], " "))
	assert.Equal(t, "[x] gamma", lines[HeaderRows+2])
	assert.Equal(t, "↓ 2 more", lines[HeaderRows+3])
}

func TestRenderSingleMode(t *testing.T) {
	r := NewRenderer(NewStyles())
	assert.Equal(t, "> beta", r.RenderRow(Row{Text: "beta", Selected: true}, false, 0))
	assert.Equal(t, "  gamma", r.RenderRow(Row{Text: "gamma"}, false, 0))
}
