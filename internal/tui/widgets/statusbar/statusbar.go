package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"mermed/internal/tui/state"
	"mermed/internal/tui/util"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes the single status line: document name (with dirty marker),
// theme, zoom, and the current notification slot.
func (StatusBar) View(s state.UIState, docName string, zoom int, pal util.Palette) string {
	name := docName
	if s.Dirty {
		name += " *"
	}
	meta := lipgloss.NewStyle().Foreground(pal.Muted).
		Render(strings.Join([]string{name, "theme:" + s.Theme, fmt.Sprintf("%d%%", zoom)}, "  "))
	if s.Status == "" {
		return meta
	}
	msgStyle := lipgloss.NewStyle().Foreground(pal.Success)
	if s.StatusErr {
		msgStyle = lipgloss.NewStyle().Foreground(pal.Danger).Bold(true)
	}
	return meta + "  " + msgStyle.Render(s.Status)
}
