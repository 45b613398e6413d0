package helpoverlay

import (
	"fmt"
	"strings"
)

type HelpOverlay struct{}

func NewHelpOverlay() HelpOverlay { return HelpOverlay{} }

// View returns the grouped keys help.
func (HelpOverlay) View() string {
	sections := []struct {
		title string
		keys  []string
	}{
		{"File", []string{"ctrl+o: open", "ctrl+s: save", "ctrl+q: quit"}},
		{"Export", []string{"ctrl+e: SVG (diagram.svg)", "ctrl+g: PNG (diagram.png)"}},
		{"View", []string{"tab: switch pane", "ctrl+t: theme", "ctrl+d: unsaved changes", "ctrl+h: this help"}},
		{"Preview (focused)", []string{"+/-: zoom ±25", "ctrl+wheel: zoom ±10", "0: reset", "drag: pan"}},
	}
	var b strings.Builder
	b.WriteString("Help\n")
	for _, sec := range sections {
		fmt.Fprintf(&b, "\n%s:\n", sec.title)
		for _, k := range sec.keys {
			fmt.Fprintf(&b, "  %s\n", k)
		}
	}
	b.WriteString("\nesc: close\n")
	return b.String()
}
