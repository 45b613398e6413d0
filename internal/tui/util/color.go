package util

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

// NoColor returns true if color output should be disabled.
func NoColor(explicit bool) bool {
	if explicit {
		return true
	}
	return os.Getenv("NO_COLOR") != ""
}

// Palette defines the small set of colors used across widgets. One palette
// exists per diagram theme so the chrome follows the preview's mood.
type Palette struct {
	Primary lipgloss.Color
	Success lipgloss.Color
	Danger  lipgloss.Color
	Muted   lipgloss.Color
	Border  lipgloss.Color
}

// ThemePalette maps a Mermaid theme name to the UI palette. Unknown names
// get the default palette.
func ThemePalette(theme string) Palette {
	switch theme {
	case "dark":
		return Palette{
			Primary: lipgloss.Color("#7AA2F7"),
			Success: lipgloss.Color("#9ECE6A"),
			Danger:  lipgloss.Color("#F7768E"),
			Muted:   lipgloss.Color("#565F89"),
			Border:  lipgloss.Color("#3B4261"),
		}
	case "forest":
		return Palette{
			Primary: lipgloss.Color("#2AA876"),
			Success: lipgloss.Color("#6BBF59"),
			Danger:  lipgloss.Color("#D9534F"),
			Muted:   lipgloss.Color("#6C757D"),
			Border:  lipgloss.Color("#1E7A55"),
		}
	case "neutral":
		return Palette{
			Primary: lipgloss.Color("#5A5A5A"),
			Success: lipgloss.Color("#2AA876"),
			Danger:  lipgloss.Color("#D9534F"),
			Muted:   lipgloss.Color("#8A8A8A"),
			Border:  lipgloss.Color("#6C757D"),
		}
	default: // "default", "base"
		return Palette{
			Primary: lipgloss.Color("#3D6DFF"),
			Success: lipgloss.Color("#2AA876"),
			Danger:  lipgloss.Color("#D9534F"),
			Muted:   lipgloss.Color("#6C757D"),
			Border:  lipgloss.Color("#3D6DFF"),
		}
	}
}
