package tui

// Themes the external renderer understands. The same names drive the UI
// palette so the chrome follows the diagram.
var Themes = []string{"default", "dark", "forest", "neutral", "base"}

const DefaultTheme = "default"

// ValidTheme reports whether name is a known theme. Unknown names are
// ignored by callers (falling back to the persisted or default theme).
func ValidTheme(name string) bool {
	for _, t := range Themes {
		if t == name {
			return true
		}
	}
	return false
}
