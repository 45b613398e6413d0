package state

// Focus selects which pane receives non-global keys.
type Focus int

const (
	FocusEditor Focus = iota
	FocusPreview
)

// UIState holds cross-widget UI state shared by the status bar, preview,
// and editor panes. It is passed by value through pure reducers.
type UIState struct {
	// Single-slot notification, overwritten by the most recent operation.
	Status    string
	StatusErr bool

	// Document & theme
	Dirty bool
	Theme string

	// Layout
	Focus  Focus
	Width  int
	Height int
}
