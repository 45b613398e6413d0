package state

// SetStatus replaces the notification slot with a non-error message.
func SetStatus(s UIState, msg string) UIState {
	s.Status = msg
	s.StatusErr = false
	return s
}

// SetError replaces the notification slot with an error message.
func SetError(s UIState, msg string) UIState {
	s.Status = msg
	s.StatusErr = true
	return s
}

// SetDirty records whether the buffer differs from disk.
func SetDirty(s UIState, dirty bool) UIState {
	s.Dirty = dirty
	return s
}

// SetTheme records the active theme name.
func SetTheme(s UIState, theme string) UIState {
	s.Theme = theme
	return s
}

// ToggleFocus moves focus between the editor and preview panes.
func ToggleFocus(s UIState) UIState {
	if s.Focus == FocusEditor {
		s.Focus = FocusPreview
	} else {
		s.Focus = FocusEditor
	}
	return s
}

// Resize updates the layout dimensions.
func Resize(s UIState, width, height int) UIState {
	s.Width = width
	s.Height = height
	return s
}
