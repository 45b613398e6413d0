// Package preview renders the latest render result inside a fixed frame,
// transformed by the pan/zoom camera. The frame clips; only the content
// moves.
package preview

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"mermed/internal/tui/util"
	"mermed/internal/view"
)

// Placeholder shown when there is nothing to render yet.
const Placeholder = "( empty diagram )"

type Model struct {
	cam     *view.Camera
	content []string
	failed  bool
	empty   bool

	// Frame geometry in screen cells, set by the shell on layout.
	originX, originY int
	width, height    int
}

func New() Model {
	return Model{cam: view.NewCamera(), empty: true, content: []string{Placeholder}}
}

func (m *Model) Camera() *view.Camera { return m.cam }

// SetFrame positions the widget on screen; mouse events are translated into
// this frame.
func (m *Model) SetFrame(x, y, w, h int) {
	m.originX, m.originY = x, y
	m.width, m.height = w, h
}

// SetMarkup replaces the content with rendered markup.
func (m *Model) SetMarkup(markup string) {
	m.content = strings.Split(markup, "\n")
	m.failed = false
	m.empty = false
}

// SetFailure replaces the content with the renderer's error message, shown
// inline in the pane as well as in the status line.
func (m *Model) SetFailure(msg string) {
	m.content = []string{"render failed:", "", msg}
	m.failed = true
	m.empty = false
}

// SetPlaceholder shows the neutral empty state and resets nothing else.
func (m *Model) SetPlaceholder() {
	m.content = []string{Placeholder}
	m.failed = false
	m.empty = true
}

func (m *Model) Empty() bool  { return m.empty }
func (m *Model) Failed() bool { return m.failed }

// HandleMouse implements the drag/zoom gestures. Left press inside the
// frame begins a drag; motion pans; release or leaving the frame ends it.
// Ctrl+wheel zooms; a plain wheel is deliberately not captured here.
func (m *Model) HandleMouse(msg tea.MouseMsg) {
	localX := float64(msg.X - m.originX)
	localY := float64(msg.Y - m.originY)
	inside := msg.X >= m.originX && msg.X < m.originX+m.width &&
		msg.Y >= m.originY && msg.Y < m.originY+m.height

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			if inside {
				m.cam.BeginDrag(localX, localY)
			}
		case tea.MouseButtonWheelUp:
			if inside && msg.Ctrl {
				m.cam.ZoomBy(view.ZoomStepWheel)
			}
		case tea.MouseButtonWheelDown:
			if inside && msg.Ctrl {
				m.cam.ZoomBy(-view.ZoomStepWheel)
			}
		}
	case tea.MouseActionMotion:
		if !m.cam.Dragging() {
			return
		}
		if !inside {
			// Pointer left the preview surface.
			m.cam.EndDrag()
			return
		}
		m.cam.DragTo(localX, localY)
	case tea.MouseActionRelease:
		m.cam.EndDrag()
	}
}

// View paints the transformed content into the frame.
func (m Model) View(pal util.Palette) string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	lines := view.Project(m.content, m.cam.Transform(float64(m.width), float64(m.height)), m.width, m.height)

	style := lipgloss.NewStyle()
	if m.failed {
		style = style.Foreground(pal.Danger)
	} else if m.empty {
		style = style.Foreground(pal.Muted)
	}
	return style.Render(strings.Join(lines, "\n"))
}
