package preview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"mermed/internal/tui/util"
)

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func TestDragPansContent(t *testing.T) {
	m := New()
	m.SetFrame(0, 0, 20, 10)
	m.SetMarkup("<svg>")

	m.HandleMouse(press(5, 5))
	m.HandleMouse(motion(9, 7))
	x, y := m.Camera().Pan()
	if x != 4 || y != 2 {
		t.Fatalf("pan = (%v,%v), want (4,2)", x, y)
	}
}

func TestPressOutsideFrameIgnored(t *testing.T) {
	m := New()
	m.SetFrame(10, 0, 20, 10)
	m.HandleMouse(press(5, 5))
	if m.Camera().Dragging() {
		t.Fatalf("drag must not start outside the frame")
	}
}

func TestLeavingFrameEndsDrag(t *testing.T) {
	m := New()
	m.SetFrame(0, 0, 10, 10)
	m.HandleMouse(press(5, 5))
	m.HandleMouse(motion(50, 5))
	if m.Camera().Dragging() {
		t.Fatalf("drag must end when the pointer leaves the frame")
	}
}

func TestCtrlWheelZooms(t *testing.T) {
	m := New()
	m.SetFrame(0, 0, 10, 10)
	m.HandleMouse(tea.MouseMsg{X: 5, Y: 5, Ctrl: true, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	for m.Camera().Step() {
	}
	if m.Camera().Zoom() != 110 {
		t.Fatalf("zoom = %d, want 110", m.Camera().Zoom())
	}
}

func TestPlainWheelNotCaptured(t *testing.T) {
	m := New()
	m.SetFrame(0, 0, 10, 10)
	m.HandleMouse(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	if m.Camera().Zoom() != 100 || m.Camera().Animating() {
		t.Fatalf("plain wheel must not zoom")
	}
}

func TestViewShowsFailureInline(t *testing.T) {
	m := New()
	m.SetFrame(0, 0, 40, 6)
	m.SetFailure("Parse error on line 2")
	out := m.View(util.ThemePalette("default"))
	if !strings.Contains(out, "Parse error on line 2") {
		t.Fatalf("failure message missing from pane:\n%s", out)
	}
}
