package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"mermed/internal/render"
	"mermed/internal/tui/util"
)

type nopRenderer struct{}

func (nopRenderer) Render(context.Context, string, string) (string, error) { return "<svg/>", nil }

func newTestModel(t *testing.T) Model {
	t.Helper()
	sched := render.NewScheduler(nopRenderer{}, time.Millisecond, func(render.Update) {}, nil)
	t.Cleanup(sched.Close)
	return New(Options{Scheduler: sched, Theme: "dark"})
}

func TestSuccessfulRenderSetsSyntaxOK(t *testing.T) {
	m := newTestModel(t)
	m.applyRender(render.Update{Gen: 1, Markup: "<svg>...</svg>"})

	if m.ui.Status != "Syntax OK" || m.ui.StatusErr {
		t.Fatalf("status = %q err=%v", m.ui.Status, m.ui.StatusErr)
	}
	if m.markup != "<svg>...</svg>" || !m.rendered {
		t.Fatalf("markup not adopted for export")
	}
	if m.prev.Empty() || m.prev.Failed() {
		t.Fatalf("preview should show the rendered markup")
	}
}

func TestEmptyRenderShowsPlaceholder(t *testing.T) {
	m := newTestModel(t)
	m.applyRender(render.Update{Gen: 1, Empty: true})

	if m.ui.Status != "Ready" || m.ui.StatusErr {
		t.Fatalf("status = %q err=%v, want Ready without error", m.ui.Status, m.ui.StatusErr)
	}
	if !m.prev.Empty() {
		t.Fatalf("preview should show the placeholder")
	}
}

func TestFailedRenderSetsErrorStatus(t *testing.T) {
	m := newTestModel(t)
	m.applyRender(render.Update{Gen: 1, Err: errors.New("Parse error on line 2")})

	if m.ui.Status != "Error: Parse error on line 2" || !m.ui.StatusErr {
		t.Fatalf("status = %q err=%v", m.ui.Status, m.ui.StatusErr)
	}
	if !m.prev.Failed() {
		t.Fatalf("preview should show the failure inline")
	}
	if m.rendered {
		t.Fatalf("a failed render must not leave exportable markup flagged")
	}
}

func TestInvalidThemeFallsBackToDefault(t *testing.T) {
	sched := render.NewScheduler(nopRenderer{}, time.Millisecond, func(render.Update) {}, nil)
	defer sched.Close()
	m := New(Options{Scheduler: sched, Theme: "neon"})
	if m.ui.Theme != DefaultTheme {
		t.Fatalf("theme = %q, want %q", m.ui.Theme, DefaultTheme)
	}
}

func TestValidTheme(t *testing.T) {
	for _, name := range Themes {
		if !ValidTheme(name) {
			t.Fatalf("%q should be valid", name)
		}
	}
	if ValidTheme("") || ValidTheme("neon") {
		t.Fatalf("unknown themes must be rejected")
	}
}

func TestUnsavedDiffNoChanges(t *testing.T) {
	out := renderUnsavedDiff("a", "a", util.ThemePalette("default"))
	if !strings.Contains(out, "No unsaved changes") {
		t.Fatalf("out = %q", out)
	}
}

func TestUnsavedDiffMarksChangedLines(t *testing.T) {
	out := renderUnsavedDiff("graph TD\n A-->B", "graph TD\n A-->C", util.ThemePalette("default"))
	if !strings.Contains(out, "- ") || !strings.Contains(out, "+ ") {
		t.Fatalf("expected +/- lines:\n%s", out)
	}
}
