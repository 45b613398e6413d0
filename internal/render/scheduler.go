package render

import (
	"context"
	"strings"
	"sync"
	"time"

	"mermed/internal/timing"
)

// Scheduler owns the edit-to-render pipeline. Text changes are debounced
// behind a quiet interval; theme changes and explicit requests fire
// immediately. Every fired render carries a generation number, and a
// completion is delivered only if its generation is higher than anything
// delivered before it, so a slow render can never clobber a newer result.
type Scheduler struct {
	mu       sync.Mutex
	renderer Renderer
	notify   func(Update)
	logf     func(format string, args ...any)
	deb      *timing.Debouncer

	text  string
	theme string

	nextGen uint64
	applied uint64
}

// NewScheduler builds a scheduler that delivers results through notify.
// notify may be called from a background goroutine; callers that own
// single-threaded state should hand it something like tea.Program.Send.
func NewScheduler(r Renderer, quiet time.Duration, notify func(Update), logf func(string, ...any)) *Scheduler {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	s := &Scheduler{renderer: r, notify: notify, logf: logf}
	s.deb = timing.NewDebouncer(quiet, s.fire)
	return s
}

// TextChanged records the latest snapshot and (re)starts the quiet timer.
// Only the snapshot present when the timer finally fires is rendered.
func (s *Scheduler) TextChanged(snapshot string) {
	s.mu.Lock()
	s.text = snapshot
	s.mu.Unlock()
	s.deb.Call()
}

// ThemeChanged re-renders the last known snapshot immediately with the new
// theme, bypassing the debounce.
func (s *Scheduler) ThemeChanged(snapshot, theme string) {
	s.mu.Lock()
	s.text = snapshot
	s.theme = theme
	s.mu.Unlock()
	s.deb.Flush()
}

// RenderNow renders the given snapshot immediately. Used when a document is
// loaded or imported, where waiting out the quiet interval would be wrong.
func (s *Scheduler) RenderNow(snapshot string) {
	s.mu.Lock()
	s.text = snapshot
	s.mu.Unlock()
	s.deb.Flush()
}

// SetTheme records the theme without triggering a render.
func (s *Scheduler) SetTheme(theme string) {
	s.mu.Lock()
	s.theme = theme
	s.mu.Unlock()
}

// Close cancels any pending debounced render. In-flight renders are left to
// finish; their results are discarded if stale.
func (s *Scheduler) Close() {
	s.deb.Cancel()
}

func (s *Scheduler) fire() {
	s.mu.Lock()
	text, theme := s.text, s.theme
	s.nextGen++
	gen := s.nextGen
	s.mu.Unlock()

	if strings.TrimSpace(text) == "" {
		// Nothing to draw: no external call.
		s.finish(Update{Gen: gen, Empty: true})
		return
	}
	go func() {
		markup, err := s.renderer.Render(context.Background(), text, theme)
		s.finish(Update{Gen: gen, Markup: markup, Err: err})
	}()
}

// finish applies latest-wins ordering: generations at or below the highest
// delivered one are dropped.
func (s *Scheduler) finish(u Update) {
	s.mu.Lock()
	if u.Gen <= s.applied {
		s.mu.Unlock()
		s.logf("render: dropping stale result gen=%d", u.Gen)
		return
	}
	s.applied = u.Gen
	s.mu.Unlock()
	s.notify(u)
}
