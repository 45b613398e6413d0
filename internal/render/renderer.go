// Package render turns diagram source text into SVG markup by calling an
// external renderer, and schedules those calls so that a burst of edits
// produces a single render whose result is never overwritten by a stale one.
package render

import "context"

// Renderer is the external diagram renderer. The source text is passed
// through verbatim; syntax checking is entirely the renderer's business.
type Renderer interface {
	Render(ctx context.Context, source, theme string) (markup string, err error)
}

// Update is the outcome of one render request. Exactly one of the three
// shapes applies: Empty (placeholder, no call was made), Err != nil
// (failed), or Markup (rendered SVG).
type Update struct {
	Gen    uint64
	Markup string
	Err    error
	Empty  bool
}
