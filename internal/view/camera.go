package view

const (
	MinZoom = 25
	MaxZoom = 500

	// Zoom deltas: keys step coarsely, ctrl+wheel finely.
	ZoomStepKey   = 25
	ZoomStepWheel = 10
)

// Camera tracks the preview transform: zoom percent in [MinZoom, MaxZoom]
// and an unconstrained pan. It is a two-state machine, Idle or Dragging;
// pan follows the pointer directly while dragging, and zoom changes made
// while idle glide toward their target through Step.
type Camera struct {
	zoom       int // current zoom percent, shown on screen
	targetZoom int // where zoom is heading; equal to zoom when settled
	panX, panY float64

	dragging     bool
	grabX, grabY float64 // pointer position minus pan at drag start
}

func NewCamera() *Camera {
	return &Camera{zoom: 100, targetZoom: 100}
}

func (c *Camera) Zoom() int               { return c.zoom }
func (c *Camera) Pan() (float64, float64) { return c.panX, c.panY }
func (c *Camera) Dragging() bool          { return c.dragging }

// BeginDrag enters the Dragging state, recording the offset between the
// pointer and the current pan so later moves set pan absolutely, without
// incremental drift. Any in-flight zoom glide is snapped: drags apply
// immediately, never animated.
func (c *Camera) BeginDrag(x, y float64) {
	c.dragging = true
	c.grabX = x - c.panX
	c.grabY = y - c.panY
	c.zoom = c.targetZoom
}

// DragTo sets pan = pointer - grab offset. No-op when not dragging.
func (c *Camera) DragTo(x, y float64) {
	if !c.dragging {
		return
	}
	c.panX = x - c.grabX
	c.panY = y - c.grabY
}

// EndDrag returns to Idle. Pan keeps its last dragged value.
func (c *Camera) EndDrag() {
	c.dragging = false
}

// ZoomBy adjusts the zoom target by delta percent, clamped to the zoom
// bounds. While dragging the change applies immediately; while idle it is
// picked up by the glide in Step.
func (c *Camera) ZoomBy(delta int) {
	c.targetZoom = clampZoom(c.targetZoom + delta)
	if c.dragging {
		c.zoom = c.targetZoom
	}
}

// Reset restores the neutral transform: zoom 100, pan (0,0), settled.
func (c *Camera) Reset() {
	c.zoom = 100
	c.targetZoom = 100
	c.panX, c.panY = 0, 0
}

// Animating reports whether the zoom is still gliding toward its target.
func (c *Camera) Animating() bool {
	return c.zoom != c.targetZoom
}

// Step advances one animation frame, easing out: each frame covers 40% of
// the remaining distance, with a minimum of one percent so the glide
// terminates. Returns true while more frames are needed.
func (c *Camera) Step() bool {
	remaining := c.targetZoom - c.zoom
	if remaining == 0 {
		return false
	}
	step := remaining * 2 / 5
	if step == 0 {
		if remaining > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	c.zoom += step
	return c.zoom != c.targetZoom
}

// Transform composes the current pan and zoom into one matrix, anchored at
// the visual center of a w-by-h pane: translate by pan, then scale about
// the center. Applied to the content, not the pane, so clipping stays put.
func (c *Camera) Transform(w, h float64) Matrix {
	s := float64(c.zoom) / 100
	cx, cy := w/2, h/2
	return Translate(c.panX, c.panY).
		Multiply(Translate(cx, cy)).
		Multiply(Scale(s)).
		Multiply(Translate(-cx, -cy))
}

func clampZoom(z int) int {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}
