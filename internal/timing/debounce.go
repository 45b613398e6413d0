package timing

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of calls into a single callback invocation
// after a quiet period. Each Call restarts the quiet timer, so the callback
// fires once, after no new calls have arrived for the configured delay.
//
// Safe for concurrent use. A generation counter guards against a stopped
// timer that already fired: its callback observes a stale generation and
// does nothing.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	gen   uint64
	fn    func()
}

func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	return &Debouncer{delay: delay, fn: fn}
}

// Call schedules the callback after the quiet period, cancelling any
// previously scheduled invocation.
func (d *Debouncer) Call() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	gen := d.gen
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stale := d.gen != gen
		d.mu.Unlock()
		if !stale {
			d.fn()
		}
	})
}

// Flush cancels any pending invocation and runs the callback immediately,
// whether or not one was scheduled.
func (d *Debouncer) Flush() {
	d.Cancel()
	d.fn()
}

// Cancel drops any pending invocation.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}
