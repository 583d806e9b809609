// internal/core/services/debounce.go
package services

import (
	"sync"
	"time"
)

// Debouncer is a cancellable scheduled-task primitive: Schedule arms a timer
// for the configured delay, first cancelling any pending one, so at most one
// invocation is ever pending per instance. Safe for concurrent use.
type Debouncer struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given delay.
func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Schedule runs fn after the delay elapses without another Schedule, Flush
// or Stop call. A pending invocation is replaced, not queued.
func (d *Debouncer) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Flush cancels any pending invocation and runs fn immediately on the
// calling goroutine.
func (d *Debouncer) Flush(fn func()) {
	d.Stop()
	fn()
}

// Stop cancels the pending invocation, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
