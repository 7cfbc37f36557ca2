// Package watcher reports changes of a single file, coalescing bursts of
// file system events into one notification.
package watcher

import (
	"sync"
	"time"
)

// DefaultDebounceDuration is the default debounce window
const DefaultDebounceDuration = 250 * time.Millisecond

// Debouncer runs only the last of several callbacks triggered within its
// duration
type Debouncer struct {
	duration time.Duration
	timer    *time.Timer
	mu       sync.Mutex
	seq      uint64
}

// NewDebouncer creates a Debouncer; a zero duration uses the default
func NewDebouncer(duration time.Duration) *Debouncer {
	if duration == 0 {
		duration = DefaultDebounceDuration
	}
	return &Debouncer{duration: duration}
}

// Trigger schedules callback, replacing any pending one
func (d *Debouncer) Trigger(callback func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			callback()
		}
	})
}

// Cancel drops any pending callback
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

func (d *Debouncer) Duration() time.Duration {
	return d.duration
}
