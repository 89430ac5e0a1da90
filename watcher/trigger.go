package watcher

import (
	"sync"
	"time"
)

// Trigger coalesces bursts of file system activity into single rerun signals.
// A whole-tree rescan is expensive, so every poke inside the quiet window
// collapses into one emission after the window elapses.
type Trigger struct {
	interval time.Duration
	mu       sync.Mutex
	pending  bool
	timer    *time.Timer
	output   chan struct{}
}

// NewTrigger creates a trigger with the specified quiet interval.
func NewTrigger(interval time.Duration) *Trigger {
	return &Trigger{
		interval: interval,
		output:   make(chan struct{}, 1),
	}
}

// Output returns the channel that receives coalesced rerun signals.
func (t *Trigger) Output() <-chan struct{} {
	return t.output
}

// Poke records activity. The quiet window restarts on every poke.
func (t *Trigger) Poke() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending = true
	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.interval, t.fire)
}

// fire emits one signal for all pokes accumulated in the window.
func (t *Trigger) fire() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.pending {
		return
	}
	t.pending = false

	select {
	case t.output <- struct{}{}:
	default:
		// A rerun is already queued; this activity rides along with it.
	}
}
