package focus

import (
	"sync"
	"time"
)

// CloseTimer is a cancellable delayed close owned by a window's lifecycle
type CloseTimer struct {
	mu        sync.Mutex
	timer     *time.Timer
	fired     bool
	cancelled bool
}

// ScheduleClose runs fn once after delay unless cancelled first. fn runs on
// its own goroutine.
func ScheduleClose(delay time.Duration, fn func()) *CloseTimer {
	ct := &CloseTimer{}
	ct.mu.Lock()
	defer ct.mu.Unlock()
	ct.timer = time.AfterFunc(delay, func() {
		ct.mu.Lock()
		if ct.cancelled {
			ct.mu.Unlock()
			return
		}
		ct.fired = true
		ct.mu.Unlock()
		fn()
	})
	return ct
}

// Cancel stops the timer. It returns true if a pending close was prevented.
func (ct *CloseTimer) Cancel() bool {
	if ct == nil {
		return false
	}
	ct.mu.Lock()
	defer ct.mu.Unlock()
	if ct.fired || ct.cancelled {
		return false
	}
	ct.cancelled = true
	ct.timer.Stop()
	return true
}

// Fired reports whether the close callback ran
func (ct *CloseTimer) Fired() bool {
	if ct == nil {
		return false
	}
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return ct.fired
}

// Pending reports whether the timer can still fire
func (ct *CloseTimer) Pending() bool {
	if ct == nil {
		return false
	}
	ct.mu.Lock()
	defer ct.mu.Unlock()
	return !ct.fired && !ct.cancelled
}
