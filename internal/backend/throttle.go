package backend

import (
	"sync"
	"time"
)

// throttle drops operations that arrive sooner than interval after the last
// allowed one. Editors often emit several writes per save.
type throttle struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	next time.Time
}

func newThrottle(interval time.Duration) *throttle {
	if interval <= 0 {
		return &throttle{now: time.Now}
	}
	return &throttle{interval: interval, now: time.Now}
}

func (t *throttle) allow() bool {
	if t == nil || t.interval <= 0 {
		return true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	now := t.now()
	if now.Before(t.next) {
		return false
	}
	t.next = now.Add(t.interval)
	return true
}
