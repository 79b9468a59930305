// Package ratelimiter bounds how often an operation may run.
package ratelimiter

import (
	"sync"
	"time"
)

// Limiter admits at most limit events per fixed window. It is used to slow
// credential-guessing against the signup and login endpoints, so rejected
// events are refused rather than queued.
type Limiter struct {
	mu          sync.Mutex
	limit       int
	window      time.Duration
	count       int
	windowStart time.Time
	now         func() time.Time
}

// New creates a Limiter admitting limit events per window.
func New(limit int, window time.Duration) *Limiter {
	return &Limiter{
		limit:       limit,
		window:      window,
		windowStart: time.Now(),
		now:         time.Now,
	}
}

// Allow reports whether another event fits in the current window.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.windowStart) >= l.window {
		l.count = 0
		l.windowStart = now
	}

	if l.count >= l.limit {
		return false
	}
	l.count++
	return true
}
