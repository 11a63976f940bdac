package session

import (
	"sync"
	"time"
)

// LoginLimiter caps failed login attempts per client address. The gate
// itself has no lockout; this only slows down guessing now that the
// gate is reachable over the network.
type LoginLimiter struct {
	mu       sync.Mutex
	attempts map[string][]time.Time
	max      int
	window   time.Duration
}

func NewLoginLimiter(max int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		attempts: make(map[string][]time.Time),
		max:      max,
		window:   window,
	}
}

// Check reports whether addr may attempt a login. It does not record
// anything; call Record on failure.
func (l *LoginLimiter) Check(addr string) bool {
	cutoff := time.Now().Add(-l.window)

	l.mu.Lock()
	defer l.mu.Unlock()

	hits := l.attempts[addr]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		delete(l.attempts, addr)
	} else {
		l.attempts[addr] = kept
	}
	return len(kept) < l.max
}

// Record registers a failed attempt for addr.
func (l *LoginLimiter) Record(addr string) {
	l.mu.Lock()
	l.attempts[addr] = append(l.attempts[addr], time.Now())
	l.mu.Unlock()
}
