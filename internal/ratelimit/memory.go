package ratelimit

import (
	"context"
	"sync"
	"time"
)

type entry struct {
	firstSeen time.Time
	lastSeen  time.Time
	count     int
}

// MemoryLimiter is an in-process sliding-window limiter. It is a best-effort
// deterrent for single-instance deployments, not a hard security boundary;
// multi-instance deployments should use the redis limiter instead.
type MemoryLimiter struct {
	mu        sync.Mutex
	entries   map[string]*entry
	cfg       Config
	lastSweep time.Time
	now       func() time.Time
}

// NewMemoryLimiter creates an in-memory limiter with the given thresholds.
func NewMemoryLimiter(cfg Config) *MemoryLimiter {
	return &MemoryLimiter{
		entries:   make(map[string]*entry),
		cfg:       cfg,
		lastSweep: time.Now(),
		now:       time.Now,
	}
}

// Allow checks and records an attempt for the given key.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.sweep(now)

	e, ok := l.entries[key]
	if !ok {
		l.entries[key] = &entry{firstSeen: now, lastSeen: now, count: 1}
		return Allowed, nil
	}

	// Spacing guard runs first and is independent of the window quota.
	if now.Sub(e.lastSeen) < l.cfg.MinInterval {
		return DeniedTooFrequent, nil
	}

	if now.Sub(e.firstSeen) >= l.cfg.Window {
		// Window elapsed, counter starts over.
		e.firstSeen = now
		e.lastSeen = now
		e.count = 1
		return Allowed, nil
	}

	if e.count >= l.cfg.MaxAttempts {
		return DeniedQuotaExhausted, nil
	}

	e.count++
	e.lastSeen = now
	return Allowed, nil
}

// sweep evicts entries untouched for longer than the window. It runs
// opportunistically on request, at most once per window, to bound memory
// without a background timer.
func (l *MemoryLimiter) sweep(now time.Time) {
	if now.Sub(l.lastSweep) < l.cfg.Window {
		return
	}
	for key, e := range l.entries {
		if now.Sub(e.lastSeen) >= l.cfg.Window {
			delete(l.entries, key)
		}
	}
	l.lastSweep = now
}

// Len returns the number of tracked client keys.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
