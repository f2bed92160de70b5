// Package ratelimit provides a per-client sliding-window attempt limiter
// for the public write endpoints.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of a rate-limit check.
type Decision int

const (
	// Allowed means the attempt may proceed.
	Allowed Decision = iota
	// DeniedTooFrequent means the attempt came too soon after the previous one.
	DeniedTooFrequent
	// DeniedQuotaExhausted means the per-window attempt quota is used up.
	DeniedQuotaExhausted
)

// Limiter checks whether a client key may perform another attempt.
// Denied checks do not consume quota.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}

// Config holds limiter thresholds.
type Config struct {
	// Window is the sliding window duration.
	Window time.Duration
	// MaxAttempts is the maximum number of attempts per key per window.
	MaxAttempts int
	// MinInterval is the minimum spacing between two attempts from the same key.
	MinInterval time.Duration
}
