// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"time"
)

// Limiter paces successive remote calls. The orchestrator calls Wait
// between requests, never before the first one.
type Limiter interface {
	// Wait blocks until the next request may be sent or the context is
	// cancelled, in which case it returns ctx.Err().
	Wait(ctx context.Context) error
}

// FixedDelay is a Limiter that pauses a constant interval on every Wait.
// NCBI asks unauthenticated clients to stay under 3 requests per second;
// a one-second pause is the polite default.
type FixedDelay struct {
	Interval time.Duration
}

// NewFixedDelay returns a FixedDelay limiter with the given interval.
// A zero or negative interval never waits.
func NewFixedDelay(interval time.Duration) *FixedDelay {
	return &FixedDelay{Interval: interval}
}

// Wait sleeps for the configured interval.
func (f *FixedDelay) Wait(ctx context.Context) error {
	if f.Interval <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(f.Interval):
		return nil
	}
}
