// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedDelayWaits(t *testing.T) {
	limiter := NewFixedDelay(20 * time.Millisecond)

	start := time.Now()
	err := limiter.Wait(context.Background())
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.GreaterOrEqual(t, elapsed, 20*time.Millisecond)
}

func TestFixedDelayZeroIntervalReturnsImmediately(t *testing.T) {
	limiter := NewFixedDelay(0)

	start := time.Now()
	err := limiter.Wait(context.Background())

	require.NoError(t, err)
	assert.Less(t, time.Since(start), 5*time.Millisecond)
}

func TestFixedDelayCancelledContext(t *testing.T) {
	limiter := NewFixedDelay(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := limiter.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFixedDelayCancelledDuringWait(t *testing.T) {
	limiter := NewFixedDelay(time.Hour)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := limiter.Wait(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
