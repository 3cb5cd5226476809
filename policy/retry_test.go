package policy

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mohitrajvardhan17/neo4j-ogm/types"
)

func TestRetryDefaults(t *testing.T) {
	r := NewRetry()

	require.Equal(t, DefaultRetries, r.Remaining())
	require.Equal(t, DefaultWaitInterval, r.WaitInterval())
	require.Equal(t, StateAttempting, r.State())
	require.True(t, r.ShouldRetry())
}

func TestRetryExhaustion(t *testing.T) {
	r := NewRetry(WithRetries(2), WithWaitInterval(0))
	ctx := context.Background()

	// First failure leaves one attempt.
	require.NoError(t, r.OnFailure(ctx))
	require.True(t, r.ShouldRetry())
	require.Equal(t, 1, r.Remaining())

	// Second failure spends the budget.
	err := r.OnFailure(ctx)
	var exhausted *types.RetryExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.Equal(t, 2, exhausted.Attempts)
	require.Equal(t, time.Duration(0), exhausted.WaitInterval)

	require.Equal(t, StateExhausted, r.State())
	require.False(t, r.ShouldRetry())

	// A terminal machine stays terminal.
	err = r.OnFailure(ctx)
	require.ErrorAs(t, err, &exhausted)
}

func TestRetryWaitsBetweenAttempts(t *testing.T) {
	wait := 20 * time.Millisecond
	r := NewRetry(WithRetries(3), WithWaitInterval(wait))

	start := time.Now()
	require.NoError(t, r.OnFailure(context.Background()))
	require.NoError(t, r.OnFailure(context.Background()))
	require.GreaterOrEqual(t, time.Since(start), 2*wait)
}

func TestRetryWaitCancellation(t *testing.T) {
	r := NewRetry(WithRetries(3), WithWaitInterval(time.Hour))

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	err := r.OnFailure(ctx)
	require.True(t, errors.Is(err, context.Canceled))
	require.Less(t, time.Since(start), time.Hour)

	// A cancelled wait terminates the machine.
	require.Equal(t, StateExhausted, r.State())
	require.False(t, r.ShouldRetry())
}

func TestRetryOptionClamping(t *testing.T) {
	r := NewRetry(WithRetries(-1), WithWaitInterval(-time.Second))

	// A budget below one attempt is meaningless; it is clamped to a single
	// attempt with no wait.
	require.Equal(t, 1, r.Remaining())
	require.Equal(t, time.Duration(0), r.WaitInterval())
	require.True(t, r.ShouldRetry())

	err := r.OnFailure(context.Background())
	var exhausted *types.RetryExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.False(t, r.ShouldRetry())
}

func TestRetryInstancesAreIndependent(t *testing.T) {
	// Concurrent calls each hold their own machine; exercising many machines
	// in parallel must not let attempt counters bleed across instances.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := NewRetry(WithRetries(3), WithWaitInterval(0))
			require.NoError(t, r.OnFailure(context.Background()))
			require.Equal(t, 2, r.Remaining())
			require.True(t, r.ShouldRetry())
		}()
	}
	wg.Wait()
}
