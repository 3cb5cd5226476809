package policy

import (
	"context"
	"time"

	"github.com/mohitrajvardhan17/neo4j-ogm/types"
)

// Default retry configuration: a budget of 3 attempts with a fixed
// 2 second wait between them.
const (
	DefaultRetries      = 3
	DefaultWaitInterval = 2 * time.Second
)

// State identifies the current state of a Retry state machine.
type State int

const (
	// StateAttempting means at least one attempt remains.
	StateAttempting State = iota

	// StateExhausted is the terminal state: the retry budget is spent and
	// no further attempt may be made.
	StateExhausted
)

// String returns the string representation of the State.
func (s State) String() string {
	switch s {
	case StateAttempting:
		return "attempting"
	case StateExhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// Retry tracks the remaining attempt budget for a single logical call and
// gates successive attempts with a fixed cool-down wait.
//
// Retry is NOT safe for concurrent use. Each call constructs its own
// instance, which keeps concurrent callers fully independent.
type Retry struct {
	retries   int
	wait      time.Duration
	remaining int
	state     State
}

// Option configures a Retry.
type Option func(*Retry)

// WithRetries sets the attempt budget: the maximum number of send attempts
// for a single call.
//
// Parameters:
//   - n: Attempt budget; values < 1 are treated as 1 (a single attempt)
//
// Returns:
//   - Option: Configuration option
func WithRetries(n int) Option {
	return func(r *Retry) {
		if n < 1 {
			n = 1
		}
		r.retries = n
	}
}

// WithWaitInterval sets the fixed wait between attempts.
//
// Parameters:
//   - d: Wait duration; values < 0 are treated as 0
//
// Returns:
//   - Option: Configuration option
func WithWaitInterval(d time.Duration) Option {
	return func(r *Retry) {
		if d < 0 {
			d = 0
		}
		r.wait = d
	}
}

// NewRetry creates a retry state machine in the Attempting state.
//
// By default the budget is 3 retries with a 2 second fixed wait.
//
// Parameters:
//   - opts: Optional configuration options
//
// Returns:
//   - *Retry: A new retry state machine
func NewRetry(opts ...Option) *Retry {
	r := &Retry{
		retries: DefaultRetries,
		wait:    DefaultWaitInterval,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.remaining = r.retries
	return r
}

// ShouldRetry reports whether at least one attempt remains.
func (r *Retry) ShouldRetry() bool {
	return r.state == StateAttempting && r.remaining > 0
}

// State returns the current state of the machine.
func (r *Retry) State() State {
	return r.state
}

// Remaining returns the number of attempts left.
func (r *Retry) Remaining() int {
	return r.remaining
}

// WaitInterval returns the configured cool-down interval.
func (r *Retry) WaitInterval() time.Duration {
	return r.wait
}

// OnFailure records a transient failure and gates the next attempt.
//
// It decrements the remaining budget. If the budget is exhausted the machine
// transitions to the terminal Exhausted state and a RetryExhaustedError is
// returned. Otherwise it blocks for the cool-down interval; a cancelled
// context aborts the wait and returns the context error, leaving the machine
// in the Exhausted state so the call cannot continue.
//
// Parameters:
//   - ctx: Context checked during the cool-down wait
//
// Returns:
//   - error: nil when another attempt may proceed, RetryExhaustedError when
//     the budget is spent, or the context error when the wait was cancelled
func (r *Retry) OnFailure(ctx context.Context) error {
	if r.state == StateExhausted {
		return &types.RetryExhaustedError{Attempts: r.retries, WaitInterval: r.wait}
	}

	r.remaining--
	if r.remaining <= 0 {
		r.state = StateExhausted
		return &types.RetryExhaustedError{Attempts: r.retries, WaitInterval: r.wait}
	}

	if r.wait <= 0 {
		return nil
	}

	timer := time.NewTimer(r.wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		r.state = StateExhausted
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
