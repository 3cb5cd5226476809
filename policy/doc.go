// Package policy provides the retry policy used by the request executor.
//
// The policy is a pure state machine: it tracks remaining attempts and
// performs the cool-down wait between attempts, but does no I/O itself.
// A fresh policy is constructed per logical call, so concurrent calls never
// share retry state.
//
// The state transitions are explicit:
//
//	Attempting --transient failure--> Attempting (after cool-down wait)
//	Attempting --budget exhausted--> Exhausted (terminal)
//
// The wait is fixed-interval rather than exponential: the policy targets a
// small cluster of tightly-bounded transient failures such as connection
// resets, not congestion.
package policy
