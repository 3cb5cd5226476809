// Package types provides shared types and error definitions for the neo4j-ogm driver.
//
// This is a leaf package with zero intra-module imports to prevent import cycles.
// All packages in the driver can safely import this package.
//
// # Types
//
// Statement carries a single query plus its parameter bindings:
//
//	stmt := types.Statement{
//	    Text:       "MATCH (n:Person {name: $name}) RETURN n",
//	    Parameters: map[string]any{"name": "Alice"},
//	}
//
// RawResponse is a validated, still-open HTTP response handle. It is produced
// by the request executor and consumed exactly once by a shape-specific
// response adapter.
//
// # Errors
//
// Typed errors classify every way a remote execution can fail:
//
//   - HTTPResponseError: the server answered with status >= 300
//   - ErrNoContent: the server answered 2xx with an empty body
//   - ConnectionError: the host could not be resolved
//   - TransportError: any other I/O failure during the exchange
//   - RetryExhaustedError: a transient condition persisted past the retry budget
//
// Context cancellation errors are propagated unchanged and are never wrapped
// into the taxonomy above.
package types
