// Package adapter turns a validated RawResponse into a typed, forward-only
// record stream for each result shape the endpoint can produce.
//
// Adapters take exclusive ownership of the response: construction decodes
// the result envelope and closes the body, so the caller only interacts with
// the returned stream. A response envelope carrying statement-level errors
// fails adapter construction with a types.StatementError.
package adapter
