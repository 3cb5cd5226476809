package types

import (
	"io"
	"net/http"
)

// RawResponse is a validated, still-open HTTP response handle.
//
// The request executor only ever produces a RawResponse for a success
// classification with a non-empty body; every error path drains and closes
// the body before raising a typed failure, so a RawResponse can never leak
// from a failed call.
//
// Ownership transfers to the caller on return: the body must be consumed by
// at most one reader, and that reader is responsible for calling Close.
type RawResponse struct {
	statusCode int
	header     http.Header
	body       io.ReadCloser
}

// NewRawResponse wraps an open response body with its status and headers.
//
// The body must not have been read; the executor guarantees this for every
// RawResponse it returns.
func NewRawResponse(statusCode int, header http.Header, body io.ReadCloser) *RawResponse {
	return &RawResponse{
		statusCode: statusCode,
		header:     header,
		body:       body,
	}
}

// StatusCode returns the HTTP status code of the response.
func (r *RawResponse) StatusCode() int {
	return r.statusCode
}

// Class returns the coarse status classification of the response.
func (r *RawResponse) Class() StatusClass {
	return ClassifyStatus(r.statusCode)
}

// Header returns the response headers.
func (r *RawResponse) Header() http.Header {
	return r.header
}

// Body returns the unconsumed entity body stream.
func (r *RawResponse) Body() io.ReadCloser {
	return r.body
}

// Close releases the underlying connection resources.
func (r *RawResponse) Close() error {
	if r.body == nil {
		return nil
	}
	return r.body.Close()
}

// Response is a lazy, forward-only stream of typed records produced by a
// shape-specific adapter from a RawResponse.
//
// A Response is not safe for concurrent use; it is owned by the single
// caller that executed the query.
type Response[T any] interface {
	// Columns returns the result column names, in server order.
	// Empty responses report no columns.
	Columns() []string

	// Next returns the next record, or io.EOF when the stream is exhausted.
	Next() (T, error)

	// Close releases any resources still held by the response.
	// Close is idempotent.
	Close() error
}
