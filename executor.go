package ogm

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/mohitrajvardhan17/neo4j-ogm/policy"
	"github.com/mohitrajvardhan17/neo4j-ogm/types"
	"github.com/mohitrajvardhan17/neo4j-ogm/wire"
)

const contentTypeJSON = "application/json;charset=UTF-8"

// errInvariant guards the bottom of the retry loop. Every loop iteration
// either returns or transitions the policy toward Exhausted, so reaching it
// means the state machine was violated.
var errInvariant = errors.New("ogm: retry loop exited without a result")

// executor sends a serialized payload to the endpoint and classifies the
// outcome. It is the single place where status codes and transport errors
// are interpreted; callers above only propagate.
type executor struct {
	httpClient  *http.Client
	url         string
	credentials types.Credentials
	userAgent   string

	retries int
	wait    time.Duration

	logger  types.Logger
	metrics types.MetricsCollector
}

// execute POSTs the payload and returns an open, validated response.
//
// Exactly one of the results is non-zero: a RawResponse whose body is
// unconsumed, or a typed error from the taxonomy in types. Transient
// "no response" conditions are retried with a fresh policy per call;
// everything else fails on the first occurrence.
func (e *executor) execute(ctx context.Context, payload []byte) (*types.RawResponse, error) {
	requestID := uuid.NewString()
	start := time.Now()

	e.metrics.IncRequestTotal()
	defer func() {
		e.metrics.ObserveRequestDuration(time.Since(start).Seconds())
	}()

	retry := policy.NewRetry(
		policy.WithRetries(e.retries),
		policy.WithWaitInterval(e.wait),
	)

	attempt := 0
	for retry.ShouldRetry() {
		attempt++
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := e.newRequest(ctx, payload, requestID)
		if err != nil {
			return nil, err
		}

		e.logger.Debug("executing request",
			"request_id", requestID, "url", e.url, "attempt", attempt)

		resp, err := e.httpClient.Do(req)
		if err != nil {
			classified, retryable := e.classifySendError(ctx, err, requestID, attempt, retry)
			if !retryable {
				return nil, classified
			}
			if ferr := retry.OnFailure(ctx); ferr != nil {
				var exhausted *types.RetryExhaustedError
				if errors.As(ferr, &exhausted) {
					e.metrics.IncRequestError(types.ErrorKindRetryExhausted)
				}
				return nil, ferr
			}
			continue
		}

		if resp.StatusCode >= 300 {
			// A definitive server answer, never retried. The body is fully
			// drained into the error message, so nothing leaks.
			return nil, e.statusError(resp, requestID)
		}

		body, empty, err := peekBody(resp.Body)
		if err != nil {
			_ = resp.Body.Close()
			e.metrics.IncRequestError(types.ErrorKindTransport)
			return nil, &types.TransportError{Cause: err}
		}
		if empty {
			_ = resp.Body.Close()
			e.logger.Warn("response contains no content",
				"request_id", requestID, "status", resp.StatusCode)
			e.metrics.IncRequestError(types.ErrorKindNoContent)
			return nil, types.ErrNoContent
		}

		// Don't consume the body: the response adapter streams it.
		return types.NewRawResponse(resp.StatusCode, resp.Header, body), nil
	}

	return nil, errInvariant
}

// newRequest builds a fresh request for one attempt. Rebuilding per attempt
// keeps the body trivially replayable across retries.
func (e *executor) newRequest(ctx context.Context, payload []byte, requestID string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", contentTypeJSON)
	req.Header.Set("Accept", contentTypeJSON)
	req.Header.Set("User-Agent", e.userAgent)
	req.Header.Set("X-Request-ID", requestID)

	if e.credentials != nil {
		e.credentials.Authorize(req)
	}
	return req, nil
}

// classifySendError maps a transport-level send failure to the error
// taxonomy. The second result reports whether the condition is transient
// and eligible for another attempt.
func (e *executor) classifySendError(ctx context.Context, err error, requestID string, attempt int, retry *policy.Retry) (error, bool) {
	// Cancellation is not part of the taxonomy: surface it unchanged.
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr, false
	}

	if isNoResponse(err) {
		e.logger.Warn("no response from server, retrying",
			"request_id", requestID,
			"attempt", attempt,
			"wait_ms", retry.WaitInterval().Milliseconds(),
			"retries_left", retry.Remaining()-1)
		e.metrics.IncRetryAttempt()
		return err, true
	}

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		e.logger.Error("cannot resolve endpoint host",
			"request_id", requestID, "url", e.url, "error", err)
		e.metrics.IncRequestError(types.ErrorKindConnection)
		return &types.ConnectionError{URL: e.url, Cause: err}, false
	}

	e.logger.Error("request failed",
		"request_id", requestID, "url", e.url, "error", err)
	e.metrics.IncRequestError(types.ErrorKindTransport)
	return &types.TransportError{Cause: err}, false
}

// statusError drains a >= 300 response into a typed failure. When the body
// is empty the status reason phrase stands in for the message.
func (e *executor) statusError(resp *http.Response, requestID string) error {
	defer resp.Body.Close()

	message := http.StatusText(resp.StatusCode)
	if body, err := io.ReadAll(resp.Body); err == nil && len(body) > 0 {
		message = wire.ErrorMessage(body)
		e.logger.Warn("server returned error response",
			"request_id", requestID, "status", resp.StatusCode, "message", message)
	}

	e.metrics.IncRequestError(types.ErrorKindHTTPStatus)
	return &types.HTTPResponseError{StatusCode: resp.StatusCode, Message: message}
}

// isNoResponse reports whether the peer dropped the connection without
// producing a response. This is the one transient condition worth retrying:
// the request never reached a definitive answer.
func isNoResponse(err error) bool {
	return errors.Is(err, io.EOF) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.EPIPE)
}

// peekBody reads a single byte to distinguish an empty entity body from a
// present one without consuming it. The returned reader yields the exact
// byte stream the transport produced.
func peekBody(rc io.ReadCloser) (io.ReadCloser, bool, error) {
	var first [1]byte
	n, err := io.ReadFull(rc, first[:])
	if n == 0 {
		if err == io.EOF {
			return nil, true, nil
		}
		return nil, false, err
	}
	return &peekedBody{
		Reader: io.MultiReader(bytes.NewReader(first[:n]), rc),
		closer: rc,
	}, false, nil
}

type peekedBody struct {
	io.Reader
	closer io.Closer
}

func (b *peekedBody) Close() error {
	return b.closer.Close()
}
