package ogm

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/mohitrajvardhan17/neo4j-ogm/policy"
	"github.com/mohitrajvardhan17/neo4j-ogm/types"
)

// roundTripperFunc adapts a function to http.RoundTripper for stubbing the
// injected transport.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestExecutor(url string, hc *http.Client, opts ...func(*executor)) *executor {
	cfg := DefaultConfig()
	e := &executor{
		httpClient: hc,
		url:        url,
		userAgent:  cfg.UserAgent,
		retries:    cfg.Retries,
		wait:       time.Millisecond,
		logger:     cfg.Logger,
		metrics:    cfg.Metrics,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func TestExecuteReturnsUntouchedBody(t *testing.T) {
	const body = `{"results":[{"columns":["n"],"data":[{"row":[1]}]}],"errors":[]}`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	e := newTestExecutor(server.URL, server.Client())
	raw, err := e.execute(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	defer raw.Close()

	require.Equal(t, http.StatusOK, raw.StatusCode())
	require.Equal(t, types.StatusSuccess, raw.Class())

	got, err := io.ReadAll(raw.Body())
	require.NoError(t, err)
	require.Equal(t, body, string(got))
}

func TestExecuteRequestHeaders(t *testing.T) {
	var seen http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Header.Clone()
		_, _ = w.Write([]byte(`{"results":[],"errors":[]}`))
	}))
	defer server.Close()

	e := newTestExecutor(server.URL, server.Client(), func(e *executor) {
		e.credentials = types.UsernamePassword{Username: "neo4j", Password: "secret"}
	})
	raw, err := e.execute(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	defer raw.Close()

	require.Equal(t, "application/json;charset=UTF-8", seen.Get("Content-Type"))
	require.Equal(t, "application/json;charset=UTF-8", seen.Get("Accept"))
	require.Equal(t, DefaultUserAgent, seen.Get("User-Agent"))
	require.NotEmpty(t, seen.Get("X-Request-ID"))
	require.Contains(t, seen.Get("Authorization"), "Basic ")
}

func TestExecuteStatusErrorStructuredBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"results":[],"errors":[{"code":"Neo.ClientError","message":"X"}]}`))
	}))
	defer server.Close()

	e := newTestExecutor(server.URL, server.Client())
	_, err := e.execute(context.Background(), []byte(`{}`))

	var respErr *types.HTTPResponseError
	require.ErrorAs(t, err, &respErr)
	require.Equal(t, http.StatusBadRequest, respErr.StatusCode)
	require.Equal(t, "X", respErr.Message)
	require.Equal(t, types.StatusClientError, respErr.Class())
}

func TestExecuteStatusErrorUnparseableBody(t *testing.T) {
	const body = `<html>502 Bad Gateway</html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(body))
	}))
	defer server.Close()

	e := newTestExecutor(server.URL, server.Client())
	_, err := e.execute(context.Background(), []byte(`{}`))

	var respErr *types.HTTPResponseError
	require.ErrorAs(t, err, &respErr)
	require.Equal(t, body, respErr.Message)
}

func TestExecuteStatusErrorEmptyBodyUsesReasonPhrase(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	e := newTestExecutor(server.URL, server.Client())
	_, err := e.execute(context.Background(), []byte(`{}`))

	var respErr *types.HTTPResponseError
	require.ErrorAs(t, err, &respErr)
	require.Equal(t, http.StatusText(http.StatusNotFound), respErr.Message)
}

func TestExecuteEmptySuccessBodyIsProtocolViolation(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	e := newTestExecutor(server.URL, server.Client())
	_, err := e.execute(context.Background(), []byte(`{}`))

	require.ErrorIs(t, err, types.ErrNoContent)
	// Not a transient condition: exactly one attempt.
	require.Equal(t, int32(1), calls.Load())
}

func successResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestExecuteRetriesNoResponseThenSucceeds(t *testing.T) {
	const wait = 15 * time.Millisecond
	var attempts atomic.Int32

	hc := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		if attempts.Add(1) <= 2 {
			return nil, syscall.ECONNRESET
		}
		return successResponse(`{"results":[],"errors":[]}`), nil
	})}

	e := newTestExecutor("http://example.test/tx", hc, func(e *executor) {
		e.wait = wait
	})

	start := time.Now()
	raw, err := e.execute(context.Background(), []byte(`{}`))
	require.NoError(t, err)
	defer raw.Close()

	require.Equal(t, int32(3), attempts.Load())
	require.GreaterOrEqual(t, time.Since(start), 2*wait)
}

func TestExecuteRetryExhausted(t *testing.T) {
	var attempts atomic.Int32
	hc := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		attempts.Add(1)
		return nil, syscall.ECONNRESET
	})}

	e := newTestExecutor("http://example.test/tx", hc)
	_, err := e.execute(context.Background(), []byte(`{}`))

	var exhausted *types.RetryExhaustedError
	require.ErrorAs(t, err, &exhausted)
	require.Equal(t, policy.DefaultRetries, exhausted.Attempts)
	require.LessOrEqual(t, attempts.Load(), int32(policy.DefaultRetries+1))
}

func TestExecuteDNSFailureNotRetried(t *testing.T) {
	var attempts atomic.Int32
	hc := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		attempts.Add(1)
		return nil, &net.DNSError{Err: "no such host", Name: "example.test", IsNotFound: true}
	})}

	e := newTestExecutor("http://example.test/tx", hc)
	_, err := e.execute(context.Background(), []byte(`{}`))

	var connErr *types.ConnectionError
	require.ErrorAs(t, err, &connErr)
	require.Equal(t, "http://example.test/tx", connErr.URL)
	require.Equal(t, int32(1), attempts.Load())
}

func TestExecuteOtherIOFailureNotRetried(t *testing.T) {
	var attempts atomic.Int32
	cause := errors.New("tls handshake failed")
	hc := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		attempts.Add(1)
		return nil, cause
	})}

	e := newTestExecutor("http://example.test/tx", hc)
	_, err := e.execute(context.Background(), []byte(`{}`))

	var transportErr *types.TransportError
	require.ErrorAs(t, err, &transportErr)
	require.ErrorIs(t, err, cause)
	require.Equal(t, int32(1), attempts.Load())
}

func TestExecuteContextCancelledBeforeAttempt(t *testing.T) {
	hc := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		t.Fatal("transport must not be invoked with a cancelled context")
		return nil, nil
	})}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := newTestExecutor("http://example.test/tx", hc)
	_, err := e.execute(ctx, []byte(`{}`))
	require.ErrorIs(t, err, context.Canceled)
}

func TestExecuteContextCancelledDuringWait(t *testing.T) {
	hc := &http.Client{Transport: roundTripperFunc(func(*http.Request) (*http.Response, error) {
		return nil, syscall.ECONNRESET
	})}

	e := newTestExecutor("http://example.test/tx", hc, func(e *executor) {
		e.wait = time.Hour
	})

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	start := time.Now()
	_, err := e.execute(ctx, []byte(`{}`))
	require.ErrorIs(t, err, context.Canceled)
	require.Less(t, time.Since(start), time.Minute)
}

func TestExecuteConcurrentCallsIndependentRetryState(t *testing.T) {
	// Each call fails exactly once then succeeds. The request id is stable
	// across attempts of one call, so independent per-call budgets mean
	// every call must succeed regardless of interleaving.
	var firstAttempts sync.Map
	hc := &http.Client{Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if _, seen := firstAttempts.LoadOrStore(req.Header.Get("X-Request-ID"), true); !seen {
			return nil, syscall.ECONNRESET
		}
		return successResponse(`{"results":[],"errors":[]}`), nil
	})}

	e := newTestExecutor("http://example.test/tx", hc)

	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() {
			raw, err := e.execute(context.Background(), []byte(`{}`))
			if raw != nil {
				raw.Close()
			}
			errs <- err
		}()
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, <-errs)
	}
}
