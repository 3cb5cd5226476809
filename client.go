package ogm

import (
	"context"
	"net/url"

	"github.com/mohitrajvardhan17/neo4j-ogm/adapter"
	"github.com/mohitrajvardhan17/neo4j-ogm/types"
	"github.com/mohitrajvardhan17/neo4j-ogm/wire"
)

// Client executes statements against a transactional HTTP query endpoint.
//
// One execute operation exists per result shape. Each operation serializes
// the statement, delegates the exchange to the request executor, and wraps
// the still-open response in the shape's adapter. Statements with empty
// query text short-circuit to an empty response without any network call.
//
// # Thread Safety
//
// Client is safe for concurrent use from multiple goroutines. Retry state
// is constructed fresh per call and the injected *http.Client handles
// concurrent dispatch.
type Client struct {
	url    string
	config *ClientConfig
	exec   *executor
}

// New creates a client for the given transactional endpoint URL.
//
// Parameters:
//   - endpoint: Absolute URL of the statement-execution endpoint (required)
//   - opts: Optional configuration options
//
// Returns:
//   - *Client: A new query client
//   - error: types.ErrMissingURL or a URL parse error
func New(endpoint string, opts ...Option) (*Client, error) {
	if endpoint == "" {
		return nil, types.ErrMissingURL
	}
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Client{
		url:    endpoint,
		config: cfg,
		exec: &executor{
			httpClient:  cfg.HTTPClient,
			url:         endpoint,
			credentials: cfg.Credentials,
			userAgent:   cfg.UserAgent,
			retries:     cfg.Retries,
			wait:        cfg.WaitInterval,
			logger:      cfg.Logger,
			metrics:     cfg.Metrics,
		},
	}, nil
}

// URL returns the endpoint the client executes against.
func (c *Client) URL() string {
	return c.url
}

// ExecuteRows executes a statement and returns row-oriented results.
//
// Parameters:
//   - ctx: Context for cancellation
//   - stmt: The statement to execute
//
// Returns:
//   - types.Response[types.RowModel]: Forward-only row stream
//   - error: A typed execution failure
func (c *Client) ExecuteRows(ctx context.Context, stmt types.Statement) (types.Response[types.RowModel], error) {
	if len(stmt.Text) == 0 {
		return adapter.Empty[types.RowModel](), nil
	}
	raw, err := c.send(ctx, wire.FormatRow, stmt)
	if err != nil {
		return nil, err
	}
	return adapter.Rows(raw)
}

// ExecuteGraph executes a statement and returns graph-oriented results.
//
// Parameters:
//   - ctx: Context for cancellation
//   - stmt: The statement to execute
//
// Returns:
//   - types.Response[types.GraphModel]: Forward-only graph stream
//   - error: A typed execution failure
func (c *Client) ExecuteGraph(ctx context.Context, stmt types.Statement) (types.Response[types.GraphModel], error) {
	if len(stmt.Text) == 0 {
		return adapter.Empty[types.GraphModel](), nil
	}
	raw, err := c.send(ctx, wire.FormatGraph, stmt)
	if err != nil {
		return nil, err
	}
	return adapter.Graph(raw)
}

// ExecuteGraphRows executes a statement and returns combined graph-and-row
// results.
//
// Parameters:
//   - ctx: Context for cancellation
//   - stmt: The statement to execute
//
// Returns:
//   - types.Response[types.GraphRowModel]: Forward-only combined stream
//   - error: A typed execution failure
func (c *Client) ExecuteGraphRows(ctx context.Context, stmt types.Statement) (types.Response[types.GraphRowModel], error) {
	if len(stmt.Text) == 0 {
		return adapter.Empty[types.GraphRowModel](), nil
	}
	raw, err := c.send(ctx, wire.FormatGraphRow, stmt)
	if err != nil {
		return nil, err
	}
	return adapter.GraphRows(raw)
}

// ExecuteRest executes a statement and returns expanded REST entity results.
//
// Parameters:
//   - ctx: Context for cancellation
//   - stmt: The statement to execute
//
// Returns:
//   - types.Response[types.RestModel]: Forward-only REST stream
//   - error: A typed execution failure
func (c *Client) ExecuteRest(ctx context.Context, stmt types.Statement) (types.Response[types.RestModel], error) {
	if len(stmt.Text) == 0 {
		return adapter.Empty[types.RestModel](), nil
	}
	raw, err := c.send(ctx, wire.FormatRest, stmt)
	if err != nil {
		return nil, err
	}
	return adapter.Rest(raw)
}

// ExecuteBatch executes an ordered batch of statements in a single request
// and returns row-oriented results. Statement order defines execution order
// on the server. An empty batch short-circuits to an empty response.
//
// Parameters:
//   - ctx: Context for cancellation
//   - stmts: Statements to execute, in execution order
//
// Returns:
//   - types.Response[types.RowModel]: Forward-only row stream
//   - error: A typed execution failure
func (c *Client) ExecuteBatch(ctx context.Context, stmts ...types.Statement) (types.Response[types.RowModel], error) {
	if len(stmts) == 0 {
		return adapter.Empty[types.RowModel](), nil
	}
	raw, err := c.send(ctx, wire.FormatRow, stmts...)
	if err != nil {
		return nil, err
	}
	return adapter.Rows(raw)
}

// send serializes the statements and delegates to the executor.
func (c *Client) send(ctx context.Context, format wire.Format, stmts ...types.Statement) (*types.RawResponse, error) {
	payload, err := wire.Encode(format, stmts...)
	if err != nil {
		return nil, err
	}
	return c.exec.execute(ctx, payload)
}
