package adapter

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/mohitrajvardhan17/neo4j-ogm/types"
)

// envelope is the transactional endpoint's response document.
type envelope struct {
	Results []result `json:"results"`
	Errors  []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

type result struct {
	Columns []string `json:"columns"`
	Data    []record `json:"data"`
}

type record struct {
	Row   []any      `json:"row"`
	Graph *graphJSON `json:"graph"`
	Rest  []any      `json:"rest"`
}

// graphJSON is the graph view of a record. Entity identities arrive as
// decimal strings on the wire.
type graphJSON struct {
	Nodes []struct {
		ID         string         `json:"id"`
		Labels     []string       `json:"labels"`
		Properties map[string]any `json:"properties"`
	} `json:"nodes"`
	Relationships []struct {
		ID         string         `json:"id"`
		Type       string         `json:"type"`
		StartNode  string         `json:"startNode"`
		EndNode    string         `json:"endNode"`
		Properties map[string]any `json:"properties"`
	} `json:"relationships"`
}

// decode consumes and closes the response body, returning the first result
// block. Statement-level errors in the envelope fail the decode.
func decode(raw *types.RawResponse) (*result, error) {
	defer raw.Close()

	var env envelope
	if err := json.NewDecoder(raw.Body()).Decode(&env); err != nil {
		return nil, fmt.Errorf("ogm: could not parse response: %w", err)
	}
	if len(env.Errors) > 0 {
		first := env.Errors[0]
		return nil, &types.StatementError{Code: first.Code, Message: first.Message}
	}
	if len(env.Results) == 0 {
		return &result{}, nil
	}
	return &env.Results[0], nil
}

// stream is an in-memory forward-only record stream.
type stream[T any] struct {
	columns []string
	records []T
	idx     int
}

// Compile-time assertion that stream implements types.Response.
var _ types.Response[types.RowModel] = (*stream[types.RowModel])(nil)

// Columns returns the result column names.
func (s *stream[T]) Columns() []string {
	return s.columns
}

// Next returns the next record, or io.EOF when the stream is exhausted.
func (s *stream[T]) Next() (T, error) {
	if s.idx >= len(s.records) {
		var zero T
		return zero, io.EOF
	}
	rec := s.records[s.idx]
	s.idx++
	return rec, nil
}

// Close releases the stream. The body was already closed at construction.
func (s *stream[T]) Close() error {
	s.records = nil
	s.idx = 0
	return nil
}

// Empty returns the explicit empty response used when execution
// short-circuits without a network call.
func Empty[T any]() types.Response[T] {
	return &stream[T]{}
}

// Rows adapts a RawResponse into a row-oriented record stream.
func Rows(raw *types.RawResponse) (types.Response[types.RowModel], error) {
	res, err := decode(raw)
	if err != nil {
		return nil, err
	}
	out := &stream[types.RowModel]{columns: res.Columns}
	for _, rec := range res.Data {
		out.records = append(out.records, types.RowModel{Values: rec.Row})
	}
	return out, nil
}

// Graph adapts a RawResponse into a graph-oriented record stream.
func Graph(raw *types.RawResponse) (types.Response[types.GraphModel], error) {
	res, err := decode(raw)
	if err != nil {
		return nil, err
	}
	out := &stream[types.GraphModel]{columns: res.Columns}
	for _, rec := range res.Data {
		g, err := rec.graphModel()
		if err != nil {
			return nil, err
		}
		out.records = append(out.records, g)
	}
	return out, nil
}

// GraphRows adapts a RawResponse into a combined graph-and-row stream.
func GraphRows(raw *types.RawResponse) (types.Response[types.GraphRowModel], error) {
	res, err := decode(raw)
	if err != nil {
		return nil, err
	}
	out := &stream[types.GraphRowModel]{columns: res.Columns}
	for _, rec := range res.Data {
		g, err := rec.graphModel()
		if err != nil {
			return nil, err
		}
		out.records = append(out.records, types.GraphRowModel{Graph: g, Row: rec.Row})
	}
	return out, nil
}

// Rest adapts a RawResponse into a REST-oriented record stream.
func Rest(raw *types.RawResponse) (types.Response[types.RestModel], error) {
	res, err := decode(raw)
	if err != nil {
		return nil, err
	}
	out := &stream[types.RestModel]{columns: res.Columns}
	for _, rec := range res.Data {
		out.records = append(out.records, types.RestModel{Values: rec.Rest})
	}
	return out, nil
}

// graphModel converts the wire graph view into the typed model.
func (r record) graphModel() (types.GraphModel, error) {
	var g types.GraphModel
	if r.Graph == nil {
		return g, nil
	}
	for _, n := range r.Graph.Nodes {
		id, err := parseID(n.ID)
		if err != nil {
			return g, err
		}
		g.Nodes = append(g.Nodes, types.Node{
			ID:         id,
			Labels:     n.Labels,
			Properties: n.Properties,
		})
	}
	for _, rel := range r.Graph.Relationships {
		id, err := parseID(rel.ID)
		if err != nil {
			return g, err
		}
		start, err := parseID(rel.StartNode)
		if err != nil {
			return g, err
		}
		end, err := parseID(rel.EndNode)
		if err != nil {
			return g, err
		}
		g.Relationships = append(g.Relationships, types.Relationship{
			ID:         id,
			Type:       rel.Type,
			StartNode:  start,
			EndNode:    end,
			Properties: rel.Properties,
		})
	}
	return g, nil
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("ogm: invalid entity id %q: %w", s, err)
	}
	return id, nil
}
