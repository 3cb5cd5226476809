package wire

import (
	"encoding/json"
	"fmt"

	"github.com/mohitrajvardhan17/neo4j-ogm/types"
)

// Format selects the result shape a statement requests from the server.
type Format int

const (
	// FormatRow requests row-oriented results.
	FormatRow Format = iota

	// FormatGraph requests graph-oriented results.
	FormatGraph

	// FormatGraphRow requests both graph and row views per record.
	FormatGraphRow

	// FormatRest requests expanded REST entity representations.
	FormatRest
)

// resultDataContents maps a Format to the endpoint's result content names.
func (f Format) resultDataContents() []string {
	switch f {
	case FormatGraph:
		return []string{"graph"}
	case FormatGraphRow:
		return []string{"graph", "row"}
	case FormatRest:
		return []string{"rest"}
	default:
		return []string{"row"}
	}
}

// statement is the wire form of a single statement entry.
type statement struct {
	Statement          string         `json:"statement"`
	Parameters         map[string]any `json:"parameters"`
	ResultDataContents []string       `json:"resultDataContents"`
	IncludeStats       bool           `json:"includeStats"`
}

// payload is the top-level wire document.
type payload struct {
	Statements []statement `json:"statements"`
}

// Encode wraps the given statements into the wire payload, in order.
// Statement order is significant: it defines execution order on the server.
//
// Parameters:
//   - format: Result shape requested for every statement
//   - stmts: Statements to execute, in execution order
//
// Returns:
//   - []byte: The JSON payload
//   - error: Wrapped encoding error if a parameter value cannot be marshaled
func Encode(format Format, stmts ...types.Statement) ([]byte, error) {
	doc := payload{Statements: make([]statement, 0, len(stmts))}
	for _, s := range stmts {
		params := s.Parameters
		if params == nil {
			// The endpoint expects a parameters object on every statement.
			params = map[string]any{}
		}
		doc.Statements = append(doc.Statements, statement{
			Statement:          s.Text,
			Parameters:         params,
			ResultDataContents: format.resultDataContents(),
		})
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("ogm: could not create JSON: %w", err)
	}
	return b, nil
}
