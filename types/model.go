package types

// Node is a graph node returned by the server.
type Node struct {
	// ID is the server-assigned node identity.
	ID int64

	// Labels holds the node labels in server order.
	Labels []string

	// Properties holds the node property map.
	Properties map[string]any
}

// Relationship is a directed graph relationship returned by the server.
type Relationship struct {
	// ID is the server-assigned relationship identity.
	ID int64

	// Type is the relationship type.
	Type string

	// StartNode and EndNode are the identities of the endpoints.
	StartNode int64
	EndNode   int64

	// Properties holds the relationship property map.
	Properties map[string]any
}

// GraphModel is the graph-shaped view of a single result record.
type GraphModel struct {
	Nodes         []Node
	Relationships []Relationship
}

// RowModel is the row-shaped view of a single result record: one value per
// returned column, in column order.
type RowModel struct {
	Values []any
}

// GraphRowModel combines the graph and row views of the same record.
type GraphRowModel struct {
	Graph GraphModel
	Row   []any
}

// RestModel is the REST-shaped view of a single result record: expanded
// entity representations as returned by the server, one per column.
type RestModel struct {
	Values []any
}
