// Package wire builds the JSON payload sent to the transactional HTTP
// endpoint and extracts error messages from structured error bodies.
//
// The payload wraps one or more statements:
//
//	{"statements": [
//	    {"statement": "MATCH (n) RETURN n",
//	     "parameters": {},
//	     "resultDataContents": ["graph"],
//	     "includeStats": false}
//	]}
//
// The result shape each statement requests is controlled by a Format, which
// maps to the endpoint's resultDataContents field.
package wire
