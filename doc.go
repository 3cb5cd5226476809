// Package ogm provides a transactional query-execution client for a remote
// graph query endpoint speaking HTTP.
//
// The client serializes statements into the transactional endpoint's JSON
// payload, POSTs them over an injected HTTP transport, retries transient
// "no response" failures with a fixed cool-down, and maps every other
// failure to a typed error. A successful call returns a shape-specific
// record stream whose body was validated but never consumed by the driver
// itself.
//
// # Basic Usage
//
//	client, err := ogm.New("http://localhost:7474/db/data/transaction/commit",
//	    ogm.WithCredentials(types.UsernamePassword{Username: "neo4j", Password: "secret"}),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	rows, err := client.ExecuteRows(ctx, types.Statement{
//	    Text:       "MATCH (n:Person {name: $name}) RETURN n.name, n.age",
//	    Parameters: map[string]any{"name": "Alice"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer rows.Close()
//
//	for {
//	    row, err := rows.Next()
//	    if errors.Is(err, io.EOF) {
//	        break
//	    }
//	    // use row.Values
//	}
//
// # Error Handling
//
// All status and transport classification happens inside the executor;
// callers receive exactly one typed failure per failed call:
//
//   - *types.HTTPResponseError: the server answered >= 300 (never retried)
//   - types.ErrNoContent: a 2xx answer with an empty body (never retried)
//   - *types.ConnectionError: the host could not be resolved (never retried)
//   - *types.TransportError: any other I/O failure (never retried)
//   - *types.RetryExhaustedError: repeated "no response" past the budget
//
// Context cancellation aborts the call between attempts and during retry
// waits, and the context error is returned unchanged.
//
// # Concurrency
//
// A Client is safe for concurrent use; every call builds its own retry
// state, so concurrent calls never observe each other's attempt counters.
// The injected *http.Client must itself be safe for concurrent dispatch,
// which the standard client is. Returned record streams are single-reader.
package ogm
