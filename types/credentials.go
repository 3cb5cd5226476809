package types

import "net/http"

// Credentials decorates an outgoing request with authentication headers.
//
// Credentials are immutable capability values supplied at client
// construction time and applied per request without mutation. A nil
// Credentials means anonymous access and is handled by the executor as a
// no-op.
type Credentials interface {
	// Authorize sets the authentication headers on the request.
	Authorize(req *http.Request)
}

// UsernamePassword authenticates with HTTP basic auth.
type UsernamePassword struct {
	Username string
	Password string
}

// Compile-time assertion that UsernamePassword implements Credentials.
var _ Credentials = UsernamePassword{}

// Authorize sets the Authorization header to a basic-auth credential.
func (c UsernamePassword) Authorize(req *http.Request) {
	req.SetBasicAuth(c.Username, c.Password)
}

// Token authenticates with a bearer token.
type Token string

// Compile-time assertion that Token implements Credentials.
var _ Credentials = Token("")

// Authorize sets the Authorization header to a bearer credential.
func (c Token) Authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+string(c))
}
