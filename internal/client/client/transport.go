package client

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/flowgate/internal/common"
)

// TokenSource yields the current session credential, "" when signed out.
type TokenSource interface {
	Token() string
}

// CredentialInjector is an http.RoundTripper that attaches the current
// credential to every outgoing request. The token is read per request, so a
// sign-in or sign-out takes effect on the next call. Requests are cloned
// before modification; without a token they are passed through untouched.
type CredentialInjector struct {
	base   http.RoundTripper
	tokens TokenSource
}

func NewCredentialInjector(base http.RoundTripper, tokens TokenSource) *CredentialInjector {
	if base == nil {
		base = http.DefaultTransport
	}
	return &CredentialInjector{base: base, tokens: tokens}
}

func (t *CredentialInjector) RoundTrip(req *http.Request) (*http.Response, error) {
	var token string
	if t.tokens != nil {
		token = t.tokens.Token()
	}
	if token == "" {
		return t.base.RoundTrip(req)
	}

	r := req.Clone(req.Context())
	r.Header.Set(common.AuthorizationHeader, common.BearerPrefix+token)
	return t.base.RoundTrip(r)
}

type requestIDKey struct{}

// WithRequestID returns a context whose requests are sent with id as X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID, "" if none.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestIDTransport is the only place X-Request-ID is set. The id comes
// from the request context, or is generated when the context has none.
type requestIDTransport struct {
	base http.RoundTripper
}

func (t requestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := RequestID(req.Context())
	if id == "" {
		id = uuid.NewString()
	}
	r := req.Clone(req.Context())
	r.Header.Set(common.RequestIDHeader, id)
	return t.base.RoundTrip(r)
}
