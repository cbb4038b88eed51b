// Package common contains constants and small helpers shared by the client packages.
package common

const (
	// AuthorizationHeader carries the session credential on backend requests.
	AuthorizationHeader = "Authorization"
	// BearerPrefix precedes the credential in AuthorizationHeader.
	BearerPrefix = "Bearer "
	// RequestIDHeader correlates a backend request with client logs.
	RequestIDHeader = "X-Request-ID"
	// APIKeyHeader authenticates calls made through the rate-limiting proxy.
	APIKeyHeader = "X-API-Key"
)
