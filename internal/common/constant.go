// Package common contains shared constants and sentinel errors used across
// goalline client components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on outbound requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-request correlation id.
	RequestIDHeaderName = "X-Request-ID"

	// BearerPrefix precedes the token in the Authorization header.
	BearerPrefix = "Bearer "
)
