// Package common contains shared constants and helpers used across the
// patientcli components.
package common

const (
	// AuthorizationHeaderName carries the bearer token on authenticated requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries a client-generated id for request tracing.
	RequestIDHeaderName = "X-Request-Id"
)
