package api

import "errors"

// ErrUnavailable indicates a transport-level failure: the request never
// produced an HTTP response (connection refused, DNS failure, and so on).
var ErrUnavailable = errors.New("server unavailable")

// AuthError is a login or signup rejection from the backend. Message is the
// user-facing text: the backend's detail field when present, otherwise the
// operation's default ("Login failed" / "Signup failed").
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// FetchError is a patient CRUD rejection from the backend, with the same
// message contract as AuthError.
type FetchError struct {
	Message string
}

func (e *FetchError) Error() string {
	return e.Message
}
