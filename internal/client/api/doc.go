// Package api contains the client-side gateway to the patient-profile
// backend.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the consumed REST surface: Login/Signup and patient List/Create/
//     Update/Delete.
//  2. A concrete HTTP implementation (see HTTPClient) that encodes JSON
//     bodies, attaches the bearer token and a per-request id, and maps
//     backend rejections to typed errors carrying the user-facing message.
//
// # Error Handling
//
// Rejections are exposed as typed errors that callers can match with
// errors.As: *AuthError for login/signup, *FetchError for patient CRUD.
// Both carry the backend-supplied detail message, falling back to a fixed
// per-operation default when the response body had none. Transport failures
// (the request never produced an HTTP response) wrap ErrUnavailable.
//
// Requests are single-shot: no retries, no deduplication, and no timeout
// beyond the transport default. All operations accept context.Context and
// honor cancellation.
package api
