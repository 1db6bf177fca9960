// Package session holds the client's authentication state: the bearer token
// plus a locally derived user descriptor, with the token written through to
// durable local storage.
package session

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/patientcli/internal/client/models"
	"github.com/dmitrijs2005/patientcli/internal/client/repositories/metadata"
)

// TokenKey is the single metadata key under which the raw bearer token is
// persisted. Absence of the key means "unauthenticated".
const TokenKey = "session_token"

// Store is the process-wide session state.
//
// The token and the user descriptor are mutated together: SetSession sets
// both, ClearSession clears both, so User() is non-nil exactly when the
// session was opened through SetSession. A token restored by Initialize
// comes without a descriptor: the backend contract has no endpoint to fetch
// one, and the token itself is opaque to the client.
//
// Store performs no token validation: any token found in storage at startup
// counts as proof of authentication until the backend says otherwise.
//
// Store is not guarded against concurrent mutation. If two logins, or a
// login and a logout, race each other, the last writer to complete wins,
// with no ordering guarantee tied to call initiation order.
type Store struct {
	repo  metadata.Repository
	token string
	user  *models.User
}

func NewStore(repo metadata.Repository) *Store {
	return &Store{repo: repo}
}

// Initialize hydrates the in-memory session from the persisted token, if
// one exists. No network call is made.
func (s *Store) Initialize(ctx context.Context) error {
	value, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return fmt.Errorf("reading persisted token: %w", err)
	}
	if len(value) == 0 {
		return nil
	}
	s.token = string(value)
	return nil
}

// SetSession stores the token and user in memory and persists the token.
// Any prior session is overwritten.
func (s *Store) SetSession(ctx context.Context, token string, user models.User) error {
	if err := s.repo.Set(ctx, TokenKey, []byte(token)); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	s.token = token
	s.user = &user
	return nil
}

// ClearSession removes both in-memory fields and deletes the persisted
// token, regardless of prior state.
func (s *Store) ClearSession(ctx context.Context) error {
	if err := s.repo.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("removing persisted token: %w", err)
	}
	s.token = ""
	s.user = nil
	return nil
}

// IsAuthenticated reports whether a token is currently present.
func (s *Store) IsAuthenticated() bool {
	return s.token != ""
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	return s.token
}

// User returns the current user descriptor, or nil. The descriptor is
// display-only: it is fabricated from login/signup input, never verified
// against the server.
func (s *Store) User() *models.User {
	return s.user
}
