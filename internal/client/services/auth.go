// Package services contains application services for the patientcli client.
// This file defines the authentication service: login, signup, and logout,
// wiring the API gateway to the session store.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/patientcli/internal/client/api"
	"github.com/dmitrijs2005/patientcli/internal/client/models"
	"github.com/dmitrijs2005/patientcli/internal/client/session"
)

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - Login: exchange credentials for a bearer token and open a session.
//   - Signup: create an account and open a session the same way.
//   - Logout: close the session and remove the persisted token.
//   - Close: release underlying client resources.
//
// Login and Signup are single-shot: no retries, and concurrent calls are
// not deduplicated, so the session store's last-write-wins semantics apply.
// All methods must honor context cancellation.
type AuthService interface {
	Login(ctx context.Context, username string, password []byte) (*models.AuthResponse, error)
	Signup(ctx context.Context, username, email string, password []byte) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	Close(ctx context.Context) error
}

type authService struct {
	client  api.Client
	session *session.Store
	now     func() time.Time
}

// NewAuthService constructs an AuthService bound to the given API client and
// session store.
func NewAuthService(client api.Client, store *session.Store) AuthService {
	return &authService{client: client, session: store, now: time.Now}
}

// Login authenticates against the backend and stores the resulting session.
//
// The user descriptor is fabricated locally from the supplied credentials:
// the login response carries no identity payload, so the id is fixed to 1
// and the email is left empty. A failed exchange leaves the session
// untouched and returns the typed error from the API client.
func (a *authService) Login(ctx context.Context, username string, password []byte) (*models.AuthResponse, error) {
	resp, err := a.client.Login(ctx, username, string(password))
	if err != nil {
		return nil, err
	}

	user := models.User{ID: 1, Username: username, Email: "", CreatedAt: a.now()}
	if err := a.session.SetSession(ctx, resp.AccessToken, user); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	return resp, nil
}

// Signup creates an account and opens a session. Unlike Login, the supplied
// email ends up in the user descriptor.
func (a *authService) Signup(ctx context.Context, username, email string, password []byte) (*models.AuthResponse, error) {
	resp, err := a.client.Signup(ctx, username, email, string(password))
	if err != nil {
		return nil, err
	}

	user := models.User{ID: 1, Username: username, Email: email, CreatedAt: a.now()}
	if err := a.session.SetSession(ctx, resp.AccessToken, user); err != nil {
		return nil, fmt.Errorf("saving session: %w", err)
	}
	return resp, nil
}

// Logout clears the session. No network call is made; the backend never
// learns the token is gone.
func (a *authService) Logout(ctx context.Context) error {
	return a.session.ClearSession(ctx)
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
