package models

import "time"

// User is the session's user descriptor. It is derived client-side from the
// credentials supplied to login/signup, not fetched from the server, and is
// suitable for display only. Email is empty after login (the login response
// does not carry it) and populated after signup.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is the backend's reply to a successful login or signup.
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
