package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/patientcli/internal/client/api"
	"github.com/dmitrijs2005/patientcli/internal/common"
)

// getSimpleText, getPassword and getConfirmation are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText   = GetSimpleText
	getPassword     = GetPassword
	getConfirmation = GetConfirmation
)

// displayError converts a failure into the string shown to the user: typed
// backend rejections carry their own message, anything else (transport
// failures included) collapses to the generic fallback.
func displayError(err error, fallback string) string {
	var authErr *api.AuthError
	if errors.As(err, &authErr) {
		return authErr.Message
	}
	var fetchErr *api.FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr.Message
	}
	return fallback
}

// Login prompts the user for a username and password and attempts to
// authenticate via the AuthService.
//
// On success it prints "Success!" and the session (token plus fabricated
// user descriptor) is stored. Failures are printed, not returned: only I/O
// errors on the prompts propagate. The password byte slice is wiped before
// returning.
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Login(ctx, username, password); err != nil {
		printlnFn(displayError(err, "An error occurred during login"))
		return nil
	}

	printlnFn("Success!")
	return nil
}

// Signup prompts for a username, email and password and attempts to create
// a new account. On success the backend logs the user straight in, and the
// session descriptor carries the supplied email.
func (a *App) Signup(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if _, err := a.authService.Signup(ctx, username, email, password); err != nil {
		printlnFn(displayError(err, "An error occurred during signup"))
		return nil
	}

	printlnFn("Success!")
	return nil
}

// Logout clears the session and removes the persisted token.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		printlnFn(displayError(err, "An error occurred during logout"))
		return nil
	}
	printlnFn("Logged out.")
	return nil
}

// WhoAmI prints the session's user descriptor. The descriptor is derived
// from login/signup input, not verified against the server, so a session
// restored from storage has a token but no descriptor to show.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.session.User()
	if u == nil {
		if a.isLoggedIn() {
			printlnFn("Authenticated (restored session, user details unknown)")
		} else {
			printlnFn("Not logged in")
		}
		return nil
	}

	printlnFn(fmt.Sprintf("id=%d username=%s email=%s created_at=%s",
		u.ID, u.Username, u.Email, u.CreatedAt.Format("2006-01-02 15:04:05")))
	return nil
}
