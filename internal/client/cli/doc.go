// Package cli provides the interactive patientcli command-line client.
//
// It wires configuration, the local session database, and the API services
// into an interactive REPL. Typical flow: log in (or restore a persisted
// session), then manage patient records.
//
// Key features:
//   - Login / Signup / Logout
//   - List, add, update, and delete patient profiles
//   - Delete confirmation and required-field checks before any request
//   - Transient success notices shown in the prompt for a few seconds
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
