package vitalwiki

import "context"

// SessionService manages user accounts and login sessions. An
// unreachable backend is a non-fatal condition: callers degrade to
// local-only mode when they see EUNAVAILABLE.
type SessionService interface {
	// Register creates a new account. Returns ECONFLICT when the
	// username is taken and EINVALID for malformed credentials.
	Register(ctx context.Context, username, password string) error

	// Login verifies credentials and returns an opaque session token.
	// Returns EUNAUTHORIZED when credentials do not match.
	Login(ctx context.Context, username, password string) (string, error)

	// Logout invalidates a session token. Unknown tokens are ignored.
	Logout(ctx context.Context, token string) error

	// CurrentUser resolves the username behind a session token.
	// Returns EUNAUTHORIZED when the token is missing or expired.
	CurrentUser(ctx context.Context, token string) (string, error)
}
