package domain

import "errors"

var (
	// ErrInvalidRole rejects role names outside the closed set. A missing
	// role seed row is also reported as this error so callers cannot tell
	// internal states apart.
	ErrInvalidRole = errors.New("invalid role")

	// ErrEmailTaken signals a case-insensitive email collision. Raised by
	// the engine's pre-check and, authoritatively, by the store's unique
	// constraint when two registrations race.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is the single failure for login. Unknown email
	// and wrong password both map here so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrAccountNotFound is an internal store signal; it never crosses the
	// transport boundary as-is.
	ErrAccountNotFound = errors.New("account not found")

	// ErrRoleNotFound is an internal store signal for a missing seed row.
	ErrRoleNotFound = errors.New("role not found")

	// ErrUnauthenticated rejects a token whose subject no longer resolves
	// to an existing account.
	ErrUnauthenticated = errors.New("unauthenticated")
)
