package auth

import "errors"

var (
	// ErrInvalidSessionCookie means the session cookie could not be parsed
	// or its session record could not be loaded. The broken session is
	// deleted as a side effect.
	ErrInvalidSessionCookie = errors.New("session cookie invalid")

	// ErrUserNotFound means a structurally valid session points at a user
	// that no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrUserNotActive means the resolved user has been deactivated.
	ErrUserNotActive = errors.New("user not active, session invalid")

	// ErrNotAdmin means the escalation check failed.
	ErrNotAdmin = errors.New("user not admin")

	// ErrInvalidAPIKey means the presented key is unknown or inactive.
	ErrInvalidAPIKey = errors.New("api key invalid")

	// ErrUnknownKind means a kind was requested that was never registered.
	// This is a programming error: with the default registry wiring it can
	// not occur at request time.
	ErrUnknownKind = errors.New("unknown authenticator kind")

	// ErrAuthenticationFailed replays a cached resolution failure without
	// touching the store again.
	ErrAuthenticationFailed = errors.New("authentication already failed")
)
