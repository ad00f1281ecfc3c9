package model

import "errors"

var (
	// ErrNotFound is returned by stores when no record matches.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned by stores on unique-field violations
	// (email, API key).
	ErrDuplicate = errors.New("duplicate value for unique field")

	// ErrPasswordTooShort rejects passwords under 8 characters.
	ErrPasswordTooShort = errors.New("password too short, 8 characters minimal")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// login failures are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrProtectedUser guards the bootstrap user against deletion.
	ErrProtectedUser = errors.New("first user cannot be deleted")

	// ErrInvalidEmail rejects empty or malformed email addresses.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrInvalidName rejects empty display names for API keys.
	ErrInvalidName = errors.New("invalid name")
)
