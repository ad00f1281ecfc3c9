// Package auth resolves opaque request credentials into validated
// principals. All state is request-scoped: a fresh Registry and Context are
// built per inbound request, so no locking is needed inside this package.
package auth

import (
	"context"

	"github.com/edeboer/warehoused/internal/model"
)

// Kind names a registered authenticator variant.
type Kind string

const (
	KindLogin  Kind = "login"
	KindAdmin  Kind = "admin"
	KindAPIKey Kind = "api"
)

// Principal is an authenticated entity on whose behalf a request is
// evaluated. model.User and model.APIUser both satisfy it.
type Principal interface {
	PrincipalID() int64
}

// Authenticator attempts to turn a credential into a Principal, caching
// success or failure for its lifetime. A failed instance is never retried;
// a fresh request builds fresh instances.
type Authenticator interface {
	Authenticate(ctx context.Context) (Principal, error)
}

// Input carries the request-scoped material a constructor may need. Only the
// fields relevant to the requested kind are read.
type Input struct {
	// Cookie is the raw session cookie value, used by the login kind.
	Cookie string
	// User is an already-resolved user, used by the admin kind.
	User model.User
	// Key is a caller-supplied API key, used by the api kind.
	Key string
}

// Constructor builds an authenticator from request-scoped input.
type Constructor func(in Input) Authenticator
