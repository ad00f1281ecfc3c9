package auth

import (
	"context"

	"github.com/edeboer/warehoused/internal/model"
)

// AdminAuthenticator performs the escalation check on an already-resolved
// user. Escalation status is assumed request-stable, so a positive result is
// memoized and not re-checked within the request.
type AdminAuthenticator struct {
	user  model.User
	admin *model.User
}

// NewAdminAuthenticator builds an admin authenticator for the given user.
func NewAdminAuthenticator(user model.User) *AdminAuthenticator {
	return &AdminAuthenticator{user: user}
}

// Authenticate fails with ErrNotAdmin unless the user carries the admin flag.
func (a *AdminAuthenticator) Authenticate(_ context.Context) (Principal, error) {
	if a.admin == nil {
		if !a.user.Admin {
			return nil, ErrNotAdmin
		}
		a.admin = &a.user
	}
	return *a.admin, nil
}
