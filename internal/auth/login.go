package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/edeboer/warehoused/internal/model"
)

// LoginAuthenticator resolves a session cookie to a user. The first failed
// resolution is terminal for the instance; later calls replay
// ErrAuthenticationFailed without touching the store.
type LoginAuthenticator struct {
	session *SessionHandle
	users   model.UserStore
	user    *model.User
	failed  bool
}

// NewLoginAuthenticator builds a login authenticator around a session handle
// and the user store.
func NewLoginAuthenticator(session *SessionHandle, users model.UserStore) *LoginAuthenticator {
	return &LoginAuthenticator{
		session: session,
		users:   users,
	}
}

// Authenticate resolves the session to an active user. The user record is
// loaded at most once per instance; the active flag is re-checked on the
// memoized record every call and never becomes a terminal failure.
func (a *LoginAuthenticator) Authenticate(ctx context.Context) (Principal, error) {
	if a.failed {
		return nil, ErrAuthenticationFailed
	}

	if a.user == nil {
		userID, err := a.session.Resolve(ctx)
		if err != nil {
			a.failed = true
			return nil, err
		}

		user, err := a.users.GetByID(ctx, userID)
		if err != nil {
			a.failed = true
			if errors.Is(err, model.ErrNotFound) {
				return nil, ErrUserNotFound
			}
			return nil, fmt.Errorf("failed to get user by id: %w", err)
		}
		a.user = &user
	}

	if !a.user.Active {
		return nil, ErrUserNotActive
	}

	return *a.user, nil
}
