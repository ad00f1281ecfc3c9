package auth

import (
	"context"

	"github.com/edeboer/warehoused/internal/model"
)

// Context is the per-request facade the rest of the application reads
// principals from. Resolution is lazy and the outcome, including "no user",
// is memoized for the remainder of the request.
type Context struct {
	registry *Registry
	cookie   string
	resolved bool
	user     *model.User
}

// NewContext builds a request-scoped auth context from the raw session
// cookie.
func NewContext(registry *Registry, rawCookie string) *Context {
	return &Context{
		registry: registry,
		cookie:   rawCookie,
	}
}

// CurrentUser returns the logged-in user, resolving it on first access.
// The policy is lenient: resolution failure yields ok=false so callers can
// treat "no user" as a normal unauthenticated state. Repeated calls return
// the memoized outcome and trigger no further store access.
func (c *Context) CurrentUser(ctx context.Context) (model.User, bool) {
	if !c.resolved {
		c.resolved = true
		if authenticator, err := c.registry.Get(KindLogin, Input{Cookie: c.cookie}); err == nil {
			if principal, err := authenticator.Authenticate(ctx); err == nil {
				if user, ok := principal.(model.User); ok {
					c.user = &user
				}
			}
		}
	}

	if c.user == nil {
		return model.User{}, false
	}
	return *c.user, true
}

// CurrentAdmin runs the explicit escalation check. It is a separate call,
// not implied by CurrentUser, and fails with ErrNotAdmin for unauthenticated
// requests as well as for resolved non-admin users.
func (c *Context) CurrentAdmin(ctx context.Context) (model.User, error) {
	user, ok := c.CurrentUser(ctx)
	if !ok {
		return model.User{}, ErrNotAdmin
	}

	authenticator, err := c.registry.Get(KindAdmin, Input{User: user})
	if err != nil {
		return model.User{}, err
	}

	principal, err := authenticator.Authenticate(ctx)
	if err != nil {
		return model.User{}, err
	}

	admin, ok := principal.(model.User)
	if !ok {
		return model.User{}, ErrNotAdmin
	}
	return admin, nil
}

// CurrentAPIUser resolves a caller-supplied API key for key-authenticated
// endpoints. The key passed on the first call wins for the rest of the
// request.
func (c *Context) CurrentAPIUser(ctx context.Context, key string) (model.APIUser, error) {
	authenticator, err := c.registry.Get(KindAPIKey, Input{Key: key})
	if err != nil {
		return model.APIUser{}, err
	}

	principal, err := authenticator.Authenticate(ctx)
	if err != nil {
		return model.APIUser{}, err
	}

	apiUser, ok := principal.(model.APIUser)
	if !ok {
		return model.APIUser{}, ErrInvalidAPIKey
	}
	return apiUser, nil
}
