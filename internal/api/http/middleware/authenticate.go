// Package middleware builds the per-request auth context and guards routes.
package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/edeboer/warehoused/internal/auth"
	"github.com/edeboer/warehoused/internal/logger"
)

type ctxKey int

const authContextKey ctxKey = iota

// APIKeyHeader carries the key for API-authenticated endpoints.
const APIKeyHeader = "X-API-Key"

// RegistryFactory builds a fresh authenticator registry. Called once per
// request so every request gets independent resolution state.
type RegistryFactory func() *auth.Registry

// Authenticate attaches a request-scoped auth.Context to every request and
// provides the route guards built on top of it.
type Authenticate struct {
	newRegistry RegistryFactory
	cookieName  string
	logger      *logger.Logger
}

// NewAuthenticate creates the authentication middleware.
func NewAuthenticate(newRegistry RegistryFactory, cookieName string, logger *logger.Logger) *Authenticate {
	return &Authenticate{
		newRegistry: newRegistry,
		cookieName:  cookieName,
		logger:      logger,
	}
}

// Handler wraps next so every request carries an auth.Context built from its
// session cookie. Resolution stays lazy: no store access happens until a
// handler or guard reads a principal.
func (m *Authenticate) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var rawCookie string
		if cookie, err := r.Cookie(m.cookieName); err == nil {
			rawCookie = cookie.Value
		}

		authCtx := auth.NewContext(m.newRegistry(), rawCookie)
		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), authCtx)))
	})
}

// RequireUser redirects unauthenticated requests to the login prompt,
// preserving the requested path.
func (m *Authenticate) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authCtx, ok := FromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		if _, ok := authCtx.CurrentUser(r.Context()); !ok {
			http.Redirect(w, r, "/login?url="+url.QueryEscape(r.URL.Path), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin redirects non-admin requests away rather than rendering an
// error page.
func (m *Authenticate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authCtx, ok := FromContext(r.Context())
		if !ok {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		if _, err := authCtx.CurrentAdmin(r.Context()); err != nil {
			m.logger.Info("admin check failed", "path", r.URL.Path, "error", err.Error())
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAPIKey rejects requests whose X-API-Key header does not resolve to
// an active API user.
func (m *Authenticate) RequireAPIKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authCtx, ok := FromContext(r.Context())
		if !ok {
			unauthorized(w)
			return
		}
		if _, err := authCtx.CurrentAPIUser(r.Context(), r.Header.Get(APIKeyHeader)); err != nil {
			m.logger.Info("api key check failed", "path", r.URL.Path, "error", err.Error())
			unauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"api key invalid"}`))
}

// NewContext returns ctx carrying the auth context.
func NewContext(ctx context.Context, authCtx *auth.Context) context.Context {
	return context.WithValue(ctx, authContextKey, authCtx)
}

// FromContext retrieves the auth context attached by Handler.
func FromContext(ctx context.Context) (*auth.Context, bool) {
	authCtx, ok := ctx.Value(authContextKey).(*auth.Context)
	return authCtx, ok
}
