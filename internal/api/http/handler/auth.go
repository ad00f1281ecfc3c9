package handler

import (
	"net/http"
	"strings"

	"github.com/edeboer/warehoused/internal/api/http/middleware"
	"github.com/edeboer/warehoused/internal/logger"
	"github.com/edeboer/warehoused/internal/model"
	"github.com/edeboer/warehoused/internal/service"
)

// Auth serves the login boundary: establishing and tearing down sessions and
// reporting the current principal.
type Auth struct {
	account    *service.Account
	cookieName string
	logger     *logger.Logger
}

// NewAuth creates the auth handler.
func NewAuth(account *service.Account, cookieName string, logger *logger.Logger) *Auth {
	return &Auth{
		account:    account,
		cookieName: cookieName,
		logger:     logger,
	}
}

// Login handles an email/password form post. On success it sets the session
// cookie and redirects with 303 so the browser GETs the next page instead of
// re-posting credentials.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")

	// Only same-site relative targets are followed after login.
	target := r.PostFormValue("url")
	if !strings.HasPrefix(target, "/") {
		target = "/"
	}

	user, err := h.account.Login(r.Context(), email, password)
	if err != nil {
		writeError(w, err)
		return
	}

	session, err := h.account.CreateSession(r.Context(), user.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// Logout deletes the session behind the cookie. Logging out twice is fine.
func (h *Auth) Logout(w http.ResponseWriter, r *http.Request) {
	var token string
	if cookie, err := r.Cookie(h.cookieName); err == nil {
		token = cookie.Value
	}

	if err := h.account.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// Me reports the current principal.
func (h *Auth) Me(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := middleware.FromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not logged in"})
		return
	}

	user, ok := authCtx.CurrentUser(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "not logged in"})
		return
	}

	writeJSON(w, http.StatusOK, userPayload(user))
}

func userPayload(user model.User) map[string]any {
	return map[string]any{
		"id":     user.ID,
		"email":  user.Email,
		"active": user.Active,
		"admin":  user.Admin,
	}
}
