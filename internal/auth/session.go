package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/edeboer/warehoused/internal/model"
)

// SessionHandle wraps the raw session cookie extracted from a request. It
// either resolves to a stored user identifier or invalidates itself: a
// structurally broken session is deleted, not retried.
type SessionHandle struct {
	sessions    model.SessionStore
	raw         string
	invalidated bool
}

// NewSessionHandle wraps the raw cookie value around the given session store.
func NewSessionHandle(sessions model.SessionStore, rawCookie string) *SessionHandle {
	return &SessionHandle{
		sessions: sessions,
		raw:      rawCookie,
	}
}

// Resolve returns the user identifier the session points at. Any parse or
// load failure deletes the underlying session record and fails with
// ErrInvalidSessionCookie.
func (h *SessionHandle) Resolve(ctx context.Context) (int64, error) {
	token, err := uuid.Parse(h.raw)
	if err != nil {
		if invErr := h.Invalidate(ctx); invErr != nil {
			return 0, fmt.Errorf("failed to invalidate session: %w", invErr)
		}
		return 0, ErrInvalidSessionCookie
	}

	session, err := h.sessions.Get(ctx, token.String())
	if err != nil || session.Expired(time.Now()) {
		if invErr := h.Invalidate(ctx); invErr != nil {
			return 0, fmt.Errorf("failed to invalidate session: %w", invErr)
		}
		return 0, ErrInvalidSessionCookie
	}

	return session.UserID, nil
}

// Invalidate deletes the underlying session record. Invalidating twice is a
// no-op, not an error.
func (h *SessionHandle) Invalidate(ctx context.Context) error {
	if h.invalidated {
		return nil
	}
	h.invalidated = true

	if err := h.sessions.Delete(ctx, h.raw); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
