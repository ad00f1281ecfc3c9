package model

import (
	"context"
	"time"
)

// SessionDuration is the TTL for login sessions.
const SessionDuration = 30 * 24 * time.Hour

// SessionStore persists login sessions keyed by their opaque token.
// Delete of an absent token is a no-op.
type SessionStore interface {
	Get(ctx context.Context, token string) (Session, error)
	Create(ctx context.Context, session Session) error
	Delete(ctx context.Context, token string) error
}

// Session represents a client-held opaque credential established at login.
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session has passed its expiry.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && now.After(s.ExpiresAt)
}
