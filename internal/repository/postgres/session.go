package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edeboer/warehoused/internal/model"
)

var _ model.SessionStore = (*SessionRepository)(nil)

type SessionRepository struct {
	db *Connection
}

func NewSessionRepository(db *Connection) *SessionRepository {
	return &SessionRepository{
		db: db,
	}
}

func (r *SessionRepository) Get(ctx context.Context, token string) (model.Session, error) {
	var session model.Session
	query := `SELECT token, user_id, created_at, expires_at
			  FROM sessions WHERE token = $1`

	err := r.db.QueryRow(ctx, query, token).Scan(
		&session.Token, &session.UserID, &session.CreatedAt, &session.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Session{}, model.ErrNotFound
		}
		return model.Session{}, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

func (r *SessionRepository) Create(ctx context.Context, session model.Session) error {
	query := `INSERT INTO sessions (token, user_id, created_at, expires_at)
			  VALUES ($1, $2, $3, $4)`

	if _, err := r.db.Exec(ctx, query,
		session.Token, session.UserID, session.CreatedAt, session.ExpiresAt,
	); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// Delete removes the session with the given token. Deleting an absent token
// is a no-op.
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
