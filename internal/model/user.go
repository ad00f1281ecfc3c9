package model

import (
	"context"
	"time"
)

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	IsFirstUser(ctx context.Context) (bool, error)
	Create(ctx context.Context, user User) (User, error)
	Save(ctx context.Context, user User) error
	Delete(ctx context.Context, id int64) error
}

// User represents a stored user capable of logging in.
// Active and Admin are genuine booleans; how the store serializes them is a
// storage-layer concern.
type User struct {
	ID        int64
	Email     string
	Password  []byte
	Active    bool
	Admin     bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PrincipalID returns the stable identifier of the user.
func (u User) PrincipalID() int64 {
	return u.ID
}
