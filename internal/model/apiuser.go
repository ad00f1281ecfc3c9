package model

import (
	"context"
	"time"
)

// APIUserStore defines persistence operations for API key holders.
type APIUserStore interface {
	GetByKey(ctx context.Context, key string) (APIUser, error)
	List(ctx context.Context) ([]APIUser, error)
	Create(ctx context.Context, apiUser APIUser) (APIUser, error)
	Save(ctx context.Context, apiUser APIUser) error
	Delete(ctx context.Context, id int64) error
}

// APIUser represents a principal identified by a static key instead of a
// session. CollectionFilter optionally restricts which collections the key
// may read.
type APIUser struct {
	ID               int64
	Name             string
	Key              string
	Active           bool
	CollectionFilter string
	CreatedAt        time.Time
}

// PrincipalID returns the stable identifier of the API user.
func (u APIUser) PrincipalID() int64 {
	return u.ID
}
