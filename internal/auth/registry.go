package auth

import (
	"fmt"

	"github.com/edeboer/warehoused/internal/model"
)

// Registry maps authenticator kinds to constructors and guarantees at most
// one constructed instance per kind for its lifetime. A registry is built
// fresh per request, so "per lifetime" means "per request".
type Registry struct {
	constructors map[Kind]Constructor
	instances    map[Kind]Authenticator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		constructors: make(map[Kind]Constructor),
		instances:    make(map[Kind]Authenticator),
	}
}

// Register binds a constructor to a kind, replacing any previous binding.
func (r *Registry) Register(kind Kind, build Constructor) {
	r.constructors[kind] = build
}

// Get returns the authenticator for a kind, constructing it on first call.
// Input supplied on later calls for the same kind is ignored: callers must
// not assume per-call parameterization after the first invocation.
func (r *Registry) Get(kind Kind, in Input) (Authenticator, error) {
	if instance, ok := r.instances[kind]; ok {
		return instance, nil
	}

	build, ok := r.constructors[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	instance := build(in)
	r.instances[kind] = instance
	return instance, nil
}

// NewDefaultRegistry returns a registry with the standard kinds registered
// against the given stores.
func NewDefaultRegistry(users model.UserStore, sessions model.SessionStore, apiUsers model.APIUserStore) *Registry {
	r := NewRegistry()
	r.Register(KindLogin, func(in Input) Authenticator {
		return NewLoginAuthenticator(NewSessionHandle(sessions, in.Cookie), users)
	})
	r.Register(KindAdmin, func(in Input) Authenticator {
		return NewAdminAuthenticator(in.User)
	})
	r.Register(KindAPIKey, func(in Input) Authenticator {
		return NewAPIKeyAuthenticator(apiUsers, in.Key)
	})
	return r
}
