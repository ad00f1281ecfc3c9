package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/edeboer/warehoused/internal/model"
)

// APIKeyAuthenticator resolves a caller-supplied key to an API user. There is
// no session involved, so an invalid key has no invalidation side effect; the
// single failure signal is ErrInvalidAPIKey, replayed on later calls.
type APIKeyAuthenticator struct {
	apiUsers model.APIUserStore
	key      string
	apiUser  *model.APIUser
	failed   bool
}

// NewAPIKeyAuthenticator builds an API key authenticator for the given key.
func NewAPIKeyAuthenticator(apiUsers model.APIUserStore, key string) *APIKeyAuthenticator {
	return &APIKeyAuthenticator{
		apiUsers: apiUsers,
		key:      key,
	}
}

// Authenticate looks up the API user by key, once per instance. Unknown and
// inactive keys both fail with ErrInvalidAPIKey.
func (a *APIKeyAuthenticator) Authenticate(ctx context.Context) (Principal, error) {
	if a.failed {
		return nil, ErrInvalidAPIKey
	}

	if a.apiUser == nil {
		apiUser, err := a.apiUsers.GetByKey(ctx, a.key)
		if err != nil {
			a.failed = true
			if errors.Is(err, model.ErrNotFound) {
				return nil, ErrInvalidAPIKey
			}
			return nil, fmt.Errorf("failed to get api user by key: %w", err)
		}
		if !apiUser.Active {
			a.failed = true
			return nil, ErrInvalidAPIKey
		}
		a.apiUser = &apiUser
	}

	return *a.apiUser, nil
}
