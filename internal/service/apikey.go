package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/edeboer/warehoused/internal/logger"
	"github.com/edeboer/warehoused/internal/model"
)

// APIKey manages API key holders. Keys are random UUIDs generated here;
// duplicate names surface model.ErrDuplicate from the store.
type APIKey struct {
	apiUsers model.APIUserStore
	logger   *logger.Logger
}

// NewAPIKey creates the API key service.
func NewAPIKey(apiUsers model.APIUserStore, logger *logger.Logger) *APIKey {
	return &APIKey{
		apiUsers: apiUsers,
		logger:   logger,
	}
}

// Create registers a new API key under the given display name and returns
// it with the generated key, the only time the key is handed out.
func (s *APIKey) Create(ctx context.Context, name string) (model.APIUser, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.APIUser{}, model.ErrInvalidName
	}

	apiUser, err := s.apiUsers.Create(ctx, model.APIUser{
		Name:      name,
		Key:       uuid.NewString(),
		Active:    true,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return model.APIUser{}, fmt.Errorf("failed to create api user: %w", err)
	}

	s.logger.Info("APIKey service: key created", "name", apiUser.Name, "api_user_id", apiUser.ID)
	return apiUser, nil
}

// List returns all API keys.
func (s *APIKey) List(ctx context.Context) ([]model.APIUser, error) {
	apiUsers, err := s.apiUsers.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list api users: %w", err)
	}
	return apiUsers, nil
}

// Update persists changes to name, collection filter and active flag.
func (s *APIKey) Update(ctx context.Context, apiUser model.APIUser) error {
	if strings.TrimSpace(apiUser.Name) == "" {
		return model.ErrInvalidName
	}
	if err := s.apiUsers.Save(ctx, apiUser); err != nil {
		return fmt.Errorf("failed to save api user: %w", err)
	}
	return nil
}

// Delete removes an API key.
func (s *APIKey) Delete(ctx context.Context, id int64) error {
	if err := s.apiUsers.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete api user: %w", err)
	}
	return nil
}
