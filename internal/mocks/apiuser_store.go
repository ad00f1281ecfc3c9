package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/edeboer/warehoused/internal/model"
)

// APIUserStore is a mock implementation of model.APIUserStore.
type APIUserStore struct {
	mock.Mock
}

func (m *APIUserStore) GetByKey(ctx context.Context, key string) (model.APIUser, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(model.APIUser), args.Error(1)
}

func (m *APIUserStore) List(ctx context.Context) ([]model.APIUser, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.APIUser), args.Error(1)
}

func (m *APIUserStore) Create(ctx context.Context, apiUser model.APIUser) (model.APIUser, error) {
	args := m.Called(ctx, apiUser)
	return args.Get(0).(model.APIUser), args.Error(1)
}

func (m *APIUserStore) Save(ctx context.Context, apiUser model.APIUser) error {
	args := m.Called(ctx, apiUser)
	return args.Error(0)
}

func (m *APIUserStore) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
