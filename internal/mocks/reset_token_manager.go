package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/edeboer/warehoused/internal/model"
)

// ResetTokenManager is a mock implementation of model.ResetTokenManager.
type ResetTokenManager struct {
	mock.Mock
}

func (m *ResetTokenManager) Generate(user model.User) (string, error) {
	args := m.Called(user)
	return args.String(0), args.Error(1)
}

func (m *ResetTokenManager) Verify(token string, user model.User) error {
	args := m.Called(token, user)
	return args.Error(0)
}
