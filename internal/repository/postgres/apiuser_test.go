package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPIUserRepository(t *testing.T) {
	db := &Connection{}
	repo := NewAPIUserRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}
