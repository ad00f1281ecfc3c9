package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminAuthenticator_NotAdmin(t *testing.T) {
	ctx := context.Background()

	a := NewAdminAuthenticator(activeUser(3))

	_, err := a.Authenticate(ctx)
	require.ErrorIs(t, err, ErrNotAdmin)
}

func TestAdminAuthenticator_Admin_Memoized(t *testing.T) {
	ctx := context.Background()
	admin := activeUser(1)
	admin.Admin = true

	a := NewAdminAuthenticator(admin)

	principal, err := a.Authenticate(ctx)
	require.NoError(t, err)
	assert.Equal(t, admin, principal)

	again, err := a.Authenticate(ctx)
	require.NoError(t, err)
	assert.Equal(t, principal, again)
}
