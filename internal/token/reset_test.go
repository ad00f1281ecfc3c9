package token

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/edeboer/warehoused/internal/model"
)

func testUser(id int64, passwordHash string) model.User {
	return model.User{ID: id, Email: "a@b.c", Password: []byte(passwordHash)}
}

func TestReset_GenerateVerify(t *testing.T) {
	r := NewReset("testsecret")
	user := testUser(7, "hash-one")

	tokenString, err := r.Generate(user)
	require.NoError(t, err)

	require.NoError(t, r.Verify(tokenString, user))
}

func TestReset_Verify_DifferentUser(t *testing.T) {
	r := NewReset("testsecret")

	tokenString, err := r.Generate(testUser(7, "hash-one"))
	require.NoError(t, err)

	err = r.Verify(tokenString, testUser(8, "hash-one"))
	require.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestReset_Verify_PasswordChanged(t *testing.T) {
	r := NewReset("testsecret")

	tokenString, err := r.Generate(testUser(7, "hash-one"))
	require.NoError(t, err)

	// once the password hash changes, the token stops verifying
	err = r.Verify(tokenString, testUser(7, "hash-two"))
	require.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestReset_Verify_WrongSecret(t *testing.T) {
	user := testUser(7, "hash-one")

	tokenString, err := NewReset("secret-one").Generate(user)
	require.NoError(t, err)

	err = NewReset("secret-two").Verify(tokenString, user)
	require.ErrorIs(t, err, ErrInvalidResetToken)
}

func TestReset_Verify_Garbage(t *testing.T) {
	r := NewReset("testsecret")

	err := r.Verify("not-a-token", testUser(7, "hash-one"))
	require.ErrorIs(t, err, ErrInvalidResetToken)
}
