package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/edeboer/warehoused/internal/mocks"
	"github.com/edeboer/warehoused/internal/model"
	"github.com/edeboer/warehoused/internal/testutil"
	"github.com/edeboer/warehoused/internal/token"
)

func hashedUser(t *testing.T, id int64, email, password string) model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return model.User{ID: id, Email: email, Password: hash, Active: true}
}

func TestAccount_Login_Success(t *testing.T) {
	ctx := context.Background()
	user := hashedUser(t, 7, "a@b.c", "letmein123")

	userStore := &mocks.UserStore{}
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(user, nil)

	s := NewAccount(userStore, &mocks.SessionStore{}, &mocks.ResetTokenManager{}, testutil.MakeNoopLogger())

	got, err := s.Login(ctx, "a@b.c", "letmein123")
	require.NoError(t, err)
	assert.Equal(t, user, got)
}

func TestAccount_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	user := hashedUser(t, 7, "a@b.c", "letmein123")

	userStore := &mocks.UserStore{}
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(user, nil)

	s := NewAccount(userStore, &mocks.SessionStore{}, &mocks.ResetTokenManager{}, testutil.MakeNoopLogger())

	_, err := s.Login(ctx, "a@b.c", "wrong")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAccount_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	userStore := &mocks.UserStore{}
	userStore.On("GetByEmail", mock.Anything, "nobody@b.c").Return(model.User{}, model.ErrNotFound)

	s := NewAccount(userStore, &mocks.SessionStore{}, &mocks.ResetTokenManager{}, testutil.MakeNoopLogger())

	_, err := s.Login(ctx, "nobody@b.c", "letmein123")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAccount_Login_InactiveUser(t *testing.T) {
	ctx := context.Background()
	user := hashedUser(t, 7, "a@b.c", "letmein123")
	user.Active = false

	userStore := &mocks.UserStore{}
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(user, nil)

	s := NewAccount(userStore, &mocks.SessionStore{}, &mocks.ResetTokenManager{}, testutil.MakeNoopLogger())

	_, err := s.Login(ctx, "a@b.c", "letmein123")
	require.ErrorIs(t, err, model.ErrInvalidCredentials)
}

func TestAccount_CreateSession(t *testing.T) {
	ctx := context.Background()

	sessionStore := &mocks.SessionStore{}
	sessionStore.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := NewAccount(&mocks.UserStore{}, sessionStore, &mocks.ResetTokenManager{}, testutil.MakeNoopLogger())

	session, err := s.CreateSession(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID)
	_, err = uuid.Parse(session.Token)
	assert.NoError(t, err, "session token is an opaque uuid")
	assert.True(t, session.ExpiresAt.After(time.Now()))
}

func TestAccount_Logout_NoCookie(t *testing.T) {
	ctx := context.Background()

	sessionStore := &mocks.SessionStore{}

	s := NewAccount(&mocks.UserStore{}, sessionStore, &mocks.ResetTokenManager{}, testutil.MakeNoopLogger())

	require.NoError(t, s.Logout(ctx, ""))
	sessionStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestAccount_CreateUser_PasswordTooShort(t *testing.T) {
	ctx := context.Background()

	s := NewAccount(&mocks.UserStore{}, &mocks.SessionStore{}, &mocks.ResetTokenManager{}, testutil.MakeNoopLogger())

	_, err := s.CreateUser(ctx, "a@b.c", "short", true, false)
	require.ErrorIs(t, err, model.ErrPasswordTooShort)
}

func TestAccount_CreateUser_InvalidEmail(t *testing.T) {
	ctx := context.Background()

	s := NewAccount(&mocks.UserStore{}, &mocks.SessionStore{}, &mocks.ResetTokenManager{}, testutil.MakeNoopLogger())

	_, err := s.CreateUser(ctx, "not-an-address", "longenough", true, false)
	require.ErrorIs(t, err, model.ErrInvalidEmail)
}

func TestAccount_CreateUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()

	userStore := &mocks.UserStore{}
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrDuplicate)

	s := NewAccount(userStore, &mocks.SessionStore{}, &mocks.ResetTokenManager{}, testutil.MakeNoopLogger())

	_, err := s.CreateUser(ctx, "a@b.c", "longenough", true, false)
	require.ErrorIs(t, err, model.ErrDuplicate)
}

func TestAccount_UpdatePassword_TooShort(t *testing.T) {
	ctx := context.Background()

	s := NewAccount(&mocks.UserStore{}, &mocks.SessionStore{}, &mocks.ResetTokenManager{}, testutil.MakeNoopLogger())

	err := s.UpdatePassword(ctx, model.User{ID: 7}, "1234567")
	require.ErrorIs(t, err, model.ErrPasswordTooShort)
}

func TestAccount_DeleteUser_ProtectedFirstUser(t *testing.T) {
	ctx := context.Background()

	userStore := &mocks.UserStore{}

	s := NewAccount(userStore, &mocks.SessionStore{}, &mocks.ResetTokenManager{}, testutil.MakeNoopLogger())

	err := s.DeleteUser(ctx, 1)
	require.ErrorIs(t, err, model.ErrProtectedUser)
	userStore.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	userStore.On("Delete", mock.Anything, int64(2)).Return(nil)
	require.NoError(t, s.DeleteUser(ctx, 2))
}

func TestAccount_ResetPassword_RoundTrip(t *testing.T) {
	ctx := context.Background()
	user := hashedUser(t, 7, "a@b.c", "oldpassword")

	userStore := &mocks.UserStore{}
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(user, nil)
	userStore.On("Save", mock.Anything, mock.Anything).Return(nil)

	resetTokens := token.NewReset("testsecret")
	s := NewAccount(userStore, &mocks.SessionStore{}, resetTokens, testutil.MakeNoopLogger())

	tokenString, err := s.PasswordResetToken(ctx, "a@b.c")
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	got, err := s.ResetPassword(ctx, "a@b.c", tokenString, "newpassword")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	saved := userStore.Calls[len(userStore.Calls)-1].Arguments.Get(1).(model.User)
	assert.NoError(t, bcrypt.CompareHashAndPassword(saved.Password, []byte("newpassword")))
}

func TestAccount_ResetPassword_BadToken(t *testing.T) {
	ctx := context.Background()
	user := hashedUser(t, 7, "a@b.c", "oldpassword")

	userStore := &mocks.UserStore{}
	userStore.On("GetByEmail", mock.Anything, "a@b.c").Return(user, nil)

	resetTokens := token.NewReset("testsecret")
	s := NewAccount(userStore, &mocks.SessionStore{}, resetTokens, testutil.MakeNoopLogger())

	_, err := s.ResetPassword(ctx, "a@b.c", "bogus", "newpassword")
	require.ErrorIs(t, err, token.ErrInvalidResetToken)
}

func TestAccount_PasswordResetToken_UnknownEmail(t *testing.T) {
	ctx := context.Background()

	userStore := &mocks.UserStore{}
	userStore.On("GetByEmail", mock.Anything, "nobody@b.c").Return(model.User{}, model.ErrNotFound)

	s := NewAccount(userStore, &mocks.SessionStore{}, &mocks.ResetTokenManager{}, testutil.MakeNoopLogger())

	_, err := s.PasswordResetToken(ctx, "nobody@b.c")
	require.ErrorIs(t, err, model.ErrNotFound)
}
