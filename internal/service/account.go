package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/edeboer/warehoused/internal/logger"
	"github.com/edeboer/warehoused/internal/model"
)

const minPasswordLength = 8

// firstUserID is the protected bootstrap user created during setup.
const firstUserID = 1

// Account handles user lifecycle: login, sessions, creation, password
// updates and resets. Principal resolution itself lives in internal/auth;
// this service only mutates the records resolution reads.
type Account struct {
	users    model.UserStore
	sessions model.SessionStore
	reset    model.ResetTokenManager
	logger   *logger.Logger
}

// NewAccount creates the account service.
func NewAccount(users model.UserStore, sessions model.SessionStore, reset model.ResetTokenManager, logger *logger.Logger) *Account {
	return &Account{
		users:    users,
		sessions: sessions,
		reset:    reset,
		logger:   logger,
	}
}

// Login validates an email/password combination. Unknown email, inactive
// user and wrong password all yield ErrInvalidCredentials so the caller
// cannot probe which part was wrong.
func (s *Account) Login(ctx context.Context, email, password string) (model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			s.logger.Info("Account service: login failed", "email", email)
			return model.User{}, model.ErrInvalidCredentials
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if !user.Active {
		s.logger.Info("Account service: login for inactive user", "email", email)
		return model.User{}, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.Password, []byte(password)); err != nil {
		s.logger.Info("Account service: login failed", "email", email)
		return model.User{}, model.ErrInvalidCredentials
	}

	s.logger.Info("Account service: login successful", "email", email)
	return user, nil
}

// CreateSession establishes a session for the user and returns it so the
// transport layer can set the cookie.
func (s *Account) CreateSession(ctx context.Context, userID int64) (model.Session, error) {
	now := time.Now()
	session := model.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(model.SessionDuration),
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return model.Session{}, fmt.Errorf("failed to create session: %w", err)
	}

	return session, nil
}

// Logout deletes the session for the given token. Logging out an already
// absent session is a no-op.
func (s *Account) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CreateUser registers a new user. Duplicate email surfaces
// model.ErrDuplicate from the store.
func (s *Account) CreateUser(ctx context.Context, email, password string, active, admin bool) (model.User, error) {
	if email == "" || !strings.Contains(email, "@") {
		return model.User{}, model.ErrInvalidEmail
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return model.User{}, err
	}

	now := time.Now()
	user, err := s.users.Create(ctx, model.User{
		Email:     strings.TrimSpace(email),
		Password:  hash,
		Active:    active,
		Admin:     admin,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("Account service: user created", "email", user.Email, "user_id", user.ID)
	return user, nil
}

// UpdatePassword replaces the user's password, enforcing the length policy.
func (s *Account) UpdatePassword(ctx context.Context, user model.User, password string) error {
	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}

	user.Password = hash
	user.UpdatedAt = time.Now()
	if err := s.users.Save(ctx, user); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}

	s.logger.Info("Account service: password updated", "user_id", user.ID)
	return nil
}

// ListUsers returns all users.
func (s *Account) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// DeleteUser removes a user. The bootstrap user is protected.
func (s *Account) DeleteUser(ctx context.Context, id int64) error {
	if id == firstUserID {
		return model.ErrProtectedUser
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// IsFirstUser reports whether no user exists yet, gating the setup flow.
func (s *Account) IsFirstUser(ctx context.Context) (bool, error) {
	first, err := s.users.IsFirstUser(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check for first user: %w", err)
	}
	return first, nil
}

// PasswordResetToken computes a reset token for the user with the given
// email. The caller decides whether and how to deliver it.
func (s *Account) PasswordResetToken(ctx context.Context, email string) (string, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to get user by email: %w", err)
	}

	tokenString, err := s.reset.Generate(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate reset token: %w", err)
	}
	return tokenString, nil
}

// ResetPassword verifies a reset token and updates the password. The token
// is bound to the old password hash, so it stops verifying once used.
func (s *Account) ResetPassword(ctx context.Context, email, tokenString, password string) (model.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := s.reset.Verify(tokenString, user); err != nil {
		return model.User{}, err
	}

	if err := s.UpdatePassword(ctx, user, password); err != nil {
		return model.User{}, err
	}

	return user, nil
}

func (s *Account) hashPassword(password string) ([]byte, error) {
	if len(password) < minPasswordLength {
		return nil, model.ErrPasswordTooShort
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return hash, nil
}
