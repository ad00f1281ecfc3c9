//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/edeboer/warehoused/internal/model"
	repo "github.com/edeboer/warehoused/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "warehoused_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/warehoused_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func newUser(email string) model.User {
	now := time.Now()
	return model.User{
		Email:     email,
		Password:  []byte("$2a$10$fakehashfakehashfakehash"),
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)

	first, err := ur.IsFirstUser(ctx)
	require.NoError(t, err)
	require.True(t, first)

	saved, err := ur.Create(ctx, newUser("user@example.com"))
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	first, err = ur.IsFirstUser(ctx)
	require.NoError(t, err)
	require.False(t, first)

	byEmail, err := ur.GetByEmail(ctx, "user@example.com")
	require.NoError(t, err)
	require.Equal(t, saved.ID, byEmail.ID)

	byID, err := ur.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.Equal(t, "user@example.com", byID.Email)

	_, err = ur.Create(ctx, newUser("user@example.com"))
	require.ErrorIs(t, err, model.ErrDuplicate)

	saved.Admin = true
	saved.UpdatedAt = time.Now()
	require.NoError(t, ur.Save(ctx, saved))

	byID, err = ur.GetByID(ctx, saved.ID)
	require.NoError(t, err)
	require.True(t, byID.Admin)

	missing := saved
	missing.ID = saved.ID + 1000
	require.ErrorIs(t, ur.Save(ctx, missing), model.ErrNotFound)

	users, err := ur.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, users)

	require.NoError(t, ur.Delete(ctx, saved.ID))
	_, err = ur.GetByID(ctx, saved.ID)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestSessionRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ur := repo.NewUserRepository(conn)
	sr := repo.NewSessionRepository(conn)

	owner, err := ur.Create(ctx, newUser("session-owner@example.com"))
	require.NoError(t, err)

	now := time.Now()
	session := model.Session{
		Token:     uuid.NewString(),
		UserID:    owner.ID,
		CreatedAt: now,
		ExpiresAt: now.Add(model.SessionDuration),
	}
	require.NoError(t, sr.Create(ctx, session))

	got, err := sr.Get(ctx, session.Token)
	require.NoError(t, err)
	require.Equal(t, owner.ID, got.UserID)

	_, err = sr.Get(ctx, uuid.NewString())
	require.ErrorIs(t, err, model.ErrNotFound)

	require.NoError(t, sr.Delete(ctx, session.Token))
	_, err = sr.Get(ctx, session.Token)
	require.ErrorIs(t, err, model.ErrNotFound)

	// deleting the owner cascades to their sessions
	require.NoError(t, sr.Create(ctx, session))
	require.NoError(t, ur.Delete(ctx, owner.ID))
	_, err = sr.Get(ctx, session.Token)
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestAPIUserRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ar := repo.NewAPIUserRepository(conn)

	apiUser := model.APIUser{
		Name:      "scanner",
		Key:       uuid.NewString(),
		Active:    true,
		CreatedAt: time.Now(),
	}
	saved, err := ar.Create(ctx, apiUser)
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	byKey, err := ar.GetByKey(ctx, apiUser.Key)
	require.NoError(t, err)
	require.Equal(t, "scanner", byKey.Name)

	_, err = ar.GetByKey(ctx, uuid.NewString())
	require.ErrorIs(t, err, model.ErrNotFound)

	dup := apiUser
	dup.Key = uuid.NewString()
	_, err = ar.Create(ctx, dup)
	require.ErrorIs(t, err, model.ErrDuplicate)

	saved.Active = false
	require.NoError(t, ar.Save(ctx, saved))
	byKey, err = ar.GetByKey(ctx, saved.Key)
	require.NoError(t, err)
	require.False(t, byKey.Active)

	list, err := ar.List(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, list)

	require.NoError(t, ar.Delete(ctx, saved.ID))
	_, err = ar.GetByKey(ctx, saved.Key)
	require.ErrorIs(t, err, model.ErrNotFound)
}
