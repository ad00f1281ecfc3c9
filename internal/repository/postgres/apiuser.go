package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/edeboer/warehoused/internal/model"
)

var _ model.APIUserStore = (*APIUserRepository)(nil)

type APIUserRepository struct {
	db *Connection
}

func NewAPIUserRepository(db *Connection) *APIUserRepository {
	return &APIUserRepository{
		db: db,
	}
}

func (r *APIUserRepository) GetByKey(ctx context.Context, key string) (model.APIUser, error) {
	var apiUser model.APIUser
	query := `SELECT id, name, key, active, collection_filter, created_at
			  FROM api_users WHERE key = $1`

	err := r.db.QueryRow(ctx, query, key).Scan(
		&apiUser.ID, &apiUser.Name, &apiUser.Key, &apiUser.Active,
		&apiUser.CollectionFilter, &apiUser.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.APIUser{}, model.ErrNotFound
		}
		return model.APIUser{}, fmt.Errorf("failed to get api user by key: %w", err)
	}

	return apiUser, nil
}

func (r *APIUserRepository) List(ctx context.Context) ([]model.APIUser, error) {
	query := `SELECT id, name, key, active, collection_filter, created_at
			  FROM api_users ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list api users: %w", err)
	}
	defer rows.Close()

	var apiUsers []model.APIUser
	for rows.Next() {
		var apiUser model.APIUser
		if err := rows.Scan(
			&apiUser.ID, &apiUser.Name, &apiUser.Key, &apiUser.Active,
			&apiUser.CollectionFilter, &apiUser.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan api user: %w", err)
		}
		apiUsers = append(apiUsers, apiUser)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate api users: %w", err)
	}

	return apiUsers, nil
}

func (r *APIUserRepository) Create(ctx context.Context, apiUser model.APIUser) (model.APIUser, error) {
	query := `INSERT INTO api_users (name, key, active, collection_filter, created_at)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, name, key, active, collection_filter, created_at`

	var savedAPIUser model.APIUser
	err := r.db.QueryRow(ctx, query,
		apiUser.Name, apiUser.Key, apiUser.Active, apiUser.CollectionFilter, apiUser.CreatedAt,
	).Scan(
		&savedAPIUser.ID, &savedAPIUser.Name, &savedAPIUser.Key, &savedAPIUser.Active,
		&savedAPIUser.CollectionFilter, &savedAPIUser.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.APIUser{}, model.ErrDuplicate
		}
		return model.APIUser{}, fmt.Errorf("failed to create api user: %w", err)
	}

	return savedAPIUser, nil
}

func (r *APIUserRepository) Save(ctx context.Context, apiUser model.APIUser) error {
	query := `UPDATE api_users SET name = $2, active = $3, collection_filter = $4
			  WHERE id = $1`

	tag, err := r.db.Exec(ctx, query,
		apiUser.ID, apiUser.Name, apiUser.Active, apiUser.CollectionFilter,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return model.ErrDuplicate
		}
		return fmt.Errorf("failed to save api user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *APIUserRepository) Delete(ctx context.Context, id int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM api_users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete api user: %w", err)
	}
	return nil
}
