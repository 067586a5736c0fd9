package readstore

import (
	"context"
	"errors"

	"campusbook/internal/infra"
	"campusbook/internal/infra/db"
	"campusbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

var _ queries.UserReadStore = (*UserReadStore)(nil)

func (s *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.UserAccountView, error) {
	const query = `
		SELECT id, name, email, role, password_hash, created_at
		FROM users
		WHERE email = $1
	`
	return s.scanAccount(ctx, query, email)
}

func (s *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserAccountView, error) {
	const query = `
		SELECT id, name, email, role, password_hash, created_at
		FROM users
		WHERE id = $1
	`
	return s.scanAccount(ctx, query, id)
}

func (s *UserReadStore) scanAccount(ctx context.Context, query string, arg any) (*queries.UserAccountView, error) {
	var view queries.UserAccountView
	err := s.db.QueryRow(ctx, query, arg).Scan(
		&view.ID, &view.Name, &view.Email, &view.Role,
		&view.PasswordHash, &view.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "user not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find user", err)
	}
	return &view, nil
}
