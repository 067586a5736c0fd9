package repository

import (
	"context"

	"campusbook/internal/domain/user"
	"campusbook/internal/infra/db"
	"campusbook/internal/usecase/shared"
)

type UserRepository struct {
	dbtx db.DBTX
}

func NewUserRepository(dbtx db.DBTX) *UserRepository {
	return &UserRepository{dbtx: dbtx}
}

var _ shared.UserRepository = (*UserRepository)(nil)

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	const query = `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
	`
	_, err := r.dbtx.Exec(ctx, query,
		u.ID(), u.Name(), u.Email().String(), u.PasswordHash(), u.Role().String(),
	)
	if err != nil {
		return wrapPgErr("failed to insert user", err)
	}
	return nil
}
