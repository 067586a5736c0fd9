package queries

import (
	"context"
	"time"

	"campusbook/internal/infra"
	"campusbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUserNotFound = errs.New("user not found")

type UserAccountView struct {
	ID           uuid.UUID
	Name         string
	Email        string
	Role         string
	PasswordHash string
	CreatedAt    time.Time
}

type UserReadStore interface {
	FindByEmail(ctx context.Context, email string) (*UserAccountView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserAccountView, error)
}

type UserQueries interface {
	GetUser(ctx context.Context, id uuid.UUID) (*UserAccountView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{readStore: readStore}
}

func (q *userQueriesImpl) GetUser(ctx context.Context, id uuid.UUID) (*UserAccountView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, errs.Wrap(err, "failed to find user")
	}
	return view, nil
}
