package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"campusbook/internal/domain/resource"
	"campusbook/internal/infra"
	"campusbook/internal/infra/db"
	"campusbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ResourceRepository struct {
	dbtx db.DBTX
}

func NewResourceRepository(dbtx db.DBTX) *ResourceRepository {
	return &ResourceRepository{dbtx: dbtx}
}

var _ shared.ResourceRepository = (*ResourceRepository)(nil)

func (r *ResourceRepository) Create(ctx context.Context, res *resource.Resource) error {
	details, err := marshalDetails(res.Details())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode resource details", err)
	}

	const query = `
		INSERT INTO resources (id, name, kind, description, capacity, is_active, details, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
	`
	_, err = r.dbtx.Exec(ctx, query,
		res.ID(), res.Name(), res.Kind().String(), res.Description(),
		res.Capacity(), res.IsActive(), details,
	)
	if err != nil {
		return wrapPgErr("failed to insert resource", err)
	}
	return nil
}

// FindForUpdate locks the resource row for the rest of the transaction. Every
// booking write path goes through this lock, which is what serializes the
// conflict count and the insert on the same resource.
func (r *ResourceRepository) FindForUpdate(ctx context.Context, id uuid.UUID) (*resource.Resource, error) {
	const query = `
		SELECT id, name, kind, description, capacity, is_active, details, created_at, updated_at
		FROM resources
		WHERE id = $1
		FOR UPDATE
	`
	return r.scanResource(r.dbtx.QueryRow(ctx, query, id))
}

func (r *ResourceRepository) Update(ctx context.Context, res *resource.Resource) error {
	details, err := marshalDetails(res.Details())
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to encode resource details", err)
	}

	const query = `
		UPDATE resources
		SET name = $2, description = $3, capacity = $4, is_active = $5, details = $6, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.dbtx.Exec(ctx, query,
		res.ID(), res.Name(), res.Description(), res.Capacity(), res.IsActive(), details,
	)
	if err != nil {
		return wrapPgErr("failed to update resource", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "resource not found", nil)
	}
	return nil
}

func (r *ResourceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM resources WHERE id = $1`
	tag, err := r.dbtx.Exec(ctx, query, id)
	if err != nil {
		return wrapPgErr("failed to delete resource", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "resource not found", nil)
	}
	return nil
}

func (r *ResourceRepository) scanResource(row pgx.Row) (*resource.Resource, error) {
	var (
		id          uuid.UUID
		name        string
		kindStr     string
		description string
		capacity    int32
		isActive    bool
		rawDetails  []byte
		createdAt   time.Time
		updatedAt   time.Time
	)
	err := row.Scan(&id, &name, &kindStr, &description, &capacity, &isActive, &rawDetails, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "resource not found", err)
		}
		return nil, wrapPgErr("failed to scan resource", err)
	}

	kind, err := resource.NewKind(kindStr)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored resource kind is invalid", err)
	}

	details, err := resource.UnmarshalDetails(kind, rawDetails)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "stored resource details are invalid", err)
	}

	return resource.ReconstructResource(id, name, kind, description, capacity, isActive, details, createdAt, updatedAt), nil
}

func marshalDetails(details resource.Details) ([]byte, error) {
	if details == nil {
		return nil, nil
	}
	return json.Marshal(details)
}
