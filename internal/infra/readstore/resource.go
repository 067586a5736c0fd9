package readstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"campusbook/internal/infra"
	"campusbook/internal/infra/db"
	"campusbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const resourceViewColumns = `
	id, name, kind, description, capacity, is_active, details, created_at, updated_at
`

type ResourceReadStore struct {
	db db.DBTX
}

func NewResourceReadStore(dbtx db.DBTX) *ResourceReadStore {
	return &ResourceReadStore{db: dbtx}
}

var _ queries.ResourceReadStore = (*ResourceReadStore)(nil)

func (s *ResourceReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ResourceView, error) {
	query := `
		SELECT ` + resourceViewColumns + `
		FROM resources
		WHERE id = $1
	`
	view, err := scanResourceView(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "resource not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find resource by ID", err)
	}
	return view, nil
}

// List only returns active resources; deactivated ones stay queryable by ID
// for admins but disappear from browsing.
func (s *ResourceReadStore) List(ctx context.Context, filter queries.ResourceFilter) ([]*queries.ResourceView, error) {
	conditions := []string{"is_active = TRUE"}
	var args []any

	if filter.Kind != nil {
		args = append(args, *filter.Kind)
		conditions = append(conditions, fmt.Sprintf("kind = $%d", len(args)))
	}
	if filter.Search != nil {
		args = append(args, "%"+*filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR description ILIKE $%d)", len(args), len(args)))
	}

	query := `
		SELECT ` + resourceViewColumns + `
		FROM resources
		WHERE ` + strings.Join(conditions, " AND ") + `
		ORDER BY name, id
	`

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list resources", err)
	}
	defer rows.Close()

	var result []*queries.ResourceView
	for rows.Next() {
		view, err := scanResourceView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan resource row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate resource rows", err)
	}

	return result, nil
}

func scanResourceView(row pgx.Row) (*queries.ResourceView, error) {
	var view queries.ResourceView
	err := row.Scan(
		&view.ID, &view.Name, &view.Kind, &view.Description,
		&view.Capacity, &view.IsActive, &view.Details,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
