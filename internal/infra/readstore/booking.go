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

const bookingViewColumns = `
	b.id, b.resource_id, r.name, r.kind, b.user_id, u.name,
	b.start_time, b.end_time, b.status, b.note, b.created_at, b.updated_at
`

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

var _ queries.BookingReadStore = (*BookingReadStore)(nil)

func (s *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN resources r ON r.id = b.resource_id
		JOIN users u ON u.id = b.user_id
		WHERE b.id = $1
	`
	view, err := scanBookingView(s.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking by ID", err)
	}
	return view, nil
}

// List applies the optional filters. From/To use the same half-open overlap
// predicate as the conflict count, so a booking ending exactly at From is
// excluded.
func (s *BookingReadStore) List(ctx context.Context, filter queries.BookingFilter) ([]*queries.BookingView, error) {
	var (
		conditions []string
		args       []any
	)

	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.UserID != nil {
		addCondition("b.user_id = $%d", *filter.UserID)
	}
	if filter.ResourceID != nil {
		addCondition("b.resource_id = $%d", *filter.ResourceID)
	}
	if filter.From != nil {
		addCondition("b.end_time > $%d", *filter.From)
	}
	if filter.To != nil {
		addCondition("b.start_time < $%d", *filter.To)
	}

	query := `
		SELECT ` + bookingViewColumns + `
		FROM bookings b
		JOIN resources r ON r.id = b.resource_id
		JOIN users u ON u.id = b.user_id
	`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY b.start_time, b.id"

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to list bookings", err)
	}
	defer rows.Close()

	var result []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking row", err)
		}
		result = append(result, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate booking rows", err)
	}

	return result, nil
}

func scanBookingView(row pgx.Row) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID, &view.ResourceID, &view.ResourceName, &view.ResourceKind,
		&view.UserID, &view.UserName,
		&view.StartTime, &view.EndTime, &view.Status, &view.Note,
		&view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
