package repository

import (
	"context"
	"errors"
	"time"

	"campusbook/internal/domain/booking"
	"campusbook/internal/infra"
	"campusbook/internal/infra/db"
	"campusbook/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgErrCodeUniqueViolation     = "23505"
	pgErrCodeForeignKeyViolation = "23503"
)

type BookingRepository struct {
	dbtx db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{dbtx: dbtx}
}

var _ shared.BookingRepository = (*BookingRepository)(nil)

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	const query = `
		INSERT INTO bookings (id, resource_id, user_id, start_time, end_time, status, note, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, ''), now(), now())
	`
	_, err := r.dbtx.Exec(ctx, query,
		b.ID(), b.ResourceID(), b.UserID(),
		b.TimeSlot().Start(), b.TimeSlot().End(),
		b.Status().String(), b.Note().String(),
	)
	if err != nil {
		return wrapPgErr("failed to insert booking", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*shared.BookingSnapshot, error) {
	const query = `
		SELECT id, resource_id, user_id, start_time, end_time, status
		FROM bookings
		WHERE id = $1
	`
	var snap shared.BookingSnapshot
	var status string
	err := r.dbtx.QueryRow(ctx, query, id).Scan(
		&snap.ID, &snap.ResourceID, &snap.UserID,
		&snap.StartTime, &snap.EndTime, &status,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr(infra.KindNotFound, "booking not found", err)
		}
		return nil, wrapPgErr("failed to find booking", err)
	}
	snap.Status = booking.Status(status)
	return &snap, nil
}

func (r *BookingRepository) UpdateInterval(ctx context.Context, id uuid.UUID, start, end time.Time) error {
	const query = `
		UPDATE bookings
		SET start_time = $2, end_time = $3, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.dbtx.Exec(ctx, query, id, start, end)
	if err != nil {
		return wrapPgErr("failed to update booking interval", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error {
	const query = `
		UPDATE bookings
		SET status = $2, updated_at = now()
		WHERE id = $1
	`
	tag, err := r.dbtx.Exec(ctx, query, id, status.String())
	if err != nil {
		return wrapPgErr("failed to update booking status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr(infra.KindNotFound, "booking not found", nil)
	}
	return nil
}

// CountActiveOverlapping implements the half-open overlap predicate:
// [s1, e1) and [s2, e2) overlap iff s1 < e2 AND e1 > s2, so back-to-back
// bookings never count against each other.
func (r *BookingRepository) CountActiveOverlapping(ctx context.Context, resourceID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM bookings
		WHERE resource_id = $1
		  AND status IN ('pending', 'confirmed')
		  AND start_time < $3
		  AND end_time > $2
		  AND ($4::uuid IS NULL OR id <> $4)
	`
	var count int64
	err := r.dbtx.QueryRow(ctx, query, resourceID, start, end, excludeID).Scan(&count)
	if err != nil {
		return 0, wrapPgErr("failed to count overlapping bookings", err)
	}
	return count, nil
}

func (r *BookingRepository) DeleteByResource(ctx context.Context, resourceID uuid.UUID) (int64, error) {
	const query = `DELETE FROM bookings WHERE resource_id = $1`
	tag, err := r.dbtx.Exec(ctx, query, resourceID)
	if err != nil {
		return 0, wrapPgErr("failed to delete bookings for resource", err)
	}
	return tag.RowsAffected(), nil
}

func wrapPgErr(msg string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrCodeUniqueViolation:
			return infra.WrapRepoErr(infra.KindDuplicateKey, msg, err)
		case pgErrCodeForeignKeyViolation:
			return infra.WrapRepoErr(infra.KindForeignKeyViolated, msg, err)
		}
	}
	return infra.WrapRepoErr(infra.KindDBFailure, msg, err)
}
