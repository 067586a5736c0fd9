package queries

import (
	"context"
	"time"

	"campusbook/internal/infra"
	"campusbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrBookingNotFound  = errs.New("booking not found")
	ErrResourceNotFound = errs.New("resource not found")
)

type BookingView struct {
	ID           uuid.UUID
	ResourceID   uuid.UUID
	ResourceName string
	ResourceKind string
	UserID       uuid.UUID
	UserName     string
	StartTime    time.Time
	EndTime      time.Time
	Status       string
	Note         *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BookingFilter narrows List results. From/To select bookings whose interval
// overlaps [From, To) under the same half-open semantics the conflict engine
// uses.
type BookingFilter struct {
	UserID     *uuid.UUID
	ResourceID *uuid.UUID
	From       *time.Time
	To         *time.Time
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	List(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
}

type BookingQueries interface {
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error)
	ListBookings(ctx context.Context, filter BookingFilter) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	readStore BookingReadStore
}

func NewBookingQueries(readStore BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{readStore: readStore}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, errs.Wrap(err, "failed to find booking")
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListBookings(ctx context.Context, filter BookingFilter) ([]*BookingView, error) {
	views, err := q.readStore.List(ctx, filter)
	if err != nil {
		return nil, errs.Wrap(err, "failed to list bookings")
	}
	return views, nil
}
