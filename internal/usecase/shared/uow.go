package shared

import (
	"context"
	"time"

	"campusbook/internal/domain/booking"
	"campusbook/internal/domain/resource"
	"campusbook/internal/domain/user"
	"campusbook/internal/infra/db"

	"github.com/google/uuid"
)

// UnitOfWork brackets the conflict check and the booking write into one
// transaction. Whatever runs inside Within sees a single consistent snapshot
// and commits atomically, or not at all.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}

type Tx interface {
	Bookings() BookingRepository
	Resources() ResourceRepository
	Users() UserRepository
	DB() db.DBTX
}

// BookingSnapshot is the write-side view of a stored booking.
type BookingSnapshot struct {
	ID         uuid.UUID
	ResourceID uuid.UUID
	UserID     uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Status     booking.Status
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*BookingSnapshot, error)
	UpdateInterval(ctx context.Context, id uuid.UUID, start, end time.Time) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) error
	// CountActiveOverlapping counts pending/confirmed bookings on the resource
	// whose half-open interval overlaps [start, end), excluding excludeID when
	// non-nil.
	CountActiveOverlapping(ctx context.Context, resourceID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error)
	// DeleteByResource removes all bookings referencing the resource.
	DeleteByResource(ctx context.Context, resourceID uuid.UUID) (int64, error)
}

type ResourceRepository interface {
	Create(ctx context.Context, r *resource.Resource) error
	// FindForUpdate loads the resource row with a row-level lock, serializing
	// concurrent booking writes on the same resource for the remainder of the
	// transaction.
	FindForUpdate(ctx context.Context, id uuid.UUID) (*resource.Resource, error)
	Update(ctx context.Context, r *resource.Resource) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
}
