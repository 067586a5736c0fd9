package commands

import (
	"context"
	"time"

	"campusbook/internal/domain/booking"

	"github.com/google/uuid"
)

// OverlapCounter is the single read the conflict engine needs from storage.
// shared.BookingRepository satisfies it, so the check runs against whatever
// transaction the caller is inside.
type OverlapCounter interface {
	CountActiveOverlapping(ctx context.Context, resourceID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) (int64, error)
}

// ConflictChecker decides whether granting a candidate interval would exceed
// the resource's concurrent-use capacity. It never mutates state; the caller
// is responsible for making the check-then-write atomic (see UnitOfWork).
type ConflictChecker interface {
	// HasConflict returns true iff the number of active bookings overlapping
	// slot, excluding excludeBookingID when set, is already at capacity.
	HasConflict(ctx context.Context, counter OverlapCounter, resourceID uuid.UUID, slot booking.TimeSlot, capacity int32, excludeBookingID *uuid.UUID) (bool, error)
}

type conflictChecker struct{}

func NewConflictChecker() ConflictChecker {
	return &conflictChecker{}
}

func (c *conflictChecker) HasConflict(
	ctx context.Context,
	counter OverlapCounter,
	resourceID uuid.UUID,
	slot booking.TimeSlot,
	capacity int32,
	excludeBookingID *uuid.UUID,
) (bool, error) {
	count, err := counter.CountActiveOverlapping(ctx, resourceID, slot.Start(), slot.End(), excludeBookingID)
	if err != nil {
		return false, err
	}
	return count >= int64(capacity), nil
}
