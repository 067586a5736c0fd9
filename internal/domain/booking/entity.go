package booking

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotActive     = errors.New("booking is not active")
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Booking references exactly one resource and one requester. Only bookings in
// an active status (pending, confirmed) count toward the resource's capacity.
type Booking struct {
	id         uuid.UUID
	resourceID uuid.UUID
	userID     uuid.UUID
	timeSlot   TimeSlot
	status     Status
	note       Note
	createdAt  time.Time
	updatedAt  time.Time
}

// NewBooking creates a booking in the default confirmed status.
func NewBooking(resourceID, userID uuid.UUID, slot TimeSlot, note Note) *Booking {
	return &Booking{
		id:         uuid.New(),
		resourceID: resourceID,
		userID:     userID,
		timeSlot:   slot,
		status:     StatusConfirmed,
		note:       note,
	}
}

func ReconstructBooking(
	id, resourceID, userID uuid.UUID,
	slot TimeSlot,
	status Status,
	note Note,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:         id,
		resourceID: resourceID,
		userID:     userID,
		timeSlot:   slot,
		status:     status,
		note:       note,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (b *Booking) IsActive() bool {
	return b.status.IsActive()
}

// Reschedule replaces the interval of an active booking.
func (b *Booking) Reschedule(slot TimeSlot) error {
	if !b.IsActive() {
		return ErrNotActive
	}
	b.timeSlot = slot
	return nil
}

func (b *Booking) Cancel() error {
	if !b.IsActive() {
		return ErrNotActive
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) Complete() error {
	if !b.IsActive() {
		return ErrNotActive
	}
	b.status = StatusCompleted
	return nil
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) ResourceID() uuid.UUID { return b.resourceID }
func (b *Booking) UserID() uuid.UUID     { return b.userID }
func (b *Booking) TimeSlot() TimeSlot    { return b.timeSlot }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) Note() Note            { return b.note }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }
