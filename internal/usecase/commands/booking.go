package commands

import (
	"context"
	"time"

	"campusbook/internal/domain/booking"
	"campusbook/internal/domain/resource"
	"campusbook/internal/domain/user"
	"campusbook/internal/infra"
	"campusbook/internal/pkg/errs"
	"campusbook/internal/usecase/queries"
	"campusbook/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidInterval     = errs.New("invalid interval")
	ErrResourceNotFound    = errs.New("resource not found")
	ErrResourceUnavailable = errs.New("resource is not bookable")
	ErrCapacityExceeded    = errs.New("resource capacity exceeded for this time slot")
	ErrBookingNotFound     = errs.New("booking not found")
	ErrBookingNotActive    = errs.New("booking is not active")
	ErrForbidden           = errs.New("not allowed to modify this booking")
	ErrDomainValidation    = errs.New("domain validation error")
	ErrStorageUnavailable  = errs.New("storage unavailable")
)

// Actor identifies the authenticated requester for ownership checks.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) mayModify(ownerID uuid.UUID) bool {
	return a.UserID == ownerID || a.Role == user.RoleAdmin
}

type CreateBookingParams struct {
	ResourceID uuid.UUID
	UserID     uuid.UUID
	StartTime  time.Time
	EndTime    time.Time
	Note       *string
}

type BookingCommands interface {
	Create(ctx context.Context, p CreateBookingParams) (*queries.BookingView, error)
	UpdateInterval(ctx context.Context, bookingID uuid.UUID, actor Actor, start, end time.Time) (*queries.BookingView, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, actor Actor) error
}

type bookingCommandsImpl struct {
	uow            shared.UnitOfWork
	checker        ConflictChecker
	bookingQueries queries.BookingQueries
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	checker ConflictChecker,
	bookingQueries queries.BookingQueries,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:            uow,
		checker:        checker,
		bookingQueries: bookingQueries,
	}
}

// Create admits a booking only if the resource's capacity invariant holds for
// the candidate interval. The resource row lock taken by FindForUpdate
// serializes concurrent writers on the same resource, so the overlap count and
// the insert commit as one atomic decision.
func (b *bookingCommandsImpl) Create(ctx context.Context, p CreateBookingParams) (*queries.BookingView, error) {
	slot, err := booking.NewTimeSlot(p.StartTime, p.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInterval)
	}

	var noteValue string
	if p.Note != nil {
		noteValue = *p.Note
	}
	note, err := booking.NewNote(noteValue)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	var bookingID uuid.UUID
	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, txErr := b.lockBookableResource(ctx, tx, p.ResourceID)
		if txErr != nil {
			return txErr
		}

		conflict, txErr := b.checker.HasConflict(ctx, tx.Bookings(), res.ID(), slot, res.Capacity(), nil)
		if txErr != nil {
			return errs.Mark(txErr, ErrStorageUnavailable)
		}
		if conflict {
			return ErrCapacityExceeded
		}

		entity := booking.NewBooking(res.ID(), p.UserID, slot, note)
		if txErr := tx.Bookings().Create(ctx, entity); txErr != nil {
			return errs.Mark(txErr, ErrStorageUnavailable)
		}
		bookingID = entity.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b.bookingQueries.GetBooking(ctx, bookingID)
}

// UpdateInterval re-runs the conflict check for the new interval, excluding
// the booking itself so it does not conflict with its own prior slot.
func (b *bookingCommandsImpl) UpdateInterval(ctx context.Context, bookingID uuid.UUID, actor Actor, start, end time.Time) (*queries.BookingView, error) {
	slot, err := booking.NewTimeSlot(start, end)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInterval)
	}

	err = b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Bookings().FindByID(ctx, bookingID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(txErr, ErrStorageUnavailable)
		}
		if !actor.mayModify(snap.UserID) {
			return ErrForbidden
		}
		if !snap.Status.IsActive() {
			return ErrBookingNotActive
		}

		res, txErr := b.lockBookableResource(ctx, tx, snap.ResourceID)
		if txErr != nil {
			return txErr
		}

		exclude := snap.ID
		conflict, txErr := b.checker.HasConflict(ctx, tx.Bookings(), res.ID(), slot, res.Capacity(), &exclude)
		if txErr != nil {
			return errs.Mark(txErr, ErrStorageUnavailable)
		}
		if conflict {
			return ErrCapacityExceeded
		}

		if txErr := tx.Bookings().UpdateInterval(ctx, snap.ID, slot.Start(), slot.End()); txErr != nil {
			return errs.Mark(txErr, ErrStorageUnavailable)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b.bookingQueries.GetBooking(ctx, bookingID)
}

// Cancel frees the booking's capacity. No resource lock is needed: removing
// an active booking can only relax the invariant, never violate it.
func (b *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID, actor Actor) error {
	return b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, txErr := tx.Bookings().FindByID(ctx, bookingID)
		if txErr != nil {
			if infra.IsKind(txErr, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(txErr, ErrStorageUnavailable)
		}
		if !actor.mayModify(snap.UserID) {
			return ErrForbidden
		}
		if !snap.Status.IsActive() {
			return ErrBookingNotActive
		}

		if txErr := tx.Bookings().UpdateStatus(ctx, snap.ID, booking.StatusCancelled); txErr != nil {
			return errs.Mark(txErr, ErrStorageUnavailable)
		}
		return nil
	})
}

func (b *bookingCommandsImpl) lockBookableResource(ctx context.Context, tx shared.Tx, resourceID uuid.UUID) (*resource.Resource, error) {
	res, err := tx.Resources().FindForUpdate(ctx, resourceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrResourceNotFound
		}
		return nil, errs.Mark(err, ErrStorageUnavailable)
	}
	if !res.IsActive() {
		return nil, ErrResourceUnavailable
	}
	return res, nil
}
