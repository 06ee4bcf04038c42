package commands

import (
	"context"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/slot"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrResourceNotFound        = errs.New("resource not found")
	ErrSlotNotFound            = errs.New("time slot not found")
	ErrBookingNotFound         = errs.New("booking not found")
	ErrResourceUnavailable     = errs.New("resource not available for booking")
	ErrSlotConflict            = errs.New("time slot already booked")
	ErrInvalidTransition       = errs.New("transition not allowed from current status")
	ErrForbidden               = errs.New("actor not permitted to perform this transition")
	ErrDomainValidation        = errs.New("domain validation error")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

// CustomSlotSpec describes an ad hoc booking window when no preset slot fits.
type CustomSlotSpec struct {
	Label string
	Start slot.TimeOfDay
	End   slot.TimeOfDay
}

type CreateBookingInput struct {
	ResourceID uuid.UUID
	Date       booking.Date
	SlotID     *uuid.UUID
	CustomSlot *CustomSlotSpec
	Purpose    string
}

type BookingCommands interface {
	Create(ctx context.Context, input CreateBookingInput, actor user.Actor) (*booking.Booking, error)
	Transition(ctx context.Context, bookingID uuid.UUID, actor user.Actor, target booking.Status, reason *string) (*booking.Booking, error)
	Cancel(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*booking.Booking, error)
}

type bookingCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingCommandsImpl{uow: uow, clock: clk}
}

// Create checks resource availability and slot occupancy and inserts the
// pending booking inside one transaction. The partial unique index over
// blocking bookings backstops the check: a concurrent insert that slips past
// the read surfaces as a duplicate key and is reported as a conflict.
func (uc *bookingCommandsImpl) Create(ctx context.Context, input CreateBookingInput, actor user.Actor) (*booking.Booking, error) {
	var created *booking.Booking

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Resources().FindByID(ctx, input.ResourceID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if !res.IsBookable() {
			return ErrResourceUnavailable
		}

		slotID, err := uc.resolveSlot(ctx, tx, input)
		if err != nil {
			return err
		}

		occupied, err := tx.Bookings().HasBlocking(ctx, input.ResourceID, input.Date, slotID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if occupied {
			return ErrSlotConflict
		}

		b, err := booking.NewBooking(input.ResourceID, actor.ID, slotID, input.Date, input.Purpose, uc.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Bookings().Create(ctx, b); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrSlotConflict
			}
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrSlotNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		created = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// resolveSlot returns the slot id for the request: either a validated
// existing slot, or the idempotently resolved custom slot for an ad hoc
// window. Repeated custom requests with the same window reuse one slot row
// instead of piling up near-duplicates.
func (uc *bookingCommandsImpl) resolveSlot(ctx context.Context, tx shared.Tx, input CreateBookingInput) (uuid.UUID, error) {
	if input.SlotID != nil {
		s, err := tx.Slots().FindByID(ctx, *input.SlotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return uuid.Nil, ErrSlotNotFound
			}
			return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return s.ID(), nil
	}
	if input.CustomSlot == nil {
		return uuid.Nil, errs.Mark(errs.New("either slot id or custom slot required"), ErrDomainValidation)
	}

	spec := input.CustomSlot
	existing, err := tx.Slots().FindByWindow(ctx, spec.Start, spec.End)
	if err == nil {
		return existing.ID(), nil
	}
	if !infra.IsKind(err, infra.KindNotFound) {
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}

	s, err := slot.NewCustomSlot(spec.Label, spec.Start, spec.End)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrDomainValidation)
	}
	if err := tx.Slots().Create(ctx, s); err != nil {
		// Lost a race against another request creating the same window; the
		// winner's row is the one to reuse.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			winner, ferr := tx.Slots().FindByWindow(ctx, spec.Start, spec.End)
			if ferr != nil {
				return uuid.Nil, errs.Mark(ferr, ErrDatabaseOperationFailed)
			}
			return winner.ID(), nil
		}
		return uuid.Nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	return s.ID(), nil
}

// Transition applies one state-machine edge under a row lock: edge legality
// first, then the authorization policy, then the status-guarded update.
func (uc *bookingCommandsImpl) Transition(ctx context.Context, bookingID uuid.UUID, actor user.Actor, target booking.Status, reason *string) (*booking.Booking, error) {
	if !target.IsValid() {
		return nil, ErrInvalidTransition
	}

	var updated *booking.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, bookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !b.Status().CanTransitionTo(target) {
			return ErrInvalidTransition
		}
		if !booking.CanTransition(actor, b.UserID(), target) {
			return ErrForbidden
		}

		from := b.Status()
		if err := b.Transition(target, actor.ID, uc.clock.Now(), reason); err != nil {
			return ErrInvalidTransition
		}

		if err := tx.Bookings().UpdateStatus(ctx, b, from); err != nil {
			if infra.IsKind(err, infra.KindStaleUpdate) {
				return ErrInvalidTransition
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (uc *bookingCommandsImpl) Cancel(ctx context.Context, bookingID uuid.UUID, actor user.Actor) (*booking.Booking, error) {
	return uc.Transition(ctx, bookingID, actor, booking.StatusCancelled, nil)
}
