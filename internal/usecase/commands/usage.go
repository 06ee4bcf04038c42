package commands

import (
	"context"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/usage"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrBookingNotCompleted  = errs.New("booking is not completed")
	ErrUsageAlreadyRecorded = errs.New("usage record already exists for booking")
)

type AttachUsageInput struct {
	BookingID uuid.UUID
	Remarks   string
	Issues    *string
}

type UsageCommands interface {
	Attach(ctx context.Context, input AttachUsageInput, actor user.Actor) (*usage.Record, error)
}

type usageCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewUsageCommands(uow shared.UnitOfWork, clk clock.Clock) UsageCommands {
	return &usageCommandsImpl{uow: uow, clock: clk}
}

// Attach records how a completed booking was used. One record per booking;
// staff or the booking's owner may file it.
func (uc *usageCommandsImpl) Attach(ctx context.Context, input AttachUsageInput, actor user.Actor) (*usage.Record, error) {
	var created *usage.Record

	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindForUpdate(ctx, input.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBookingNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if !actor.IsStaff() && !b.IsOwnedBy(actor.ID) {
			return ErrForbidden
		}
		if b.Status() != booking.StatusCompleted {
			return ErrBookingNotCompleted
		}

		exists, err := tx.Usage().ExistsForBooking(ctx, input.BookingID)
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if exists {
			return ErrUsageAlreadyRecorded
		}

		rec, err := usage.NewRecord(input.BookingID, actor.ID, input.Remarks, input.Issues, uc.clock.Now())
		if err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Usage().Create(ctx, rec); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrUsageAlreadyRecorded
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		created = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
