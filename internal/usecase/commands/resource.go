package commands

import (
	"context"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/infra"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/pkg/errs"
	"facility-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrResourceHasActiveBookings = errs.New("resource has active bookings")

type CreateResourceInput struct {
	Name        string
	Category    string
	Capacity    int
	Location    string
	Description string
}

type ResourceCommands interface {
	Create(ctx context.Context, input CreateResourceInput, actor user.Actor) (*resource.Resource, error)
	Update(ctx context.Context, id uuid.UUID, p resource.Patch, actor user.Actor) (*resource.Resource, error)
	Delete(ctx context.Context, id uuid.UUID, actor user.Actor) error
}

type resourceCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewResourceCommands(uow shared.UnitOfWork, clk clock.Clock) ResourceCommands {
	return &resourceCommandsImpl{uow: uow, clock: clk}
}

func (uc *resourceCommandsImpl) Create(ctx context.Context, input CreateResourceInput, actor user.Actor) (*resource.Resource, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	res, err := resource.NewResource(input.Name, input.Category, input.Capacity, input.Location, input.Description, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Resources().Create(ctx, res); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// Update applies a partial patch; fields absent from the patch keep their
// stored value.
func (uc *resourceCommandsImpl) Update(ctx context.Context, id uuid.UUID, p resource.Patch, actor user.Actor) (*resource.Resource, error) {
	if !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	var updated *resource.Resource
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Resources().FindByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		if err := res.Apply(p, uc.clock.Now()); err != nil {
			return errs.Mark(err, ErrDomainValidation)
		}

		if err := tx.Resources().Update(ctx, res); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		updated = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a resource unless bookings still await or hold approval for
// it. Completed bookings do not block deletion; they only block rebooking.
func (uc *resourceCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actor user.Actor) error {
	if !actor.IsAdmin() {
		return ErrForbidden
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Resources().FindByID(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrResourceNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}

		active, err := tx.Bookings().AnyInStatuses(ctx, id, []booking.Status{booking.StatusPending, booking.StatusApproved})
		if err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		if active {
			return ErrResourceHasActiveBookings
		}

		if err := tx.Resources().Delete(ctx, id); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
}
