//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/resource"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/pkg/clock"
	"facility-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("admin creates an available resource", func(t *testing.T) {
		uow := newFakeUoW()
		clk := clock.NewMockClock(time.Date(2026, time.September, 1, 9, 0, 0, 0, time.UTC))
		cmds := commands.NewResourceCommands(uow, clk)

		created, err := cmds.Create(ctx, commands.CreateResourceInput{
			Name:     "Auditorium",
			Category: "hall",
			Capacity: 400,
			Location: "Main Building",
		}, actorOf(user.RoleAdmin))
		require.NoError(t, err)

		assert.Equal(t, resource.StatusAvailable, created.Status())
		assert.Contains(t, uow.store.resources, created.ID())
	})

	t.Run("non-admin roles are refused", func(t *testing.T) {
		uow := newFakeUoW()
		clk := clock.NewMockClock(time.Now())
		cmds := commands.NewResourceCommands(uow, clk)

		input := commands.CreateResourceInput{Name: "Auditorium", Location: "Main Building"}

		_, err := cmds.Create(ctx, input, actorOf(user.RoleFaculty))
		require.ErrorIs(t, err, commands.ErrForbidden)

		_, err = cmds.Create(ctx, input, actorOf(user.RoleUser))
		require.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("validation failures surface as domain errors", func(t *testing.T) {
		uow := newFakeUoW()
		cmds := commands.NewResourceCommands(uow, clock.NewMockClock(time.Now()))

		_, err := cmds.Create(ctx, commands.CreateResourceInput{Location: "Main Building"}, actorOf(user.RoleAdmin))
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestResourceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("patch updates only the given fields", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewResourceCommands(f.uow, f.clock)

		name := "Renovated Chemistry Lab"
		updated, err := cmds.Update(ctx, f.resource.ID(), resource.Patch{Name: &name}, actorOf(user.RoleAdmin))
		require.NoError(t, err)

		assert.Equal(t, "Renovated Chemistry Lab", updated.Name())
		assert.Equal(t, "Building C", updated.Location())
	})

	t.Run("unknown resource", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewResourceCommands(f.uow, f.clock)

		_, err := cmds.Update(ctx, uuid.New(), resource.Patch{}, actorOf(user.RoleAdmin))
		require.ErrorIs(t, err, commands.ErrResourceNotFound)
	})

	t.Run("non-admin is refused", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewResourceCommands(f.uow, f.clock)

		_, err := cmds.Update(ctx, f.resource.ID(), resource.Patch{}, actorOf(user.RoleFaculty))
		require.ErrorIs(t, err, commands.ErrForbidden)
	})
}

func TestResourceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a resource without active bookings", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewResourceCommands(f.uow, f.clock)

		require.NoError(t, cmds.Delete(ctx, f.resource.ID(), actorOf(user.RoleAdmin)))
		assert.NotContains(t, f.uow.store.resources, f.resource.ID())
	})

	t.Run("pending booking blocks deletion until resolved", func(t *testing.T) {
		f := newFixture(t)
		resourceCmds := commands.NewResourceCommands(f.uow, f.clock)

		b, err := f.cmds.Create(ctx, f.createInput(), actorOf(user.RoleUser))
		require.NoError(t, err)

		err = resourceCmds.Delete(ctx, f.resource.ID(), actorOf(user.RoleAdmin))
		require.ErrorIs(t, err, commands.ErrResourceHasActiveBookings)

		_, err = f.cmds.Transition(ctx, b.ID(), actorOf(user.RoleAdmin), booking.StatusRejected, nil)
		require.NoError(t, err)

		require.NoError(t, resourceCmds.Delete(ctx, f.resource.ID(), actorOf(user.RoleAdmin)))
	})

	t.Run("approved booking blocks deletion", func(t *testing.T) {
		f := newFixture(t)
		resourceCmds := commands.NewResourceCommands(f.uow, f.clock)

		b, err := f.cmds.Create(ctx, f.createInput(), actorOf(user.RoleUser))
		require.NoError(t, err)
		_, err = f.cmds.Transition(ctx, b.ID(), actorOf(user.RoleAdmin), booking.StatusApproved, nil)
		require.NoError(t, err)

		err = resourceCmds.Delete(ctx, f.resource.ID(), actorOf(user.RoleAdmin))
		require.ErrorIs(t, err, commands.ErrResourceHasActiveBookings)
	})

	t.Run("completed booking does not block deletion", func(t *testing.T) {
		f := newFixture(t)
		resourceCmds := commands.NewResourceCommands(f.uow, f.clock)
		owner := actorOf(user.RoleUser)

		b, err := f.cmds.Create(ctx, f.createInput(), owner)
		require.NoError(t, err)
		_, err = f.cmds.Transition(ctx, b.ID(), actorOf(user.RoleAdmin), booking.StatusApproved, nil)
		require.NoError(t, err)
		_, err = f.cmds.Transition(ctx, b.ID(), owner, booking.StatusCompleted, nil)
		require.NoError(t, err)

		require.NoError(t, resourceCmds.Delete(ctx, f.resource.ID(), actorOf(user.RoleAdmin)))
	})

	t.Run("non-admin is refused", func(t *testing.T) {
		f := newFixture(t)
		cmds := commands.NewResourceCommands(f.uow, f.clock)

		require.ErrorIs(t, cmds.Delete(ctx, f.resource.ID(), actorOf(user.RoleUser)), commands.ErrForbidden)
	})
}
