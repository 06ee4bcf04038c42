//go:build unit

package commands_test

import (
	"context"
	"testing"

	"facility-booking/internal/domain/booking"
	"facility-booking/internal/domain/user"
	"facility-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageAttach(t *testing.T) {
	ctx := context.Background()

	completeBooking := func(t *testing.T, f *fixture, owner user.Actor) uuid.UUID {
		t.Helper()
		b, err := f.cmds.Create(ctx, f.createInput(), owner)
		require.NoError(t, err)
		_, err = f.cmds.Transition(ctx, b.ID(), actorOf(user.RoleAdmin), booking.StatusApproved, nil)
		require.NoError(t, err)
		_, err = f.cmds.Transition(ctx, b.ID(), owner, booking.StatusCompleted, nil)
		require.NoError(t, err)
		return b.ID()
	}

	t.Run("owner records usage for a completed booking", func(t *testing.T) {
		f := newFixture(t)
		usageCmds := commands.NewUsageCommands(f.uow, f.clock)
		owner := actorOf(user.RoleUser)
		bookingID := completeBooking(t, f, owner)

		issues := "projector bulb flickering"
		rec, err := usageCmds.Attach(ctx, commands.AttachUsageInput{
			BookingID: bookingID,
			Remarks:   "Session ran as planned",
			Issues:    &issues,
		}, owner)
		require.NoError(t, err)

		assert.Equal(t, bookingID, rec.BookingID())
		assert.Equal(t, owner.ID, rec.UploadedBy())
		require.NotNil(t, rec.Issues())
		assert.Equal(t, issues, *rec.Issues())
	})

	t.Run("staff may record usage for any completed booking", func(t *testing.T) {
		f := newFixture(t)
		usageCmds := commands.NewUsageCommands(f.uow, f.clock)
		bookingID := completeBooking(t, f, actorOf(user.RoleUser))

		_, err := usageCmds.Attach(ctx, commands.AttachUsageInput{
			BookingID: bookingID,
			Remarks:   "Room left clean",
		}, actorOf(user.RoleFaculty))
		require.NoError(t, err)
	})

	t.Run("unrelated user is refused", func(t *testing.T) {
		f := newFixture(t)
		usageCmds := commands.NewUsageCommands(f.uow, f.clock)
		bookingID := completeBooking(t, f, actorOf(user.RoleUser))

		_, err := usageCmds.Attach(ctx, commands.AttachUsageInput{
			BookingID: bookingID,
			Remarks:   "Should not be allowed",
		}, actorOf(user.RoleUser))
		require.ErrorIs(t, err, commands.ErrForbidden)
	})

	t.Run("booking must be completed", func(t *testing.T) {
		f := newFixture(t)
		usageCmds := commands.NewUsageCommands(f.uow, f.clock)
		owner := actorOf(user.RoleUser)

		b, err := f.cmds.Create(ctx, f.createInput(), owner)
		require.NoError(t, err)

		_, err = usageCmds.Attach(ctx, commands.AttachUsageInput{
			BookingID: b.ID(),
			Remarks:   "Too early",
		}, owner)
		require.ErrorIs(t, err, commands.ErrBookingNotCompleted)
	})

	t.Run("one record per booking", func(t *testing.T) {
		f := newFixture(t)
		usageCmds := commands.NewUsageCommands(f.uow, f.clock)
		owner := actorOf(user.RoleUser)
		bookingID := completeBooking(t, f, owner)

		_, err := usageCmds.Attach(ctx, commands.AttachUsageInput{BookingID: bookingID, Remarks: "First"}, owner)
		require.NoError(t, err)

		_, err = usageCmds.Attach(ctx, commands.AttachUsageInput{BookingID: bookingID, Remarks: "Second"}, owner)
		require.ErrorIs(t, err, commands.ErrUsageAlreadyRecorded)
	})

	t.Run("unknown booking", func(t *testing.T) {
		f := newFixture(t)
		usageCmds := commands.NewUsageCommands(f.uow, f.clock)

		_, err := usageCmds.Attach(ctx, commands.AttachUsageInput{
			BookingID: uuid.New(),
			Remarks:   "No such booking",
		}, actorOf(user.RoleAdmin))
		require.ErrorIs(t, err, commands.ErrBookingNotFound)
	})

	t.Run("empty remarks is a validation error", func(t *testing.T) {
		f := newFixture(t)
		usageCmds := commands.NewUsageCommands(f.uow, f.clock)
		owner := actorOf(user.RoleUser)
		bookingID := completeBooking(t, f, owner)

		_, err := usageCmds.Attach(ctx, commands.AttachUsageInput{BookingID: bookingID}, owner)
		require.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}
