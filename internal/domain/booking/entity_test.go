//go:build unit

package booking_test

import (
	"testing"
	"time"

	"facility-booking/internal/domain/booking"
	"facility-booking/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBooking(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, booking.StatusPending, actual.Status())
		assert.False(t, actual.CreatedAt().IsZero())
		assert.Nil(t, actual.ApprovedBy())
		assert.Nil(t, actual.RejectedBy())
		assert.Nil(t, actual.CancelledAt())
	})

	t.Run("empty purpose", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithPurpose("").BuildDomain()
		require.Nil(t, actual)
		require.ErrorIs(t, err, booking.ErrEmptyPurpose)
	})

	t.Run("zero date", func(t *testing.T) {
		actual, err := builder.NewBookingBuilder().WithDate(booking.Date{}).BuildDomain()
		require.Nil(t, actual)
		require.ErrorIs(t, err, booking.ErrInvalidDate)
	})
}

func TestBookingTransition(t *testing.T) {
	now := time.Date(2026, time.September, 14, 12, 0, 0, 0, time.UTC)
	staffID := uuid.New()

	t.Run("approve stamps approver and time", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Transition(booking.StatusApproved, staffID, now, nil))

		assert.Equal(t, booking.StatusApproved, b.Status())
		require.NotNil(t, b.ApprovedBy())
		assert.Equal(t, staffID, *b.ApprovedBy())
		require.NotNil(t, b.ApprovedAt())
		assert.Equal(t, now, *b.ApprovedAt())
		assert.Nil(t, b.RejectedBy())
	})

	t.Run("reject stores the reason", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		reason := "double-booked equipment"
		require.NoError(t, b.Transition(booking.StatusRejected, staffID, now, &reason))

		assert.Equal(t, booking.StatusRejected, b.Status())
		require.NotNil(t, b.RejectedBy())
		assert.Equal(t, staffID, *b.RejectedBy())
		require.NotNil(t, b.RejectionReason())
		assert.Equal(t, reason, *b.RejectionReason())
	})

	t.Run("reject keeps an empty reason as given", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		empty := ""
		require.NoError(t, b.Transition(booking.StatusRejected, staffID, now, &empty))

		require.NotNil(t, b.RejectionReason())
		assert.Equal(t, "", *b.RejectionReason())
	})

	t.Run("cancel stamps cancellation time", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Transition(booking.StatusCancelled, b.UserID(), now, nil))

		assert.Equal(t, booking.StatusCancelled, b.Status())
		require.NotNil(t, b.CancelledAt())
		assert.Equal(t, now, *b.CancelledAt())
	})

	t.Run("complete after approval", func(t *testing.T) {
		b, err := builder.NewBookingBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, b.Transition(booking.StatusApproved, staffID, now, nil))
		require.NoError(t, b.Transition(booking.StatusCompleted, b.UserID(), now.Add(2*time.Hour), nil))

		assert.Equal(t, booking.StatusCompleted, b.Status())
	})

	t.Run("illegal edges fail without mutating state", func(t *testing.T) {
		tests := []struct {
			name   string
			from   booking.Status
			target booking.Status
		}{
			{"pending to completed", booking.StatusPending, booking.StatusCompleted},
			{"approved to rejected", booking.StatusApproved, booking.StatusRejected},
			{"rejected to approved", booking.StatusRejected, booking.StatusApproved},
			{"completed to cancelled", booking.StatusCompleted, booking.StatusCancelled},
			{"cancelled to pending", booking.StatusCancelled, booking.StatusPending},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				b := builder.NewBookingBuilder().BuildInStatus(tt.from)
				err := b.Transition(tt.target, staffID, now, nil)
				require.ErrorIs(t, err, booking.ErrInvalidTransition)
				assert.Equal(t, tt.from, b.Status())
			})
		}
	})
}

func TestBookingIsOwnedBy(t *testing.T) {
	ownerID := uuid.New()
	b, err := builder.NewBookingBuilder().WithUserID(ownerID).BuildDomain()
	require.NoError(t, err)

	assert.True(t, b.IsOwnedBy(ownerID))
	assert.False(t, b.IsOwnedBy(uuid.New()))
}

func TestDate(t *testing.T) {
	t.Run("parse round trip", func(t *testing.T) {
		d, err := booking.ParseDate("2026-09-14")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-14", d.String())
		assert.True(t, d.Equal(booking.NewDate(2026, time.September, 14)))
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		_, err := booking.ParseDate("14/09/2026")
		require.ErrorIs(t, err, booking.ErrInvalidDate)
	})

	t.Run("json marshalling", func(t *testing.T) {
		d := booking.NewDate(2026, time.September, 14)
		data, err := d.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, `"2026-09-14"`, string(data))

		var parsed booking.Date
		require.NoError(t, parsed.UnmarshalJSON(data))
		assert.True(t, d.Equal(parsed))
	})
}
