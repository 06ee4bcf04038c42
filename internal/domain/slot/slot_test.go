//go:build unit

package slot_test

import (
	"testing"

	"facility-booking/internal/domain/slot"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeOfDay(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		errIs error
	}{
		{name: "plain time", input: "08:00", want: "08:00"},
		{name: "end of day", input: "23:59", want: "23:59"},
		{name: "midnight", input: "00:00", want: "00:00"},
		{name: "single digit hour normalized", input: "8:30", want: "08:30"},
		{name: "missing colon", input: "0800", errIs: slot.ErrInvalidTimeOfDay},
		{name: "hour out of range", input: "24:00", errIs: slot.ErrInvalidTimeOfDay},
		{name: "minute out of range", input: "12:60", errIs: slot.ErrInvalidTimeOfDay},
		{name: "not a number", input: "ab:cd", errIs: slot.ErrInvalidTimeOfDay},
		{name: "empty", input: "", errIs: slot.ErrInvalidTimeOfDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := slot.NewTimeOfDay(tt.input)
			if tt.errIs != nil {
				require.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, actual.String())
		})
	}
}

func TestTimeOfDayBefore(t *testing.T) {
	earlier, err := slot.NewTimeOfDay("08:00")
	require.NoError(t, err)
	later, err := slot.NewTimeOfDay("10:00")
	require.NoError(t, err)

	assert.True(t, earlier.Before(later))
	assert.False(t, later.Before(earlier))
	assert.False(t, earlier.Before(earlier))
}

func TestNewCustomSlot(t *testing.T) {
	start, err := slot.NewTimeOfDay("13:00")
	require.NoError(t, err)
	end, err := slot.NewTimeOfDay("15:00")
	require.NoError(t, err)

	t.Run("custom slots start inactive", func(t *testing.T) {
		s, err := slot.NewCustomSlot("Workshop", start, end)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, s.ID())
		assert.Equal(t, "Workshop", s.Label())
		assert.False(t, s.IsActive())
	})

	t.Run("preset slots are active", func(t *testing.T) {
		s, err := slot.NewPresetSlot("Afternoon Session", start, end)
		require.NoError(t, err)
		assert.True(t, s.IsActive())
	})

	t.Run("start must precede end", func(t *testing.T) {
		_, err := slot.NewCustomSlot("Backwards", end, start)
		require.ErrorIs(t, err, slot.ErrInvalidWindow)

		_, err = slot.NewCustomSlot("Zero width", start, start)
		require.ErrorIs(t, err, slot.ErrInvalidWindow)
	})

	t.Run("label required", func(t *testing.T) {
		_, err := slot.NewCustomSlot("", start, end)
		require.ErrorIs(t, err, slot.ErrEmptyLabel)
	})
}
