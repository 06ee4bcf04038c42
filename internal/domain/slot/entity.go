package slot

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrInvalidWindow = errors.New("slot start must be before end")
	ErrEmptyLabel    = errors.New("slot label must not be empty")
)

// TimeSlot is a labeled time window. Presets are active and appear in the
// generic availability grid; custom slots created ad hoc at booking time are
// inactive but remain valid booking targets by id. Slots are never deleted
// because bookings reference them indefinitely.
type TimeSlot struct {
	id     uuid.UUID
	label  string
	start  TimeOfDay
	end    TimeOfDay
	active bool
}

// NewCustomSlot builds an inactive slot for an ad hoc booking window.
func NewCustomSlot(label string, start, end TimeOfDay) (*TimeSlot, error) {
	if label == "" {
		return nil, ErrEmptyLabel
	}
	if !start.Before(end) {
		return nil, ErrInvalidWindow
	}
	return &TimeSlot{
		id:     uuid.New(),
		label:  label,
		start:  start,
		end:    end,
		active: false,
	}, nil
}

func NewPresetSlot(label string, start, end TimeOfDay) (*TimeSlot, error) {
	s, err := NewCustomSlot(label, start, end)
	if err != nil {
		return nil, err
	}
	s.active = true
	return s, nil
}

func ReconstructTimeSlot(id uuid.UUID, label string, start, end TimeOfDay, active bool) *TimeSlot {
	return &TimeSlot{
		id:     id,
		label:  label,
		start:  start,
		end:    end,
		active: active,
	}
}

func (s *TimeSlot) ID() uuid.UUID    { return s.id }
func (s *TimeSlot) Label() string    { return s.label }
func (s *TimeSlot) Start() TimeOfDay { return s.start }
func (s *TimeSlot) End() TimeOfDay   { return s.end }
func (s *TimeSlot) IsActive() bool   { return s.active }
