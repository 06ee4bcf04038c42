package booking

type Status string

const (
	StatusPending   Status = "pending"
	StatusApproved  Status = "approved"
	StatusRejected  Status = "rejected"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsBlocking reports whether a booking in this status occupies its
// (resource, date, slot) triple against new bookings. Completed bookings
// keep blocking: the slot was used on that date and stays occupied in
// history. Rejected and cancelled bookings free the slot.
func (s Status) IsBlocking() bool {
	switch s {
	case StatusPending, StatusApproved, StatusCompleted:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	switch s {
	case StatusRejected, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// transitions is the closed edge set of the booking state machine.
var transitions = map[Status][]Status{
	StatusPending:  {StatusApproved, StatusRejected, StatusCancelled},
	StatusApproved: {StatusCompleted, StatusCancelled},
}

func (s Status) CanTransitionTo(target Status) bool {
	for _, t := range transitions[s] {
		if t == target {
			return true
		}
	}
	return false
}

// BlockingStatuses returns the statuses the conflict checker matches on.
func BlockingStatuses() []Status {
	return []Status{StatusPending, StatusApproved, StatusCompleted}
}
