package appointment

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusNoShow    Status = "no_show"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// OccupiesTime reports whether an appointment in this status blocks its interval
// for other bookings. Only cancelled and no_show release the time; completed
// keeps it so historical availability stays truthful.
func (s Status) OccupiesTime() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted:
		return true
	default:
		return false
	}
}

// OccupyingStatuses is the set used by storage queries and the exclusion constraint.
func OccupyingStatuses() []Status {
	return []Status{StatusPending, StatusConfirmed, StatusCompleted}
}

var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted, StatusNoShow},
	StatusCancelled: {StatusPending, StatusConfirmed},
}

func (s Status) CanTransitionTo(to Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// Reactivates reports whether moving from s to "to" puts a released interval back into use.
func (s Status) Reactivates(to Status) bool {
	return !s.OccupiesTime() && to.OccupiesTime()
}
