package schedule

import (
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/interval"
)

// GenerateAvailableSlots lists the bookable slots of targetDate for a business.
//
// targetDate only contributes its civil date and location; appointments and
// blocks are expected to be pre-filtered to the business, but appointment
// status is checked again here. The result is chronological and never nil.
func GenerateAvailableSlots(
	s *BusinessSchedule,
	targetDate time.Time,
	appointments []appointment.Booked,
	blocks []interval.Interval,
	now time.Time,
) ([]interval.Interval, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if !s.availableDays.Contains(targetDate.Weekday()) {
		return []interval.Interval{}, nil
	}

	dayStart := s.opensAt.On(targetDate)
	dayEnd := s.closesAt.On(targetDate)
	earliest, latest := s.BookingWindow(now)

	breaks := s.breaksOn(targetDate)
	busy := occupying(appointments)
	step := s.SlotDuration()

	slots := make([]interval.Interval, 0, int(dayEnd.Sub(dayStart)/step))
	for cursor := dayStart; cursor.Before(dayEnd); cursor = cursor.Add(step) {
		candidate := interval.Interval{Start: cursor, End: cursor.Add(step)}
		if candidate.End.After(dayEnd) {
			break
		}

		// a matching case drops the candidate
		switch {
		case !candidate.End.After(now):
		case candidate.Start.Before(earliest):
		case candidate.Start.After(latest):
		case interval.OverlapsAny(candidate, breaks):
		case interval.OverlapsAny(candidate, busy):
		case interval.OverlapsAny(candidate, blocks):
		default:
			slots = append(slots, candidate)
		}
	}
	return slots, nil
}

// WithinOpeningHours reports whether slot fits inside one open day of the
// schedule, read in loc, without touching a break.
func (s *BusinessSchedule) WithinOpeningHours(slot interval.Interval, loc *time.Location) bool {
	day := slot.Start.In(loc)
	if !s.availableDays.Contains(day.Weekday()) {
		return false
	}
	if slot.Start.Before(s.opensAt.On(day)) || slot.End.After(s.closesAt.On(day)) {
		return false
	}
	return !interval.OverlapsAny(slot, s.breaksOn(day))
}

func (s *BusinessSchedule) breaksOn(day time.Time) []interval.Interval {
	out := make([]interval.Interval, 0, len(s.breaks))
	for _, b := range s.breaks {
		out = append(out, interval.Interval{Start: b.start.On(day), End: b.end.On(day)})
	}
	return out
}

func occupying(appointments []appointment.Booked) []interval.Interval {
	out := make([]interval.Interval, 0, len(appointments))
	for _, a := range appointments {
		if a.Status.OccupiesTime() {
			out = append(out, a.Slot)
		}
	}
	return out
}
