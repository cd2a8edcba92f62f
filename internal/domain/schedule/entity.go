package schedule

import (
	"errors"
	"sort"
	"time"

	"github.com/aljonb/sched/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrInvalidSchedule marks every configuration error. Callers match on it to
// tell a broken business setup apart from a bad request.
var ErrInvalidSchedule = errs.New("invalid business schedule")

var (
	ErrInvalidHours        = errors.New("opening time must be before closing time")
	ErrInvalidSlotDuration = errors.New("slot duration must be between 1 and 1440 minutes")
	ErrInvalidMinAdvance   = errors.New("minimum advance booking minutes must not be negative")
	ErrInvalidMaxAdvance   = errors.New("maximum advance booking days must be positive")
	ErrInvalidBreak        = errors.New("break start must be before break end")
	ErrBreakOutsideHours   = errors.New("break must lie within opening hours")
	ErrOverlappingBreaks   = errors.New("breaks must not overlap each other")
	ErrMissingBusinessID   = errors.New("schedule business is required")
)

const (
	maxSlotDurationMinutes = 1440
	maxAdvanceBookingDays  = 3650
)

type BusinessSchedule struct {
	businessID     uuid.UUID
	availableDays  WeekdaySet
	opensAt        TimeOfDay
	closesAt       TimeOfDay
	breaks         []Break
	slotMinutes    int
	minAdvanceMins int
	maxAdvanceDays int
	updatedAt      time.Time
}

type Params struct {
	BusinessID               uuid.UUID
	AvailableDays            WeekdaySet
	OpensAt                  TimeOfDay
	ClosesAt                 TimeOfDay
	Breaks                   []Break
	SlotDurationMinutes      int
	MinAdvanceBookingMinutes int
	MaxAdvanceBookingDays    int
	UpdatedAt                time.Time
}

// New builds a schedule and rejects malformed configuration.
func New(p Params) (*BusinessSchedule, error) {
	breaks := make([]Break, len(p.Breaks))
	copy(breaks, p.Breaks)
	sort.SliceStable(breaks, func(i, j int) bool {
		return breaks[i].start.Before(breaks[j].start)
	})

	s := &BusinessSchedule{
		businessID:     p.BusinessID,
		availableDays:  p.AvailableDays,
		opensAt:        p.OpensAt,
		closesAt:       p.ClosesAt,
		breaks:         breaks,
		slotMinutes:    p.SlotDurationMinutes,
		minAdvanceMins: p.MinAdvanceBookingMinutes,
		maxAdvanceDays: p.MaxAdvanceBookingDays,
		updatedAt:      p.UpdatedAt,
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *BusinessSchedule) Validate() error {
	if s == nil {
		return ErrInvalidSchedule
	}
	if s.businessID == uuid.Nil {
		return invalid(ErrMissingBusinessID)
	}
	if !s.opensAt.Before(s.closesAt) {
		return invalid(ErrInvalidHours)
	}
	if s.slotMinutes <= 0 || s.slotMinutes > maxSlotDurationMinutes {
		return invalid(ErrInvalidSlotDuration)
	}
	if s.minAdvanceMins < 0 {
		return invalid(ErrInvalidMinAdvance)
	}
	if s.maxAdvanceDays <= 0 || s.maxAdvanceDays > maxAdvanceBookingDays {
		return invalid(ErrInvalidMaxAdvance)
	}
	for i, b := range s.breaks {
		if !b.start.Before(b.end) {
			return invalid(ErrInvalidBreak)
		}
		if b.start.Before(s.opensAt) || s.closesAt.Before(b.end) {
			return invalid(ErrBreakOutsideHours)
		}
		if i > 0 && b.start.Before(s.breaks[i-1].end) {
			return invalid(ErrOverlappingBreaks)
		}
	}
	return nil
}

func invalid(err error) error {
	return errs.Mark(err, ErrInvalidSchedule)
}

// BookingWindow returns the earliest and latest instants a slot may start at, as seen from now.
func (s *BusinessSchedule) BookingWindow(now time.Time) (earliest, latest time.Time) {
	earliest = now.Add(time.Duration(s.minAdvanceMins) * time.Minute)
	latest = now.AddDate(0, 0, s.maxAdvanceDays)
	return earliest, latest
}

func (s *BusinessSchedule) BusinessID() uuid.UUID         { return s.businessID }
func (s *BusinessSchedule) AvailableDays() WeekdaySet     { return s.availableDays }
func (s *BusinessSchedule) OpensAt() TimeOfDay            { return s.opensAt }
func (s *BusinessSchedule) ClosesAt() TimeOfDay           { return s.closesAt }
func (s *BusinessSchedule) SlotDurationMinutes() int      { return s.slotMinutes }
func (s *BusinessSchedule) MinAdvanceBookingMinutes() int { return s.minAdvanceMins }
func (s *BusinessSchedule) MaxAdvanceBookingDays() int    { return s.maxAdvanceDays }
func (s *BusinessSchedule) UpdatedAt() time.Time          { return s.updatedAt }

func (s *BusinessSchedule) Breaks() []Break {
	out := make([]Break, len(s.breaks))
	copy(out, s.breaks)
	return out
}

func (s *BusinessSchedule) SlotDuration() time.Duration {
	return time.Duration(s.slotMinutes) * time.Minute
}
