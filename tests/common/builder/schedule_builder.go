//go:build unit || e2e

package builder

import (
	"time"

	"github.com/aljonb/sched/internal/domain/schedule"

	"github.com/google/uuid"
)

type ScheduleBuilder struct {
	BusinessID     uuid.UUID
	Days           []time.Weekday
	OpensAt        string
	ClosesAt       string
	Breaks         [][2]string
	SlotMinutes    int
	MinAdvanceMins int
	MaxAdvanceDays int
}

// NewScheduleBuilder starts from a Mon-Fri 09:00-17:00 business with hourly slots.
func NewScheduleBuilder() *ScheduleBuilder {
	return &ScheduleBuilder{
		BusinessID:     uuid.New(),
		Days:           []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday},
		OpensAt:        "09:00",
		ClosesAt:       "17:00",
		SlotMinutes:    60,
		MinAdvanceMins: 0,
		MaxAdvanceDays: 90,
	}
}

func (b *ScheduleBuilder) With(mutate func(*ScheduleBuilder)) *ScheduleBuilder {
	mutate(b)
	return b
}

func (b *ScheduleBuilder) BuildDomain() (*schedule.BusinessSchedule, error) {
	opens, err := schedule.ParseTimeOfDay(b.OpensAt)
	if err != nil {
		return nil, err
	}
	closes, err := schedule.ParseTimeOfDay(b.ClosesAt)
	if err != nil {
		return nil, err
	}
	breaks := make([]schedule.Break, 0, len(b.Breaks))
	for _, br := range b.Breaks {
		start, err := schedule.ParseTimeOfDay(br[0])
		if err != nil {
			return nil, err
		}
		end, err := schedule.ParseTimeOfDay(br[1])
		if err != nil {
			return nil, err
		}
		brk, err := schedule.NewBreak(start, end)
		if err != nil {
			return nil, err
		}
		breaks = append(breaks, brk)
	}

	return schedule.New(schedule.Params{
		BusinessID:               b.BusinessID,
		AvailableDays:            schedule.NewWeekdaySet(b.Days...),
		OpensAt:                  opens,
		ClosesAt:                 closes,
		Breaks:                   breaks,
		SlotDurationMinutes:      b.SlotMinutes,
		MinAdvanceBookingMinutes: b.MinAdvanceMins,
		MaxAdvanceBookingDays:    b.MaxAdvanceDays,
	})
}

func (b *ScheduleBuilder) MustBuildDomain() *schedule.BusinessSchedule {
	s, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return s
}

func (b *ScheduleBuilder) WithBusinessID(id uuid.UUID) *ScheduleBuilder {
	b.BusinessID = id
	return b
}

func (b *ScheduleBuilder) WithDays(days ...time.Weekday) *ScheduleBuilder {
	b.Days = days
	return b
}

func (b *ScheduleBuilder) WithHours(opensAt, closesAt string) *ScheduleBuilder {
	b.OpensAt = opensAt
	b.ClosesAt = closesAt
	return b
}

func (b *ScheduleBuilder) WithBreak(start, end string) *ScheduleBuilder {
	b.Breaks = append(b.Breaks, [2]string{start, end})
	return b
}

func (b *ScheduleBuilder) WithSlotMinutes(m int) *ScheduleBuilder {
	b.SlotMinutes = m
	return b
}

func (b *ScheduleBuilder) WithMinAdvanceMinutes(m int) *ScheduleBuilder {
	b.MinAdvanceMins = m
	return b
}

func (b *ScheduleBuilder) WithMaxAdvanceDays(d int) *ScheduleBuilder {
	b.MaxAdvanceDays = d
	return b
}
