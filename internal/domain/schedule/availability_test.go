//go:build unit

package schedule_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/interval"
	"github.com/aljonb/sched/internal/domain/schedule"
	"github.com/aljonb/sched/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-03-03 is a Monday.
var monday = time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)

func on(day time.Time, h, m int) time.Time {
	y, mo, d := day.Date()
	return time.Date(y, mo, d, h, m, 0, 0, day.Location())
}

func slot(day time.Time, sh, sm, eh, em int) interval.Interval {
	return interval.Interval{Start: on(day, sh, sm), End: on(day, eh, em)}
}

func hourly(day time.Time, hours ...int) []interval.Interval {
	out := make([]interval.Interval, 0, len(hours))
	for _, h := range hours {
		out = append(out, slot(day, h, 0, h+1, 0))
	}
	return out
}

func TestGenerateAvailableSlots_Scenarios(t *testing.T) {
	now := on(monday, 8, 0)

	testCases := []struct {
		name         string
		schedule     *builder.ScheduleBuilder
		targetDate   time.Time
		appointments []appointment.Booked
		blocks       []interval.Interval
		now          time.Time
		want         []interval.Interval
	}{
		{
			name:       "open day without bookings yields every hour",
			schedule:   builder.NewScheduleBuilder(),
			targetDate: monday,
			now:        now,
			want:       hourly(monday, 9, 10, 11, 12, 13, 14, 15, 16),
		},
		{
			name:       "lunch break removes its slot",
			schedule:   builder.NewScheduleBuilder().WithBreak("12:00", "13:00"),
			targetDate: monday,
			now:        now,
			want:       hourly(monday, 9, 10, 11, 13, 14, 15, 16),
		},
		{
			name:       "confirmed appointment removes its slot",
			schedule:   builder.NewScheduleBuilder(),
			targetDate: monday,
			appointments: []appointment.Booked{
				{Slot: slot(monday, 10, 0, 11, 0), Status: appointment.StatusConfirmed},
			},
			now:  now,
			want: hourly(monday, 9, 11, 12, 13, 14, 15, 16),
		},
		{
			name:       "pending appointment shorter than a slot still removes the slot",
			schedule:   builder.NewScheduleBuilder(),
			targetDate: monday,
			appointments: []appointment.Booked{
				{Slot: slot(monday, 10, 15, 10, 45), Status: appointment.StatusPending},
			},
			now:  now,
			want: hourly(monday, 9, 11, 12, 13, 14, 15, 16),
		},
		{
			name:       "cancelled and no-show appointments are ignored",
			schedule:   builder.NewScheduleBuilder(),
			targetDate: monday,
			appointments: []appointment.Booked{
				{Slot: slot(monday, 10, 0, 11, 0), Status: appointment.StatusCancelled},
				{Slot: slot(monday, 11, 0, 12, 0), Status: appointment.StatusNoShow},
			},
			now:  now,
			want: hourly(monday, 9, 10, 11, 12, 13, 14, 15, 16),
		},
		{
			name:       "completed appointment keeps its time",
			schedule:   builder.NewScheduleBuilder(),
			targetDate: monday,
			appointments: []appointment.Booked{
				{Slot: slot(monday, 9, 0, 10, 0), Status: appointment.StatusCompleted},
			},
			now:  now,
			want: hourly(monday, 10, 11, 12, 13, 14, 15, 16),
		},
		{
			name:       "block removes every slot it touches",
			schedule:   builder.NewScheduleBuilder(),
			targetDate: monday,
			blocks:     []interval.Interval{slot(monday, 13, 30, 15, 30)},
			now:        now,
			want:       hourly(monday, 9, 10, 11, 12, 16),
		},
		{
			name:       "appointment ending at slot start does not block it",
			schedule:   builder.NewScheduleBuilder(),
			targetDate: monday,
			appointments: []appointment.Booked{
				{Slot: slot(monday, 8, 0, 9, 0), Status: appointment.StatusConfirmed},
			},
			now:  now,
			want: hourly(monday, 9, 10, 11, 12, 13, 14, 15, 16),
		},
		{
			name:       "closed weekday yields nothing",
			schedule:   builder.NewScheduleBuilder(),
			targetDate: monday.AddDate(0, 0, 5),
			now:        now,
			want:       []interval.Interval{},
		},
		{
			name:       "elapsed and in-progress slots are dropped",
			schedule:   builder.NewScheduleBuilder(),
			targetDate: monday,
			now:        on(monday, 11, 30),
			want:       hourly(monday, 12, 13, 14, 15, 16),
		},
		{
			name:       "minimum advance pushes the first slot",
			schedule:   builder.NewScheduleBuilder().WithMinAdvanceMinutes(120),
			targetDate: monday,
			now:        now,
			want:       hourly(monday, 10, 11, 12, 13, 14, 15, 16),
		},
		{
			name:       "maximum advance cuts the day at now plus days",
			schedule:   builder.NewScheduleBuilder().WithMaxAdvanceDays(1),
			targetDate: monday.AddDate(0, 0, 1),
			now:        on(monday, 12, 0),
			want:       hourly(monday.AddDate(0, 0, 1), 9, 10, 11, 12),
		},
		{
			name:       "date beyond maximum advance yields nothing",
			schedule:   builder.NewScheduleBuilder().WithMaxAdvanceDays(7),
			targetDate: monday.AddDate(0, 0, 14),
			now:        now,
			want:       []interval.Interval{},
		},
		{
			name:       "partial trailing slot is never generated",
			schedule:   builder.NewScheduleBuilder().WithSlotMinutes(90),
			targetDate: monday,
			now:        now,
			want: []interval.Interval{
				slot(monday, 9, 0, 10, 30),
				slot(monday, 10, 30, 12, 0),
				slot(monday, 12, 0, 13, 30),
				slot(monday, 13, 30, 15, 0),
				slot(monday, 15, 0, 16, 30),
			},
		},
		{
			name:       "past date yields nothing",
			schedule:   builder.NewScheduleBuilder(),
			targetDate: monday.AddDate(0, 0, -7),
			now:        now,
			want:       []interval.Interval{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := tc.schedule.BuildDomain()
			require.NoError(t, err)

			got, err := schedule.GenerateAvailableSlots(s, tc.targetDate, tc.appointments, tc.blocks, tc.now)
			require.NoError(t, err)
			require.NotNil(t, got)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("slots mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateAvailableSlots_AnchorsToTargetLocation(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	day := time.Date(2025, 3, 3, 15, 45, 0, 0, tokyo)
	now := time.Date(2025, 3, 3, 0, 0, 0, 0, tokyo)

	s := builder.NewScheduleBuilder().WithHours("09:00", "11:00").MustBuildDomain()

	got, err := schedule.GenerateAvailableSlots(s, day, nil, nil, now)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, time.Date(2025, 3, 3, 9, 0, 0, 0, tokyo), got[0].Start)
	assert.Equal(t, "JST", got[0].Start.Location().String())
}

func TestGenerateAvailableSlots_InvalidSchedule(t *testing.T) {
	_, err := schedule.GenerateAvailableSlots(nil, monday, nil, nil, on(monday, 8, 0))
	assert.ErrorIs(t, err, schedule.ErrInvalidSchedule)
}

func TestGenerateAvailableSlots_Idempotent(t *testing.T) {
	s := builder.NewScheduleBuilder().WithBreak("12:00", "13:00").WithSlotMinutes(30).MustBuildDomain()
	appts := []appointment.Booked{{Slot: slot(monday, 10, 0, 11, 0), Status: appointment.StatusConfirmed}}
	blocks := []interval.Interval{slot(monday, 15, 0, 15, 20)}
	now := on(monday, 8, 0)

	first, err := schedule.GenerateAvailableSlots(s, monday, appts, blocks, now)
	require.NoError(t, err)
	second, err := schedule.GenerateAvailableSlots(s, monday, appts, blocks, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

// Randomised inputs; every returned slot must respect every exclusion rule.
func TestGenerateAvailableSlots_Properties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	durations := []int{15, 20, 30, 45, 60, 90}

	for i := 0; i < 200; i++ {
		b := builder.NewScheduleBuilder().
			WithSlotMinutes(durations[rng.Intn(len(durations))]).
			WithMinAdvanceMinutes(rng.Intn(600)).
			WithMaxAdvanceDays(1 + rng.Intn(10))
		if rng.Intn(2) == 0 {
			b.WithBreak("12:00", "12:45")
		}
		s := b.MustBuildDomain()

		target := monday.AddDate(0, 0, rng.Intn(14))
		now := monday.Add(time.Duration(rng.Intn(7*24*60)) * time.Minute)

		var appts []appointment.Booked
		statuses := []appointment.Status{
			appointment.StatusPending, appointment.StatusConfirmed, appointment.StatusCancelled,
			appointment.StatusCompleted, appointment.StatusNoShow,
		}
		for j := 0; j < rng.Intn(5); j++ {
			start := on(target, 9, 0).Add(time.Duration(rng.Intn(480)) * time.Minute)
			appts = append(appts, appointment.Booked{
				Slot:   interval.Interval{Start: start, End: start.Add(time.Duration(5+rng.Intn(120)) * time.Minute)},
				Status: statuses[rng.Intn(len(statuses))],
			})
		}
		var blocks []interval.Interval
		for j := 0; j < rng.Intn(3); j++ {
			start := on(target, 9, 0).Add(time.Duration(rng.Intn(480)) * time.Minute)
			blocks = append(blocks, interval.Interval{Start: start, End: start.Add(time.Duration(5+rng.Intn(90)) * time.Minute)})
		}

		got, err := schedule.GenerateAvailableSlots(s, target, appts, blocks, now)
		require.NoError(t, err)

		if !s.AvailableDays().Contains(target.Weekday()) {
			assert.Empty(t, got)
			continue
		}

		earliest, latest := s.BookingWindow(now)
		for k, sl := range got {
			assert.Equal(t, s.SlotDuration(), sl.Duration())
			assert.False(t, sl.Start.Before(earliest), "slot %s starts before the booking window", sl)
			assert.False(t, sl.Start.After(latest), "slot %s starts after the booking window", sl)
			assert.True(t, sl.End.After(now), "slot %s already elapsed", sl)
			assert.False(t, sl.End.After(on(target, 17, 0)), "slot %s ends after closing", sl)
			for _, br := range s.Breaks() {
				brk := interval.Interval{Start: br.Start().On(target), End: br.End().On(target)}
				assert.False(t, interval.Overlaps(sl, brk), "slot %s overlaps break %s", sl, brk)
			}
			for _, a := range appts {
				if a.Status.OccupiesTime() {
					assert.False(t, interval.Overlaps(sl, a.Slot), "slot %s overlaps appointment %s", sl, a.Slot)
				}
			}
			for _, bl := range blocks {
				assert.False(t, interval.Overlaps(sl, bl), "slot %s overlaps block %s", sl, bl)
			}
			if k > 0 {
				assert.True(t, got[k-1].Start.Before(sl.Start), "slots must be chronological")
			}
		}
	}
}

func TestBusinessSchedule_WithinOpeningHours(t *testing.T) {
	s := builder.NewScheduleBuilder().WithBreak("12:00", "13:00").MustBuildDomain()
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	testCases := []struct {
		name string
		slot interval.Interval
		loc  *time.Location
		want bool
	}{
		{name: "inside hours", slot: slot(monday, 9, 0, 10, 0), loc: time.UTC, want: true},
		{name: "odd length inside hours", slot: slot(monday, 9, 10, 9, 55), loc: time.UTC, want: true},
		{name: "ending at closing", slot: slot(monday, 16, 0, 17, 0), loc: time.UTC, want: true},
		{name: "ending at a break", slot: slot(monday, 11, 0, 12, 0), loc: time.UTC, want: true},
		{name: "before opening", slot: slot(monday, 8, 30, 9, 30), loc: time.UTC},
		{name: "past closing", slot: slot(monday, 16, 30, 17, 30), loc: time.UTC},
		{name: "across a break", slot: slot(monday, 11, 30, 12, 30), loc: time.UTC},
		{name: "closed weekday", slot: slot(monday.AddDate(0, 0, 6), 10, 0, 11, 0), loc: time.UTC},
		{name: "read in the business timezone", slot: slot(monday, 0, 0, 1, 0), loc: tokyo, want: true},
		{name: "UTC hours are night in the business timezone", slot: slot(monday, 10, 0, 11, 0), loc: tokyo},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, s.WithinOpeningHours(tc.slot, tc.loc))
		})
	}
}
