//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/domain/interval"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/usecase/queries"
	"github.com/aljonb/sched/tests/common/builder"
	queriesmock "github.com/aljonb/sched/tests/mock/queries"
	sharedmock "github.com/aljonb/sched/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type availabilityFixture struct {
	businesses   *queriesmock.MockBusinessReadStore
	schedules    *queriesmock.MockScheduleReadStore
	appointments *queriesmock.MockAppointmentReadStore
	blocks       *queriesmock.MockBlockedSlotReadStore
	cache        *sharedmock.MockSlotCache
	biz          *business.Business
	clock        *clock.MockClock
}

func newAvailabilityFixture(t *testing.T, tz string) *availabilityFixture {
	ctrl := gomock.NewController(t)
	return &availabilityFixture{
		businesses:   queriesmock.NewMockBusinessReadStore(ctrl),
		schedules:    queriesmock.NewMockScheduleReadStore(ctrl),
		appointments: queriesmock.NewMockAppointmentReadStore(ctrl),
		blocks:       queriesmock.NewMockBlockedSlotReadStore(ctrl),
		cache:        sharedmock.NewMockSlotCache(ctrl),
		biz:          builder.NewBusinessBuilder().WithTimezone(tz).MustBuildDomain(),
		clock:        clock.NewMockClock(time.Date(2025, 3, 3, 6, 0, 0, 0, time.UTC)),
	}
}

func (f *availabilityFixture) queries() queries.AvailabilityQueries {
	return queries.NewAvailabilityQueries(f.businesses, f.schedules, f.appointments, f.blocks, f.cache, f.clock,
		queries.AvailabilityConfig{MaxRangeDays: 7, CacheTTL: 30 * time.Second})
}

func (f *availabilityFixture) expectBusinessAndSchedule(b *builder.ScheduleBuilder) {
	f.businesses.EXPECT().FindByID(gomock.Any(), f.biz.ID()).Return(f.biz, nil)
	f.schedules.EXPECT().FindByBusinessID(gomock.Any(), f.biz.ID()).Return(b.WithBusinessID(f.biz.ID()).MustBuildDomain(), nil)
}

func TestGetDaySlots_ComputesAndCaches(t *testing.T) {
	f := newAvailabilityFixture(t, "UTC")
	f.expectBusinessAndSchedule(builder.NewScheduleBuilder().WithHours("09:00", "12:00"))

	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	f.cache.EXPECT().Get(gomock.Any(), f.biz.ID(), "2025-03-03").Return(nil, "3", false)
	f.appointments.EXPECT().FindOccupying(gomock.Any(), f.biz.ID(), day, day.AddDate(0, 0, 1)).Return([]appointment.Booked{
		{Slot: interval.Interval{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)}, Status: appointment.StatusConfirmed},
	}, nil)
	f.blocks.EXPECT().FindInRange(gomock.Any(), f.biz.ID(), day, day.AddDate(0, 0, 1)).Return(nil, nil)

	want := []interval.Interval{
		{Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)},
		{Start: day.Add(11 * time.Hour), End: day.Add(12 * time.Hour)},
	}
	f.cache.EXPECT().Set(gomock.Any(), f.biz.ID(), "2025-03-03", "3", want, 30*time.Second)

	got, err := f.queries().GetDaySlots(context.Background(), f.biz.ID(), "2025-03-03")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-03", got.Date)
	assert.Equal(t, "UTC", got.Timezone)
	if diff := cmp.Diff([]queries.SlotView{
		{Start: want[0].Start, End: want[0].End},
		{Start: want[1].Start, End: want[1].End},
	}, got.Slots); diff != "" {
		t.Errorf("slots mismatch (-want +got):\n%s", diff)
	}
}

func TestGetDaySlots_CacheHitIsRefiltered(t *testing.T) {
	f := newAvailabilityFixture(t, "UTC")
	f.expectBusinessAndSchedule(builder.NewScheduleBuilder())

	day := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
	f.clock.Set(day.Add(10*time.Hour + 30*time.Minute))
	f.cache.EXPECT().Get(gomock.Any(), f.biz.ID(), "2025-03-03").Return([]interval.Interval{
		{Start: day.Add(9 * time.Hour), End: day.Add(10 * time.Hour)},
		{Start: day.Add(10 * time.Hour), End: day.Add(11 * time.Hour)},
		{Start: day.Add(11 * time.Hour), End: day.Add(12 * time.Hour)},
	}, "3", true)

	got, err := f.queries().GetDaySlots(context.Background(), f.biz.ID(), "2025-03-03")
	require.NoError(t, err)

	require.Len(t, got.Slots, 1)
	assert.Equal(t, day.Add(11*time.Hour), got.Slots[0].Start)
}

func TestGetDaySlots_ReportsBusinessLocalTimes(t *testing.T) {
	f := newAvailabilityFixture(t, "Asia/Tokyo")
	f.expectBusinessAndSchedule(builder.NewScheduleBuilder().WithHours("09:00", "10:00"))

	tokyo := f.biz.Location()
	day := time.Date(2025, 3, 4, 0, 0, 0, 0, tokyo)
	f.cache.EXPECT().Get(gomock.Any(), f.biz.ID(), "2025-03-04").Return(nil, "3", false)
	f.appointments.EXPECT().FindOccupying(gomock.Any(), f.biz.ID(), day, day.AddDate(0, 0, 1)).Return(nil, nil)
	f.blocks.EXPECT().FindInRange(gomock.Any(), f.biz.ID(), day, day.AddDate(0, 0, 1)).Return(nil, nil)
	f.cache.EXPECT().Set(gomock.Any(), f.biz.ID(), "2025-03-04", "3", gomock.Len(1), gomock.Any())

	got, err := f.queries().GetDaySlots(context.Background(), f.biz.ID(), "2025-03-04")
	require.NoError(t, err)

	assert.Equal(t, "Asia/Tokyo", got.Timezone)
	require.Len(t, got.Slots, 1)
	assert.Equal(t, "2025-03-04T09:00:00+09:00", got.Slots[0].Start.Format(time.RFC3339))
}

func TestGetDaySlots_CacheUnusableSkipsWrite(t *testing.T) {
	f := newAvailabilityFixture(t, "UTC")
	f.expectBusinessAndSchedule(builder.NewScheduleBuilder().WithHours("09:00", "10:00"))

	f.cache.EXPECT().Get(gomock.Any(), f.biz.ID(), "2025-03-03").Return(nil, "", false)
	f.appointments.EXPECT().FindOccupying(gomock.Any(), f.biz.ID(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.blocks.EXPECT().FindInRange(gomock.Any(), f.biz.ID(), gomock.Any(), gomock.Any()).Return(nil, nil)
	f.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	got, err := f.queries().GetDaySlots(context.Background(), f.biz.ID(), "2025-03-03")
	require.NoError(t, err)
	assert.Len(t, got.Slots, 1)
}

func TestGetDaySlots_DayAtMaxAdvanceBoundBypassesCache(t *testing.T) {
	f := newAvailabilityFixture(t, "UTC")
	// now is 2025-03-03 06:00, so the bound falls at 2025-03-05 06:00
	f.expectBusinessAndSchedule(builder.NewScheduleBuilder().
		WithHours("09:00", "12:00").
		WithMaxAdvanceDays(2))

	day := time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)
	f.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	f.appointments.EXPECT().FindOccupying(gomock.Any(), f.biz.ID(), day, day.AddDate(0, 0, 1)).Return(nil, nil)
	f.blocks.EXPECT().FindInRange(gomock.Any(), f.biz.ID(), day, day.AddDate(0, 0, 1)).Return(nil, nil)

	got, err := f.queries().GetDaySlots(context.Background(), f.biz.ID(), "2025-03-05")
	require.NoError(t, err)
	assert.Empty(t, got.Slots)

	// once the bound has moved past the morning the slots appear
	f.expectBusinessAndSchedule(builder.NewScheduleBuilder().
		WithHours("09:00", "12:00").
		WithMaxAdvanceDays(2))
	f.clock.Set(time.Date(2025, 3, 3, 9, 30, 0, 0, time.UTC))
	f.appointments.EXPECT().FindOccupying(gomock.Any(), f.biz.ID(), day, day.AddDate(0, 0, 1)).Return(nil, nil)
	f.blocks.EXPECT().FindInRange(gomock.Any(), f.biz.ID(), day, day.AddDate(0, 0, 1)).Return(nil, nil)

	got, err = f.queries().GetDaySlots(context.Background(), f.biz.ID(), "2025-03-05")
	require.NoError(t, err)
	assert.Len(t, got.Slots, 1)
}

func TestGetRangeSlots(t *testing.T) {
	t.Run("misses share a single storage fetch", func(t *testing.T) {
		f := newAvailabilityFixture(t, "UTC")
		f.expectBusinessAndSchedule(builder.NewScheduleBuilder().WithHours("09:00", "11:00"))

		mon := time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC)
		f.cache.EXPECT().Get(gomock.Any(), f.biz.ID(), "2025-03-03").Return(nil, "3", false)
		f.cache.EXPECT().Get(gomock.Any(), f.biz.ID(), "2025-03-04").Return([]interval.Interval{
			{Start: mon.AddDate(0, 0, 1).Add(9 * time.Hour), End: mon.AddDate(0, 0, 1).Add(10 * time.Hour)},
		}, "3", true)
		f.cache.EXPECT().Get(gomock.Any(), f.biz.ID(), "2025-03-05").Return(nil, "3", false)
		f.appointments.EXPECT().FindOccupying(gomock.Any(), f.biz.ID(), mon, mon.AddDate(0, 0, 3)).Return(nil, nil)
		f.blocks.EXPECT().FindInRange(gomock.Any(), f.biz.ID(), mon, mon.AddDate(0, 0, 3)).Return([]*queries.BlockedSlotView{
			{Start: mon.AddDate(0, 0, 2).Add(9 * time.Hour), End: mon.AddDate(0, 0, 2).Add(10 * time.Hour)},
		}, nil)
		f.cache.EXPECT().Set(gomock.Any(), f.biz.ID(), "2025-03-03", "3", gomock.Len(2), gomock.Any())
		f.cache.EXPECT().Set(gomock.Any(), f.biz.ID(), "2025-03-05", "3", gomock.Len(1), gomock.Any())

		got, err := f.queries().GetRangeSlots(context.Background(), f.biz.ID(), "2025-03-03", "2025-03-05")
		require.NoError(t, err)

		require.Len(t, got, 3)
		assert.Len(t, got[0].Slots, 2)
		assert.Len(t, got[1].Slots, 1)
		assert.Len(t, got[2].Slots, 1)
		assert.Equal(t, mon.AddDate(0, 0, 2).Add(10*time.Hour), got[2].Slots[0].Start)
	})

	t.Run("rejections", func(t *testing.T) {
		testCases := []struct {
			name    string
			from    string
			to      string
			wantErr error
		}{
			{name: "malformed date", from: "03/03/2025", to: "2025-03-04", wantErr: queries.ErrInvalidDate},
			{name: "reversed range", from: "2025-03-05", to: "2025-03-03", wantErr: queries.ErrInvalidDateRange},
			{name: "longer than the cap", from: "2025-03-01", to: "2025-03-08", wantErr: queries.ErrRangeTooLarge},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				f := newAvailabilityFixture(t, "UTC")
				f.businesses.EXPECT().FindByID(gomock.Any(), f.biz.ID()).Return(f.biz, nil)

				_, err := f.queries().GetRangeSlots(context.Background(), f.biz.ID(), tc.from, tc.to)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})

	t.Run("unknown business", func(t *testing.T) {
		f := newAvailabilityFixture(t, "UTC")
		f.businesses.EXPECT().FindByID(gomock.Any(), f.biz.ID()).Return(nil, infra.WrapRepoErr("business not found", nil, infra.KindNotFound))

		_, err := f.queries().GetDaySlots(context.Background(), f.biz.ID(), "2025-03-03")
		assert.ErrorIs(t, err, queries.ErrBusinessNotFound)
	})

	t.Run("business without schedule", func(t *testing.T) {
		f := newAvailabilityFixture(t, "UTC")
		f.businesses.EXPECT().FindByID(gomock.Any(), f.biz.ID()).Return(f.biz, nil)
		f.schedules.EXPECT().FindByBusinessID(gomock.Any(), f.biz.ID()).Return(nil, infra.WrapRepoErr("schedule not found", nil, infra.KindNotFound))

		_, err := f.queries().GetDaySlots(context.Background(), f.biz.ID(), "2025-03-03")
		assert.ErrorIs(t, err, queries.ErrScheduleNotConfigured)
	})
}
