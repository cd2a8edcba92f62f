package queries

import (
	"context"
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/domain/interval"
	"github.com/aljonb/sched/internal/domain/schedule"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/pkg/config"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/aljonb/sched/internal/usecase/queries")

type AvailabilityQueries interface {
	GetDaySlots(ctx context.Context, businessID uuid.UUID, date string) (*DaySlots, error)
	// GetRangeSlots covers from..to inclusive, one entry per civil date.
	GetRangeSlots(ctx context.Context, businessID uuid.UUID, from, to string) ([]*DaySlots, error)
}

type AvailabilityConfig struct {
	MaxRangeDays int
	CacheTTL     time.Duration
}

func NewAvailabilityConfig(booking config.BookingConfig, redis config.RedisConfig) AvailabilityConfig {
	return AvailabilityConfig{
		MaxRangeDays: booking.MaxRangeDays,
		CacheTTL:     redis.SlotCacheTTL,
	}
}

type availabilityQueriesImpl struct {
	businesses   BusinessReadStore
	schedules    ScheduleReadStore
	appointments AppointmentReadStore
	blocks       BlockedSlotReadStore
	cache        shared.SlotCache
	clock        clock.Clock
	cfg          AvailabilityConfig
}

func NewAvailabilityQueries(
	businesses BusinessReadStore,
	schedules ScheduleReadStore,
	appointments AppointmentReadStore,
	blocks BlockedSlotReadStore,
	cache shared.SlotCache,
	clk clock.Clock,
	cfg AvailabilityConfig,
) AvailabilityQueries {
	if cfg.MaxRangeDays <= 0 {
		cfg.MaxRangeDays = 31
	}
	return &availabilityQueriesImpl{
		businesses:   businesses,
		schedules:    schedules,
		appointments: appointments,
		blocks:       blocks,
		cache:        cache,
		clock:        clk,
		cfg:          cfg,
	}
}

func (q *availabilityQueriesImpl) GetDaySlots(ctx context.Context, businessID uuid.UUID, date string) (*DaySlots, error) {
	days, err := q.GetRangeSlots(ctx, businessID, date, date)
	if err != nil {
		return nil, err
	}
	return days[0], nil
}

func (q *availabilityQueriesImpl) GetRangeSlots(ctx context.Context, businessID uuid.UUID, from, to string) (_ []*DaySlots, err error) {
	ctx, span := tracer.Start(ctx, "availability.range", trace.WithAttributes(
		attribute.String("business_id", businessID.String()),
		attribute.String("from", from),
		attribute.String("to", to),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	biz, err := findBusiness(ctx, q.businesses, businessID)
	if err != nil {
		return nil, err
	}
	first, err := biz.ParseDate(from)
	if err != nil {
		return nil, ErrInvalidDate
	}
	last, err := biz.ParseDate(to)
	if err != nil {
		return nil, ErrInvalidDate
	}
	if last.Before(first) {
		return nil, ErrInvalidDateRange
	}

	days := make([]time.Time, 0, 1)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		if len(days) == q.cfg.MaxRangeDays {
			return nil, ErrRangeTooLarge
		}
		days = append(days, d)
	}

	sched, err := findSchedule(ctx, q.schedules, businessID)
	if err != nil {
		return nil, err
	}

	now := q.clock.Now()
	earliest, latest := sched.BookingWindow(now)
	loc := biz.Location()

	result := make([]*DaySlots, len(days))
	versions := make([]string, len(days))
	var misses []int
	for i, d := range days {
		if !cacheable(d, latest) {
			misses = append(misses, i)
			continue
		}
		date := d.Format(business.DateLayout)
		cached, version, ok := q.cache.Get(ctx, businessID, date)
		versions[i] = version
		if !ok {
			misses = append(misses, i)
			continue
		}
		result[i] = toDaySlots(date, loc, refilter(cached, now, earliest, latest))
	}
	span.SetAttributes(attribute.Int("cache_misses", len(misses)))
	if len(misses) == 0 {
		return result, nil
	}

	// one fetch covers every missed day
	rangeStart := days[misses[0]]
	rangeEnd := days[misses[len(misses)-1]].AddDate(0, 0, 1)
	booked, blocks, err := q.occupiedBetween(ctx, businessID, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}

	for _, i := range misses {
		date := days[i].Format(business.DateLayout)
		slots, err := schedule.GenerateAvailableSlots(sched, days[i], booked, blocks, now)
		if err != nil {
			return nil, err
		}
		if versions[i] != "" {
			q.cache.Set(ctx, businessID, date, versions[i], slots, q.cfg.CacheTTL)
		}
		result[i] = toDaySlots(date, loc, slots)
	}
	return result, nil
}

// cacheable reports whether the whole day lies inside the max-advance bound.
// That bound moves forward with time, so a day it cuts through would hide
// slots that enter the window while the entry lives.
func cacheable(day, latest time.Time) bool {
	return !day.AddDate(0, 0, 1).After(latest)
}

func (q *availabilityQueriesImpl) occupiedBetween(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]appointment.Booked, []interval.Interval, error) {
	booked, err := q.appointments.FindOccupying(ctx, businessID, from, to)
	if err != nil {
		return nil, nil, err
	}
	views, err := q.blocks.FindInRange(ctx, businessID, from, to)
	if err != nil {
		return nil, nil, err
	}
	blocks := make([]interval.Interval, 0, len(views))
	for _, v := range views {
		blocks = append(blocks, interval.Interval{Start: v.Start, End: v.End})
	}
	return booked, blocks, nil
}

// refilter applies the current booking window to slots computed earlier.
func refilter(slots []interval.Interval, now, earliest, latest time.Time) []interval.Interval {
	out := make([]interval.Interval, 0, len(slots))
	for _, s := range slots {
		if !s.End.After(now) || s.Start.Before(earliest) || s.Start.After(latest) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func toDaySlots(date string, loc *time.Location, slots []interval.Interval) *DaySlots {
	views := make([]SlotView, 0, len(slots))
	for _, s := range slots {
		views = append(views, SlotView{Start: s.Start.In(loc), End: s.End.In(loc)})
	}
	return &DaySlots{Date: date, Timezone: loc.String(), Slots: views}
}
