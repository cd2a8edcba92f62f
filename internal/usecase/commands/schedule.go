package commands

import (
	"context"
	"time"

	"github.com/aljonb/sched/internal/domain/schedule"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/pkg/errs"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type BreakInput struct {
	Start string
	End   string
}

type UpsertScheduleRequest struct {
	AvailableDays            []string
	OpensAt                  string
	ClosesAt                 string
	Breaks                   []BreakInput
	SlotDurationMinutes      int
	MinAdvanceBookingMinutes int
	MaxAdvanceBookingDays    int
}

type ScheduleCommands interface {
	Upsert(ctx context.Context, actor shared.Actor, businessID uuid.UUID, req UpsertScheduleRequest) (*schedule.BusinessSchedule, error)
}

type scheduleCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.SlotCache
	clock clock.Clock
}

func NewScheduleCommands(uow shared.UnitOfWork, cache shared.SlotCache, clk clock.Clock) ScheduleCommands {
	return &scheduleCommandsImpl{
		uow:   uow,
		cache: cache,
		clock: clk,
	}
}

// Upsert replaces the business schedule. Every rejection is marked
// schedule.ErrInvalidSchedule.
func (c *scheduleCommandsImpl) Upsert(
	ctx context.Context,
	actor shared.Actor,
	businessID uuid.UUID,
	req UpsertScheduleRequest,
) (saved *schedule.BusinessSchedule, err error) {
	ctx, span := tracer.Start(ctx, "ScheduleCommands.Upsert", trace.WithAttributes(
		attribute.String("business.id", businessID.String()),
	))
	defer func() { endSpan(span, err) }()

	now := c.clock.Now()
	sched, err := buildSchedule(businessID, req, now)
	if err != nil {
		return nil, err
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := loadManagedBusiness(ctx, tx.Reads(), actor, businessID); err != nil {
			return err
		}
		if err := tx.Schedules().Upsert(ctx, tx.DB(), sched); err != nil {
			return err
		}
		return tx.Outbox().Append(ctx, tx.DB(), shared.DomainEvent{
			Type:        shared.EventScheduleUpdated,
			BusinessID:  businessID,
			AggregateID: businessID,
			OccurredAt:  now,
			Payload:     shared.SchedulePayload{SlotDurationMinutes: sched.SlotDurationMinutes()},
		})
	})
	if err != nil {
		return nil, err
	}

	invalidateSlots(ctx, c.cache, businessID)
	return sched, nil
}

func buildSchedule(businessID uuid.UUID, req UpsertScheduleRequest, now time.Time) (*schedule.BusinessSchedule, error) {
	days, err := schedule.ParseWeekdays(req.AvailableDays)
	if err != nil {
		return nil, errs.Mark(err, schedule.ErrInvalidSchedule)
	}
	opens, err := schedule.ParseTimeOfDay(req.OpensAt)
	if err != nil {
		return nil, errs.Mark(err, schedule.ErrInvalidSchedule)
	}
	closes, err := schedule.ParseTimeOfDay(req.ClosesAt)
	if err != nil {
		return nil, errs.Mark(err, schedule.ErrInvalidSchedule)
	}

	breaks := make([]schedule.Break, 0, len(req.Breaks))
	for _, in := range req.Breaks {
		start, err := schedule.ParseTimeOfDay(in.Start)
		if err != nil {
			return nil, errs.Mark(err, schedule.ErrInvalidSchedule)
		}
		end, err := schedule.ParseTimeOfDay(in.End)
		if err != nil {
			return nil, errs.Mark(err, schedule.ErrInvalidSchedule)
		}
		br, err := schedule.NewBreak(start, end)
		if err != nil {
			return nil, err
		}
		breaks = append(breaks, br)
	}

	return schedule.New(schedule.Params{
		BusinessID:               businessID,
		AvailableDays:            days,
		OpensAt:                  opens,
		ClosesAt:                 closes,
		Breaks:                   breaks,
		SlotDurationMinutes:      req.SlotDurationMinutes,
		MinAdvanceBookingMinutes: req.MinAdvanceBookingMinutes,
		MaxAdvanceBookingDays:    req.MaxAdvanceBookingDays,
		UpdatedAt:                now,
	})
}
