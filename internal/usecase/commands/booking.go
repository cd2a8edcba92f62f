package commands

import (
	"context"
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/interval"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/pkg/config"
	"github.com/aljonb/sched/internal/pkg/errs"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const maxTokenAttempts = 3

var errTokenCollision = errs.New("booking token collision")

type BookingRequest struct {
	BusinessID    uuid.UUID
	Start         time.Time
	End           time.Time
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
}

type BookingCommands interface {
	// TryCreateAppointment atomically checks the proposed interval against
	// time-occupying appointments and blocks and inserts it when free.
	TryCreateAppointment(ctx context.Context, req BookingRequest) (*appointment.Appointment, error)
}

type bookingCommandsImpl struct {
	uow    shared.UnitOfWork
	cache  shared.SlotCache
	clock  clock.Clock
	tokens appointment.TokenGenerator
	skew   time.Duration
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	cache shared.SlotCache,
	clk clock.Clock,
	tokens appointment.TokenGenerator,
	cfg config.BookingConfig,
) BookingCommands {
	skew := cfg.ClockSkew
	if skew < 0 {
		skew = appointment.DefaultClockSkew
	}
	return &bookingCommandsImpl{
		uow:    uow,
		cache:  cache,
		clock:  clk,
		tokens: tokens,
		skew:   skew,
	}
}

func (b *bookingCommandsImpl) TryCreateAppointment(ctx context.Context, req BookingRequest) (created *appointment.Appointment, err error) {
	ctx, span := tracer.Start(ctx, "BookingCommands.TryCreateAppointment", trace.WithAttributes(
		attribute.String("business.id", req.BusinessID.String()),
		attribute.String("appointment.start", req.Start.UTC().Format(time.RFC3339)),
	))
	defer func() { endSpan(span, err) }()

	now := b.clock.Now()
	slot := interval.Interval{Start: req.Start, End: req.End}
	if err := appointment.ValidateProposal(slot, now, b.skew); err != nil {
		return nil, errs.Mark(err, ErrBookingValidation)
	}
	customer, err := appointment.NewCustomer(req.CustomerName, req.CustomerEmail, req.CustomerPhone, req.Notes)
	if err != nil {
		return nil, errs.Mark(err, ErrBookingValidation)
	}

	for attempt := 1; attempt <= maxTokenAttempts; attempt++ {
		created, err = b.book(ctx, req.BusinessID, slot, customer, now)
		if !errs.Is(err, errTokenCollision) {
			break
		}
		span.AddEvent("token collision", trace.WithAttributes(attribute.Int("attempt", attempt)))
	}
	if err != nil {
		return nil, err
	}

	invalidateSlots(ctx, b.cache, req.BusinessID)
	return created, nil
}

func (b *bookingCommandsImpl) book(
	ctx context.Context,
	businessID uuid.UUID,
	slot interval.Interval,
	customer appointment.Customer,
	now time.Time,
) (*appointment.Appointment, error) {
	services := &appointment.Services{Clock: b.clock, Tokens: b.tokens}

	var created *appointment.Appointment
	err := b.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created = nil
		if err := tx.LockBusiness(ctx, businessID); err != nil {
			return err
		}

		reads := tx.Reads()
		biz, err := reads.BusinessByID(ctx, businessID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBusinessNotFound
			}
			return err
		}
		sched, err := reads.ScheduleByBusinessID(ctx, businessID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrScheduleNotConfigured
			}
			return err
		}

		earliest, latest := sched.BookingWindow(now)
		if slot.Start.Before(earliest.Add(-b.skew)) || slot.Start.After(latest) {
			return errs.Mark(ErrOutsideBookingWindow, ErrBookingValidation)
		}
		if !sched.WithinOpeningHours(slot, biz.Location()) {
			return errs.Mark(ErrOutsideOpeningHours, ErrBookingValidation)
		}

		if err := ensureSlotFree(ctx, reads, businessID, slot); err != nil {
			return err
		}

		appt, err := appointment.NewAppointment(services, businessID, slot, customer, biz.InitialStatus())
		if err != nil {
			return errs.Mark(err, ErrBookingValidation)
		}
		if err := tx.Appointments().Create(ctx, tx.DB(), appt); err != nil {
			switch {
			case infra.IsKind(err, infra.KindConflict):
				return ErrAppointmentConflict
			case infra.IsKind(err, infra.KindDuplicateKey):
				return errs.Mark(err, errTokenCollision)
			}
			return err
		}

		if err := tx.Outbox().Append(ctx, tx.DB(), shared.DomainEvent{
			Type:        shared.EventAppointmentBooked,
			BusinessID:  businessID,
			AggregateID: appt.ID(),
			OccurredAt:  now,
			Payload: shared.AppointmentPayload{
				AppointmentID: appt.ID(),
				Start:         appt.Start(),
				End:           appt.End(),
				Status:        appt.Status().String(),
			},
		}); err != nil {
			return err
		}

		created = appt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
