package commands

import (
	"context"
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/pkg/errs"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type AppointmentCommands interface {
	ChangeStatus(ctx context.Context, actor shared.Actor, businessID, appointmentID uuid.UUID, to string) (*appointment.Appointment, error)
	CancelByToken(ctx context.Context, rawToken string) (*appointment.Appointment, error)
}

type appointmentCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.SlotCache
	clock clock.Clock
}

func NewAppointmentCommands(uow shared.UnitOfWork, cache shared.SlotCache, clk clock.Clock) AppointmentCommands {
	return &appointmentCommandsImpl{
		uow:   uow,
		cache: cache,
		clock: clk,
	}
}

// ChangeStatus applies an owner transition. Reactivating a cancelled
// appointment re-runs the conflict checks under the business lock.
func (c *appointmentCommandsImpl) ChangeStatus(
	ctx context.Context,
	actor shared.Actor,
	businessID, appointmentID uuid.UUID,
	to string,
) (updated *appointment.Appointment, err error) {
	ctx, span := tracer.Start(ctx, "AppointmentCommands.ChangeStatus", trace.WithAttributes(
		attribute.String("business.id", businessID.String()),
		attribute.String("appointment.id", appointmentID.String()),
		attribute.String("appointment.status", to),
	))
	defer func() { endSpan(span, err) }()

	target, err := appointment.NewStatus(to)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	now := c.clock.Now()
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		updated = nil
		if err := tx.LockBusiness(ctx, businessID); err != nil {
			return err
		}
		reads := tx.Reads()
		if _, err := loadManagedBusiness(ctx, reads, actor, businessID); err != nil {
			return err
		}

		appt, err := reads.AppointmentByID(ctx, appointmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}
		if appt.BusinessID() != businessID {
			return ErrAppointmentNotFound
		}

		previous := appt.Status()
		if previous.Reactivates(target) {
			if err := ensureSlotFree(ctx, reads, businessID, appt.Slot()); err != nil {
				return err
			}
		}
		if err := appt.ChangeStatus(target, now); err != nil {
			return err
		}

		if err := saveStatus(ctx, tx, appt, previous, now); err != nil {
			return err
		}
		updated = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateSlots(ctx, c.cache, businessID)
	return updated, nil
}

func (c *appointmentCommandsImpl) CancelByToken(ctx context.Context, rawToken string) (cancelled *appointment.Appointment, err error) {
	ctx, span := tracer.Start(ctx, "AppointmentCommands.CancelByToken")
	defer func() { endSpan(span, err) }()

	token, err := appointment.ParseToken(rawToken)
	if err != nil {
		return nil, ErrAppointmentNotFound
	}

	now := c.clock.Now()
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cancelled = nil
		appt, err := tx.Reads().AppointmentByToken(ctx, token)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrAppointmentNotFound
			}
			return err
		}

		previous := appt.Status()
		if err := appt.CancelByCustomer(now); err != nil {
			return err
		}
		if err := saveStatus(ctx, tx, appt, previous, now); err != nil {
			return err
		}
		cancelled = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	invalidateSlots(ctx, c.cache, cancelled.BusinessID())
	return cancelled, nil
}

func saveStatus(ctx context.Context, tx shared.Tx, appt *appointment.Appointment, previous appointment.Status, now time.Time) error {
	if err := tx.Appointments().UpdateStatus(ctx, tx.DB(), appt); err != nil {
		switch {
		case infra.IsKind(err, infra.KindConflict):
			return ErrAppointmentConflict
		case infra.IsKind(err, infra.KindNotFound):
			return ErrAppointmentNotFound
		}
		return err
	}

	return tx.Outbox().Append(ctx, tx.DB(), shared.DomainEvent{
		Type:        shared.EventAppointmentStatusChanged,
		BusinessID:  appt.BusinessID(),
		AggregateID: appt.ID(),
		OccurredAt:  now,
		Payload: shared.AppointmentPayload{
			AppointmentID:  appt.ID(),
			Start:          appt.Start(),
			End:            appt.End(),
			Status:         appt.Status().String(),
			PreviousStatus: previous.String(),
		},
	})
}
