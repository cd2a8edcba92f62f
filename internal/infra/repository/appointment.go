package repository

import (
	"context"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/repository/converter"
	"github.com/aljonb/sched/internal/infra/sqlc"
)

type AppointmentWriteQueries interface {
	CreateAppointment(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateAppointmentParams) error
	UpdateAppointmentStatus(ctx context.Context, db sqlc.DBTX, arg sqlc.UpdateAppointmentStatusParams) (int64, error)
}

type AppointmentRepository struct {
	queries AppointmentWriteQueries
}

func NewAppointmentRepository(queries AppointmentWriteQueries) *AppointmentRepository {
	return &AppointmentRepository{queries: queries}
}

// Create inserts a validated appointment. An exclusion violation comes back as
// KindConflict and a token collision as KindDuplicateKey.
func (r *AppointmentRepository) Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := r.queries.CreateAppointment(ctx, tx, converter.AppointmentToCreateParams(a)); err != nil {
		return infra.WrapRepoErr("failed to create appointment", err)
	}
	return nil
}

func (r *AppointmentRepository) UpdateStatus(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error {
	if err := a.Validate(); err != nil {
		return err
	}
	rows, err := r.queries.UpdateAppointmentStatus(ctx, tx, converter.AppointmentToStatusParams(a))
	if err != nil {
		return infra.WrapRepoErr("failed to update appointment status", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("appointment not found", nil, infra.KindNotFound)
	}
	return nil
}
