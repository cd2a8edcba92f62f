package readstore

import (
	"context"
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/repository/converter"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/pkg/pgconv"
	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentReadQueries interface {
	GetAppointmentByToken(ctx context.Context, db sqlc.DBTX, token string) (sqlc.Appointments, error)
	ListOverlappingAppointments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingAppointmentsParams) ([]sqlc.Appointments, error)
	ListAppointmentsByBusiness(ctx context.Context, db sqlc.DBTX, arg sqlc.ListAppointmentsByBusinessParams) ([]sqlc.Appointments, error)
}

type AppointmentReadStore struct {
	queries AppointmentReadQueries
	db      sqlc.DBTX
}

func NewAppointmentReadStore(queries AppointmentReadQueries, db sqlc.DBTX) *AppointmentReadStore {
	return &AppointmentReadStore{
		queries: queries,
		db:      db,
	}
}

// FindOccupying returns appointments that hold time and overlap [from, to).
func (r *AppointmentReadStore) FindOccupying(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]appointment.Booked, error) {
	rows, err := r.queries.ListOverlappingAppointments(ctx, r.db, sqlc.ListOverlappingAppointmentsParams{
		BusinessID: businessID,
		RangeStart: pgconv.TimeToPgtype(from),
		RangeEnd:   pgconv.TimeToPgtype(to),
		Statuses:   converter.OccupyingStatusStrings(),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list occupying appointments", err)
	}
	return converter.BookedFromRows(rows), nil
}

func (r *AppointmentReadStore) FindByToken(ctx context.Context, token string) (*queries.AppointmentView, error) {
	row, err := r.queries.GetAppointmentByToken(ctx, r.db, token)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get appointment by token", err)
	}
	return toAppointmentView(row), nil
}

// ListByBusiness pages through appointments overlapping the filter range
// ordered by (start, id). afterStart and afterID are the keyset of the last
// row already returned; a zero afterStart starts from the first page.
func (r *AppointmentReadStore) ListByBusiness(ctx context.Context, businessID uuid.UUID, filter queries.AppointmentFilter, afterStart time.Time, afterID uuid.UUID, limit int32) ([]*queries.AppointmentView, error) {
	params := sqlc.ListAppointmentsByBusinessParams{
		BusinessID: businessID,
		RangeStart: pgconv.TimeToPgtype(filter.From),
		RangeEnd:   pgconv.TimeToPgtype(filter.To),
		Status:     pgconv.StringPtrToPgtype(filter.Status),
		Limit:      limit,
	}
	if !afterStart.IsZero() {
		params.AfterStart = pgconv.TimeToPgtype(afterStart)
		params.AfterID = afterID
	}

	rows, err := r.queries.ListAppointmentsByBusiness(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list appointments", err)
	}
	out := make([]*queries.AppointmentView, 0, len(rows))
	for _, row := range rows {
		out = append(out, toAppointmentView(row))
	}
	return out, nil
}

func toAppointmentView(row sqlc.Appointments) *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:            row.ID,
		BusinessID:    row.BusinessID,
		Start:         row.StartTime.Time,
		End:           row.EndTime.Time,
		Status:        row.Status,
		Token:         row.Token,
		CustomerName:  row.CustomerName,
		CustomerEmail: row.CustomerEmail,
		CustomerPhone: row.CustomerPhone,
		Notes:         row.Notes,
		CancelledAt:   pgconv.TimePtrFromPgtype(row.CancelledAt),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
