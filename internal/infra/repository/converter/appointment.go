package converter

import (
	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/interval"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/pkg/pgconv"
)

func AppointmentToCreateParams(a *appointment.Appointment) sqlc.CreateAppointmentParams {
	c := a.Customer()
	return sqlc.CreateAppointmentParams{
		ID:            a.ID(),
		BusinessID:    a.BusinessID(),
		StartTime:     pgconv.TimeToPgtype(a.Start()),
		EndTime:       pgconv.TimeToPgtype(a.End()),
		Status:        a.Status().String(),
		Token:         a.Token().String(),
		CustomerName:  c.Name(),
		CustomerEmail: c.Email(),
		CustomerPhone: c.Phone(),
		Notes:         c.Notes(),
		CancelledAt:   pgconv.TimePtrToPgtype(a.CancelledAt()),
		CreatedAt:     pgconv.TimeToPgtype(a.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AppointmentToStatusParams(a *appointment.Appointment) sqlc.UpdateAppointmentStatusParams {
	return sqlc.UpdateAppointmentStatusParams{
		ID:          a.ID(),
		Status:      a.Status().String(),
		CancelledAt: pgconv.TimePtrToPgtype(a.CancelledAt()),
		UpdatedAt:   pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

// AppointmentFromRow rebuilds the aggregate and re-checks its invariants.
func AppointmentFromRow(row sqlc.Appointments) (*appointment.Appointment, error) {
	status, err := appointment.NewStatus(row.Status)
	if err != nil {
		return nil, err
	}
	return appointment.ReconstructAppointment(
		row.ID,
		row.BusinessID,
		interval.Interval{Start: row.StartTime.Time, End: row.EndTime.Time},
		status,
		appointment.ReconstructToken(row.Token),
		appointment.ReconstructCustomer(row.CustomerName, row.CustomerEmail, row.CustomerPhone, row.Notes),
		pgconv.TimePtrFromPgtype(row.CancelledAt),
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}

func BookedFromRows(rows []sqlc.Appointments) []appointment.Booked {
	out := make([]appointment.Booked, 0, len(rows))
	for _, row := range rows {
		out = append(out, appointment.Booked{
			Slot:   interval.Interval{Start: row.StartTime.Time, End: row.EndTime.Time},
			Status: appointment.Status(row.Status),
		})
	}
	return out
}

func OccupyingStatusStrings() []string {
	statuses := appointment.OccupyingStatuses()
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = s.String()
	}
	return out
}
