//go:build unit || e2e

package builder

import (
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/interval"
	reqdto "github.com/aljonb/sched/internal/handler/dto/request"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	BusinessID    uuid.UUID
	Start         time.Time
	End           time.Time
	Status        appointment.Status
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Notes         string
	Now           time.Time
}

// NewAppointmentBuilder starts from a confirmed 10:00-11:00 booking on Monday 2025-03-03 UTC.
func NewAppointmentBuilder() *AppointmentBuilder {
	start := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	return &AppointmentBuilder{
		BusinessID:    uuid.New(),
		Start:         start,
		End:           start.Add(time.Hour),
		Status:        appointment.StatusConfirmed,
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+1 555 0100",
		Notes:         "",
		Now:           start.Add(-24 * time.Hour),
	}
}

func (a *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AppointmentBuilder) Slot() interval.Interval {
	return interval.Interval{Start: a.Start, End: a.End}
}

func (a *AppointmentBuilder) BuildCustomer() (appointment.Customer, error) {
	return appointment.NewCustomer(a.CustomerName, a.CustomerEmail, a.CustomerPhone, a.Notes)
}

func (a *AppointmentBuilder) BuildDomain() (*appointment.Appointment, error) {
	customer, err := a.BuildCustomer()
	if err != nil {
		return nil, err
	}
	services := &appointment.Services{
		Clock:  clock.NewMockClock(a.Now),
		Tokens: appointment.NewRandomTokenGenerator(),
	}
	return appointment.NewAppointment(services, a.BusinessID, a.Slot(), customer, a.Status)
}

func (a *AppointmentBuilder) MustBuildDomain() *appointment.Appointment {
	appt, err := a.BuildDomain()
	if err != nil {
		panic(err)
	}
	return appt
}

// BuildBooked returns the view used by the slot calculator, without validation.
func (a *AppointmentBuilder) BuildBooked() appointment.Booked {
	return appointment.Booked{Slot: a.Slot(), Status: a.Status}
}

func (a *AppointmentBuilder) BuildRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		Start:         a.Start,
		End:           a.End,
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		CustomerPhone: a.CustomerPhone,
		Notes:         a.Notes,
	}
}

// BuildView returns the read model a query would load for this appointment.
func (a *AppointmentBuilder) BuildView() *queries.AppointmentView {
	return &queries.AppointmentView{
		ID:            uuid.New(),
		BusinessID:    a.BusinessID,
		Start:         a.Start,
		End:           a.End,
		Status:        a.Status.String(),
		Token:         "tok_test",
		CustomerName:  a.CustomerName,
		CustomerEmail: a.CustomerEmail,
		CustomerPhone: a.CustomerPhone,
		Notes:         a.Notes,
		CreatedAt:     a.Now,
		UpdatedAt:     a.Now,
	}
}

// Fluent builder methods
func (a *AppointmentBuilder) WithBusinessID(id uuid.UUID) *AppointmentBuilder {
	a.BusinessID = id
	return a
}

func (a *AppointmentBuilder) WithSlot(start, end time.Time) *AppointmentBuilder {
	a.Start = start
	a.End = end
	return a
}

func (a *AppointmentBuilder) WithStatus(status appointment.Status) *AppointmentBuilder {
	a.Status = status
	return a
}

func (a *AppointmentBuilder) WithCustomer(name, email, phone string) *AppointmentBuilder {
	a.CustomerName = name
	a.CustomerEmail = email
	a.CustomerPhone = phone
	return a
}

func (a *AppointmentBuilder) WithNotes(notes string) *AppointmentBuilder {
	a.Notes = notes
	return a
}

func (a *AppointmentBuilder) WithNow(now time.Time) *AppointmentBuilder {
	a.Now = now
	return a
}

func (a *AppointmentBuilder) AsPending() *AppointmentBuilder {
	a.Status = appointment.StatusPending
	return a
}
