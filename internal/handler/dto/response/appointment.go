package response

import (
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentResponse struct {
	ID            uuid.UUID  `json:"id"`
	BusinessID    uuid.UUID  `json:"business_id"`
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	Status        string     `json:"status"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	CustomerPhone string     `json:"customer_phone,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BookingResponse is only returned to whoever made the booking; the token is
// the customer's sole credential for later self-service.
type BookingResponse struct {
	AppointmentResponse
	Token string `json:"token"`
}

type AppointmentListResponse struct {
	Items      []*AppointmentResponse `json:"items"`
	NextCursor string                 `json:"next_cursor,omitempty"`
}

func FromAppointment(a *appointment.Appointment) *AppointmentResponse {
	c := a.Customer()
	return &AppointmentResponse{
		ID:            a.ID(),
		BusinessID:    a.BusinessID(),
		Start:         a.Start(),
		End:           a.End(),
		Status:        a.Status().String(),
		CustomerName:  c.Name(),
		CustomerEmail: c.Email(),
		CustomerPhone: c.Phone(),
		Notes:         c.Notes(),
		CancelledAt:   a.CancelledAt(),
		CreatedAt:     a.CreatedAt(),
		UpdatedAt:     a.UpdatedAt(),
	}
}

func FromBooking(a *appointment.Appointment) *BookingResponse {
	return &BookingResponse{
		AppointmentResponse: *FromAppointment(a),
		Token:               a.Token().String(),
	}
}

func FromAppointmentView(v *queries.AppointmentView) (*AppointmentResponse, error) {
	return copyInto[AppointmentResponse](v)
}

func FromAppointmentPage(p *queries.AppointmentPage) (*AppointmentListResponse, error) {
	items, err := copyAll[AppointmentResponse](p.Items)
	if err != nil {
		return nil, err
	}
	return &AppointmentListResponse{Items: items, NextCursor: p.NextCursor}, nil
}
