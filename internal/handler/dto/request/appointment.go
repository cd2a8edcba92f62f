package request

import "time"

type CreateAppointmentRequest struct {
	Start         time.Time `json:"start" binding:"required"`
	End           time.Time `json:"end" binding:"required"`
	CustomerName  string    `json:"customer_name" binding:"required"`
	CustomerEmail string    `json:"customer_email" binding:"required"`
	CustomerPhone string    `json:"customer_phone,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ListAppointmentsQuery times are RFC 3339.
type ListAppointmentsQuery struct {
	From   *time.Time `form:"from"`
	To     *time.Time `form:"to"`
	Status *string    `form:"status"`
	Cursor string     `form:"cursor"`
	Limit  int        `form:"limit" binding:"omitempty,min=1"`
}

type SlotsQuery struct {
	Date string `form:"date"`
	From string `form:"from"`
	To   string `form:"to"`
}
