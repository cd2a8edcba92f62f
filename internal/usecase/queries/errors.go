package queries

import "github.com/aljonb/sched/internal/pkg/errs"

var (
	ErrBusinessNotFound      = errs.New("business not found")
	ErrScheduleNotConfigured = errs.New("business has no schedule configured")
	ErrAppointmentNotFound   = errs.New("appointment not found")
	ErrInvalidDate           = errs.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange      = errs.New("invalid date range")
	ErrRangeTooLarge         = errs.New("date range too large")
	ErrForbidden             = errs.New("not allowed to view this business")
	ErrInvalidCursor         = errs.New("invalid cursor")
)
