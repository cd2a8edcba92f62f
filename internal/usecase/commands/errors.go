package commands

import (
	"github.com/aljonb/sched/internal/pkg/errs"
)

var (
	// Booking guard outcomes
	ErrBookingValidation    = errs.New("booking validation failed")
	ErrOutsideBookingWindow = errs.New("appointment start is outside the booking window")
	ErrOutsideOpeningHours  = errs.New("appointment is outside opening hours")
	ErrAppointmentConflict  = errs.New("time slot overlaps an existing appointment")
	ErrBlockedConflict      = errs.New("time slot overlaps a blocked period")

	ErrBusinessNotFound         = errs.New("business not found")
	ErrScheduleNotConfigured    = errs.New("business has no schedule configured")
	ErrAppointmentNotFound      = errs.New("appointment not found")
	ErrBlockedSlotNotFound      = errs.New("blocked slot not found")
	ErrBlockOverlapsAppointment = errs.New("blocked period overlaps an active appointment")
	ErrForbidden                = errs.New("not allowed to manage this business")
	ErrInvalidInput             = errs.New("invalid input")
)
