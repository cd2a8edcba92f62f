package api

import (
	"context"
	"net/http"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/schedule"
	"github.com/aljonb/sched/internal/handler/httperr"
	"github.com/aljonb/sched/internal/pkg/errs"
	"github.com/aljonb/sched/internal/usecase/commands"
	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

const (
	CodeAppointmentConflict = "appointment_conflict"
	CodeBlockedConflict     = "blocked_conflict"
	CodeValidation          = "validation_error"
	CodeInvalidSchedule     = "invalid_schedule"
)

type errorMapping struct {
	target  error
	status  int
	code    string
	message string
	// showCause puts the underlying error text in the response detail.
	showCause bool
}

// Order matters: marked errors match both their cause and their mark, so the
// more specific sentinel comes first.
var errorMappings = []errorMapping{
	{target: commands.ErrAppointmentConflict, status: http.StatusConflict, code: CodeAppointmentConflict, message: "Time slot is already booked"},
	{target: commands.ErrBlockedConflict, status: http.StatusConflict, code: CodeBlockedConflict, message: "Time slot is blocked"},
	{target: commands.ErrBlockOverlapsAppointment, status: http.StatusConflict, code: "block_overlaps_appointment", message: "Blocked period overlaps an active appointment"},
	{target: appointment.ErrInvalidTransition, status: http.StatusConflict, code: "invalid_transition", message: "Status transition not allowed"},
	{target: appointment.ErrNotCancellable, status: http.StatusConflict, code: "not_cancellable", message: "Appointment can no longer be cancelled"},

	{target: commands.ErrOutsideBookingWindow, status: http.StatusBadRequest, code: "outside_booking_window", message: "Appointment start is outside the booking window"},
	{target: commands.ErrOutsideOpeningHours, status: http.StatusBadRequest, code: "outside_opening_hours", message: "Appointment is outside opening hours"},
	{target: commands.ErrBookingValidation, status: http.StatusBadRequest, code: CodeValidation, message: "Invalid booking request", showCause: true},
	{target: commands.ErrInvalidInput, status: http.StatusBadRequest, code: CodeValidation, message: "Invalid request data", showCause: true},
	{target: schedule.ErrInvalidSchedule, status: http.StatusUnprocessableEntity, code: CodeInvalidSchedule, message: "Invalid schedule", showCause: true},

	{target: queries.ErrInvalidDate, status: http.StatusBadRequest, code: "invalid_date", message: "Dates must be formatted as YYYY-MM-DD"},
	{target: queries.ErrInvalidDateRange, status: http.StatusBadRequest, code: "invalid_date_range", message: "Range end must not be before its start"},
	{target: queries.ErrRangeTooLarge, status: http.StatusBadRequest, code: "range_too_large", message: "Date range is too large"},
	{target: queries.ErrInvalidCursor, status: http.StatusBadRequest, code: "invalid_cursor", message: "Invalid cursor"},
	{target: appointment.ErrInvalidStatus, status: http.StatusBadRequest, code: CodeValidation, message: "Unknown appointment status"},

	{target: commands.ErrForbidden, status: http.StatusForbidden, code: "forbidden", message: "Not allowed to manage this business"},
	{target: queries.ErrForbidden, status: http.StatusForbidden, code: "forbidden", message: "Not allowed to manage this business"},

	{target: commands.ErrBusinessNotFound, status: http.StatusNotFound, code: "business_not_found", message: "Business not found"},
	{target: queries.ErrBusinessNotFound, status: http.StatusNotFound, code: "business_not_found", message: "Business not found"},
	{target: commands.ErrScheduleNotConfigured, status: http.StatusNotFound, code: "schedule_not_configured", message: "Business has no schedule"},
	{target: queries.ErrScheduleNotConfigured, status: http.StatusNotFound, code: "schedule_not_configured", message: "Business has no schedule"},
	{target: commands.ErrAppointmentNotFound, status: http.StatusNotFound, code: "appointment_not_found", message: "Appointment not found"},
	{target: queries.ErrAppointmentNotFound, status: http.StatusNotFound, code: "appointment_not_found", message: "Appointment not found"},
	{target: commands.ErrBlockedSlotNotFound, status: http.StatusNotFound, code: "blocked_slot_not_found", message: "Blocked slot not found"},

	{target: context.DeadlineExceeded, status: http.StatusServiceUnavailable, code: "timeout", message: "Request timed out"},
}

// abortWithUsecaseError maps a command or query error to its HTTP response.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if !errs.Is(err, m.target) {
			continue
		}
		var detail any
		if m.showCause {
			detail = errs.Cause(err).Error()
		}
		httperr.AbortWithCode(c, m.status, err, m.code, m.message, detail)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}

func abortBadRequest(c *gin.Context, err error, msg string) {
	httperr.AbortWithCode(c, http.StatusBadRequest, err, CodeValidation, msg, nil)
}
