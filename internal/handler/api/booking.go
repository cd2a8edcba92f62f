package api

import (
	"net/http"

	reqdto "github.com/aljonb/sched/internal/handler/dto/request"
	resdto "github.com/aljonb/sched/internal/handler/dto/response"
	"github.com/aljonb/sched/internal/handler/httperr"
	"github.com/aljonb/sched/internal/infra/export"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/usecase/commands"
	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// BookingHandler serves the customer side: booking and token self-service.
type BookingHandler struct {
	booking      commands.BookingCommands
	appointments commands.AppointmentCommands
	q            queries.AppointmentQueries
	businesses   queries.BusinessQueries
	clock        clock.Clock
}

func NewBookingHandler(
	booking commands.BookingCommands,
	appointments commands.AppointmentCommands,
	q queries.AppointmentQueries,
	businesses queries.BusinessQueries,
	clk clock.Clock,
) *BookingHandler {
	return &BookingHandler{
		booking:      booking,
		appointments: appointments,
		q:            q,
		businesses:   businesses,
		clock:        clk,
	}
}

// @Summary Book an appointment
// @Description Atomically books the interval if it is free. A 409 carries code appointment_conflict or blocked_conflict.
// @Tags appointments
// @Accept json
// @Produce json
// @Param id path string true "Business ID"
// @Param request body reqdto.CreateAppointmentRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 429 {object} httperr.Response
// @Router /businesses/{id}/appointments [post]
func (h *BookingHandler) Create(c *gin.Context) {
	businessID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	created, err := h.booking.TryCreateAppointment(c.Request.Context(), commands.BookingRequest{
		BusinessID:    businessID,
		Start:         req.Start,
		End:           req.End,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Notes:         req.Notes,
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

// @Summary Get appointment by token
// @Tags appointments
// @Produce json
// @Param token path string true "Appointment token"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Router /appointments/{token} [get]
func (h *BookingHandler) GetByToken(c *gin.Context) {
	view, err := h.q.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromAppointmentView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Cancel appointment by token
// @Tags appointments
// @Produce json
// @Param token path string true "Appointment token"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /appointments/{token}/cancel [post]
func (h *BookingHandler) Cancel(c *gin.Context) {
	cancelled, err := h.appointments.CancelByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(cancelled))
}

// @Summary Download appointment as iCalendar
// @Tags appointments
// @Produce text/calendar
// @Param token path string true "Appointment token"
// @Success 200 {file} file
// @Failure 404 {object} httperr.Response
// @Router /appointments/{token}/calendar.ics [get]
func (h *BookingHandler) Calendar(c *gin.Context) {
	ctx := c.Request.Context()
	view, err := h.q.GetByToken(ctx, c.Param("token"))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	biz, err := h.businesses.GetBusiness(ctx, view.BusinessID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	body := export.AppointmentICS(view, biz.Name, h.clock.Now())
	c.Header("Content-Disposition", `attachment; filename="appointment.ics"`)
	c.Data(http.StatusOK, export.ICSContentType, []byte(body))
}
