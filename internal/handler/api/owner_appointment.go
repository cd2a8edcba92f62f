package api

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	reqdto "github.com/aljonb/sched/internal/handler/dto/request"
	resdto "github.com/aljonb/sched/internal/handler/dto/response"
	"github.com/aljonb/sched/internal/handler/httperr"
	"github.com/aljonb/sched/internal/infra/export"
	"github.com/aljonb/sched/internal/usecase/commands"
	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type OwnerAppointmentHandler struct {
	cmds       commands.AppointmentCommands
	q          queries.AppointmentQueries
	businesses queries.BusinessQueries
}

func NewOwnerAppointmentHandler(cmds commands.AppointmentCommands, q queries.AppointmentQueries, businesses queries.BusinessQueries) *OwnerAppointmentHandler {
	return &OwnerAppointmentHandler{cmds: cmds, q: q, businesses: businesses}
}

// @Summary List appointments
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param from query string false "RFC 3339 lower bound on start"
// @Param to query string false "RFC 3339 upper bound on start"
// @Param status query string false "Status filter"
// @Param cursor query string false "Pagination cursor"
// @Param limit query int false "Page size"
// @Success 200 {object} resdto.AppointmentListResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /owner/businesses/{id}/appointments [get]
func (h *OwnerAppointmentHandler) List(c *gin.Context) {
	actor, businessID, ok := ownerRequest(c)
	if !ok {
		return
	}
	var q reqdto.ListAppointmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query")
		return
	}

	page, err := h.q.ListForBusiness(c.Request.Context(), actor, businessID, toFilter(q), q.Cursor, q.Limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromAppointmentPage(page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Change appointment status
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param appointmentId path string true "Appointment ID"
// @Param request body reqdto.ChangeStatusRequest true "New status"
// @Success 200 {object} resdto.AppointmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /owner/businesses/{id}/appointments/{appointmentId}/status [patch]
func (h *OwnerAppointmentHandler) ChangeStatus(c *gin.Context) {
	actor, businessID, ok := ownerRequest(c)
	if !ok {
		return
	}
	appointmentID, ok := uuidParam(c, "appointmentId")
	if !ok {
		return
	}
	var req reqdto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	updated, err := h.cmds.ChangeStatus(c.Request.Context(), actor, businessID, appointmentID, req.Status)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAppointment(updated))
}

// @Summary Export appointments
// @Description Spreadsheet of appointments with times in the business timezone
// @Tags owner
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param from query string false "RFC 3339 lower bound on start"
// @Param to query string false "RFC 3339 upper bound on start"
// @Param status query string false "Status filter"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /owner/businesses/{id}/appointments/export [get]
func (h *OwnerAppointmentHandler) Export(c *gin.Context) {
	actor, businessID, ok := ownerRequest(c)
	if !ok {
		return
	}
	var q reqdto.ListAppointmentsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query")
		return
	}

	ctx := c.Request.Context()
	filter := toFilter(q)
	rows, err := h.q.Export(ctx, actor, businessID, filter)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	biz, err := h.businesses.GetBusiness(ctx, businessID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	loc, err := time.LoadLocation(biz.Timezone)
	if err != nil {
		slog.Warn("unknown business timezone, exporting in UTC", "business_id", businessID, "timezone", biz.Timezone)
		loc = time.UTC
	}

	buf, err := export.AppointmentsXLSX(rows, loc)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build export", nil)
		return
	}

	filename := export.XLSXFilename(biz.Name, filter.From.In(loc), filter.To.In(loc))
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+url.QueryEscape(filename))
	c.Data(http.StatusOK, export.XLSXContentType, buf.Bytes())
}

func toFilter(q reqdto.ListAppointmentsQuery) queries.AppointmentFilter {
	f := queries.AppointmentFilter{Status: q.Status}
	if q.From != nil {
		f.From = *q.From
	}
	if q.To != nil {
		f.To = *q.To
	}
	return f
}
