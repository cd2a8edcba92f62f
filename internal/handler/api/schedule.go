package api

import (
	"net/http"

	reqdto "github.com/aljonb/sched/internal/handler/dto/request"
	resdto "github.com/aljonb/sched/internal/handler/dto/response"
	"github.com/aljonb/sched/internal/handler/httperr"
	"github.com/aljonb/sched/internal/pkg/patch"
	"github.com/aljonb/sched/internal/usecase/commands"
	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ScheduleHandler struct {
	cmds commands.ScheduleCommands
	q    queries.ScheduleQueries
}

func NewScheduleHandler(cmds commands.ScheduleCommands, q queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, q: q}
}

// @Summary Get business schedule
// @Tags businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id}/schedule [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	businessID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	h.respond(c, businessID)
}

// @Summary Replace business schedule
// @Description Validates and stores the weekly schedule. Cached slots for the business are invalidated.
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param request body reqdto.UpsertScheduleRequest true "Schedule"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /owner/businesses/{id}/schedule [put]
func (h *ScheduleHandler) Upsert(c *gin.Context) {
	actor, businessID, ok := ownerRequest(c)
	if !ok {
		return
	}
	var req reqdto.UpsertScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	breaks := make([]commands.BreakInput, 0, len(req.Breaks))
	for _, b := range req.Breaks {
		breaks = append(breaks, commands.BreakInput{Start: b.Start, End: b.End})
	}

	_, err := h.cmds.Upsert(c.Request.Context(), actor, businessID, commands.UpsertScheduleRequest{
		AvailableDays:            req.AvailableDays,
		OpensAt:                  req.OpensAt,
		ClosesAt:                 req.ClosesAt,
		Breaks:                   breaks,
		SlotDurationMinutes:      req.SlotDurationMinutes,
		MinAdvanceBookingMinutes: patch.Coalesce(req.MinAdvanceBookingMinutes, 0),
		MaxAdvanceBookingDays:    req.MaxAdvanceBookingDays,
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, businessID)
}

func (h *ScheduleHandler) respond(c *gin.Context, businessID uuid.UUID) {
	view, err := h.q.GetSchedule(c.Request.Context(), businessID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromScheduleView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
