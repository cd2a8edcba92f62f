package api

import (
	"net/http"

	reqdto "github.com/aljonb/sched/internal/handler/dto/request"
	resdto "github.com/aljonb/sched/internal/handler/dto/response"
	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary List bookable slots
// @Description Either date, or from and to (inclusive, YYYY-MM-DD in the business timezone).
// @Tags businesses
// @Produce json
// @Param id path string true "Business ID"
// @Param date query string false "Single date"
// @Param from query string false "First date of a range"
// @Param to query string false "Last date of a range"
// @Success 200 {object} resdto.DaySlotsResponse
// @Success 200 {object} resdto.RangeSlotsResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id}/slots [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	businessID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	var q reqdto.SlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query")
		return
	}

	switch {
	case q.Date != "" && q.From == "" && q.To == "":
		day, err := h.q.GetDaySlots(c.Request.Context(), businessID, q.Date)
		if err != nil {
			abortWithUsecaseError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromDaySlots(day))
	case q.Date == "" && q.From != "" && q.To != "":
		days, err := h.q.GetRangeSlots(c.Request.Context(), businessID, q.From, q.To)
		if err != nil {
			abortWithUsecaseError(c, err)
			return
		}
		c.JSON(http.StatusOK, resdto.FromRangeSlots(days))
	default:
		abortBadRequest(c, nil, "Provide either date or both from and to")
	}
}
