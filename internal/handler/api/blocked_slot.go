package api

import (
	"net/http"
	"time"

	reqdto "github.com/aljonb/sched/internal/handler/dto/request"
	resdto "github.com/aljonb/sched/internal/handler/dto/response"
	"github.com/aljonb/sched/internal/handler/httperr"
	"github.com/aljonb/sched/internal/pkg/patch"
	"github.com/aljonb/sched/internal/usecase/commands"
	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var zeroTime time.Time

type BlockedSlotHandler struct {
	cmds commands.BlockedSlotCommands
	q    queries.BlockedSlotQueries
}

func NewBlockedSlotHandler(cmds commands.BlockedSlotCommands, q queries.BlockedSlotQueries) *BlockedSlotHandler {
	return &BlockedSlotHandler{cmds: cmds, q: q}
}

// @Summary List blocked slots
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param from query string false "RFC 3339"
// @Param to query string false "RFC 3339"
// @Success 200 {array} resdto.BlockedSlotResponse
// @Failure 403 {object} httperr.Response
// @Router /owner/businesses/{id}/blocked-slots [get]
func (h *BlockedSlotHandler) List(c *gin.Context) {
	actor, businessID, ok := ownerRequest(c)
	if !ok {
		return
	}
	var q reqdto.ListBlockedSlotsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		abortBadRequest(c, err, "Invalid query")
		return
	}

	views, err := h.q.ListForBusiness(c.Request.Context(), actor, businessID,
		patch.Coalesce(q.From, zeroTime), patch.Coalesce(q.To, zeroTime))
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromBlockedSlotViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Block a period
// @Description Rejected with 409 when an active appointment overlaps the period
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param request body reqdto.CreateBlockedSlotRequest true "Blocked slot"
// @Success 201 {object} resdto.BlockedSlotResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /owner/businesses/{id}/blocked-slots [post]
func (h *BlockedSlotHandler) Create(c *gin.Context) {
	actor, businessID, ok := ownerRequest(c)
	if !ok {
		return
	}
	var req reqdto.CreateBlockedSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), actor, businessID, commands.CreateBlockedSlotRequest{
		Start:  req.Start,
		End:    req.End,
		Reason: req.Reason,
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromBlockedSlot(created))
}

// @Summary Remove a blocked slot
// @Tags owner
// @Security BearerAuth
// @Param id path string true "Business ID"
// @Param blockId path string true "Blocked slot ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /owner/businesses/{id}/blocked-slots/{blockId} [delete]
func (h *BlockedSlotHandler) Delete(c *gin.Context) {
	actor, businessID, ok := ownerRequest(c)
	if !ok {
		return
	}
	blockID, ok := uuidParam(c, "blockId")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), actor, businessID, blockID); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
