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
)

const (
	defaultTimezone    = "UTC"
	defaultAutoConfirm = true
)

type BusinessHandler struct {
	cmds commands.BusinessCommands
	q    queries.BusinessQueries
}

func NewBusinessHandler(cmds commands.BusinessCommands, q queries.BusinessQueries) *BusinessHandler {
	return &BusinessHandler{cmds: cmds, q: q}
}

// @Summary Create business
// @Description Create a business owned by the caller
// @Tags owner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBusinessRequest true "Create business request"
// @Success 201 {object} resdto.BusinessResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /owner/businesses [post]
func (h *BusinessHandler) Create(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req reqdto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortBadRequest(c, err, "Invalid request")
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), actor, commands.CreateBusinessRequest{
		Name:        req.Name,
		Timezone:    patch.Coalesce(req.Timezone, defaultTimezone),
		AutoConfirm: patch.Coalesce(req.AutoConfirm, defaultAutoConfirm),
	})
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	res, err := resdto.FromBusinessView(queries.ToBusinessView(created))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// @Summary List own businesses
// @Tags owner
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BusinessResponse
// @Failure 401 {object} httperr.Response
// @Router /owner/businesses [get]
func (h *BusinessHandler) ListOwned(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.q.ListOwned(c.Request.Context(), actor.UserID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromBusinessViews(views)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get business
// @Tags businesses
// @Produce json
// @Param id path string true "Business ID"
// @Success 200 {object} resdto.BusinessResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /businesses/{id} [get]
func (h *BusinessHandler) Get(c *gin.Context) {
	id, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetBusiness(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	res, err := resdto.FromBusinessView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}
