package api

import (
	"net/http"

	"github.com/aljonb/sched/internal/handler/httperr"
	"github.com/aljonb/sched/internal/handler/middleware"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortBadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

func requireActor(c *gin.Context) (shared.Actor, bool) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return shared.Actor{}, false
	}
	return actor, true
}

// ownerRequest resolves the caller and the :id business of an owner route.
func ownerRequest(c *gin.Context) (shared.Actor, uuid.UUID, bool) {
	actor, ok := requireActor(c)
	if !ok {
		return shared.Actor{}, uuid.Nil, false
	}
	businessID, ok := uuidParam(c, "id")
	if !ok {
		return shared.Actor{}, uuid.Nil, false
	}
	return actor, businessID, true
}
