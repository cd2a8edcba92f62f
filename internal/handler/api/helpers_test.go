//go:build unit

package api_test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/aljonb/sched/internal/domain/user"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withActor stands in for RequireAuth on owner routes.
func withActor(actor shared.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", actor.UserID)
		c.Set("user_role", actor.Role)
		c.Next()
	}
}

func newOwner() shared.Actor {
	return shared.NewActor(uuid.New(), user.RoleOwner)
}

func assertErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	require.Equal(t, status, rec.Code, rec.Body.String())

	var body struct {
		Error struct {
			Message string `json:"message"`
			Code    string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, code, body.Error.Code)
}
