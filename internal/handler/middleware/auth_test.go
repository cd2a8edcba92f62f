//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aljonb/sched/internal/domain/user"
	"github.com/aljonb/sched/internal/handler/middleware"
	"github.com/aljonb/sched/internal/pkg/cookie"
	"github.com/aljonb/sched/internal/pkg/jwt"
	"github.com/aljonb/sched/internal/usecase"
	"github.com/aljonb/sched/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := jwt.NewService("test-secret-key-for-middleware", 15*time.Minute, time.Hour)
	mw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(svc))

	router := gin.New()
	router.GET("/owner", mw.RequireAuth(), mw.RequireRole(user.RoleOwner, user.RoleAdmin), func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": actor.UserID.String(), "role": actor.Role.String()})
	})
	router.GET("/admin", mw.RequireAuth(), mw.RequireRole(user.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	ownerID := uuid.New()
	access, err := svc.GenerateAccessToken(ownerID, user.RoleOwner)
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(ownerID, user.RoleOwner)
	require.NoError(t, err)

	t.Run("bearer token sets the actor", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/owner", nil, access)

		var body map[string]string
		httptest.AssertSuccessResponse(t, rec, http.StatusOK, &body)
		assert.Equal(t, ownerID.String(), body["user_id"])
		assert.Equal(t, "owner", body["role"])
	})

	t.Run("cookie token is accepted", func(t *testing.T) {
		cookies := []*http.Cookie{{Name: cookie.AccessTokenCookieName, Value: access}}
		rec := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/owner", nil, cookies, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing token is 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/owner", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Access token required")
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/owner", nil, refresh)
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("garbage token is 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/owner", nil, "not.a.jwt")
		httptest.AssertErrorResponse(t, rec, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("owner on an admin route is 403", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/admin", nil, access)
		httptest.AssertErrorResponse(t, rec, http.StatusForbidden, "Insufficient permissions")
	})
}
