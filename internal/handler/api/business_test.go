//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"github.com/aljonb/sched/internal/handler/api"
	resdto "github.com/aljonb/sched/internal/handler/dto/response"
	"github.com/aljonb/sched/internal/usecase/commands"
	"github.com/aljonb/sched/internal/usecase/queries"
	"github.com/aljonb/sched/internal/usecase/shared"
	"github.com/aljonb/sched/tests/common/builder"
	"github.com/aljonb/sched/tests/common/httptest"
	commandsmock "github.com/aljonb/sched/tests/mock/commands"
	queriesmock "github.com/aljonb/sched/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BusinessHandlerTestSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	cmds     *commandsmock.MockBusinessCommands
	queries  *queriesmock.MockBusinessQueries
	actor    shared.Actor
}

func (s *BusinessHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockBusinessCommands(s.mockCtrl)
	s.queries = queriesmock.NewMockBusinessQueries(s.mockCtrl)
	s.actor = newOwner()

	h := api.NewBusinessHandler(s.cmds, s.queries)
	s.router.GET("/businesses/:id", h.Get)
	owner := s.router.Group("/owner/businesses", withActor(s.actor))
	owner.POST("", h.Create)
	owner.GET("", h.ListOwned)
}

func (s *BusinessHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBusinessHandlerSuite(t *testing.T) {
	suite.Run(t, new(BusinessHandlerTestSuite))
}

func (s *BusinessHandlerTestSuite) TestCreate() {
	s.Run("success: omitted fields fall back to defaults", func() {
		created := builder.NewBusinessBuilder().WithOwnerID(s.actor.UserID).WithName("Salon").MustBuildDomain()
		s.cmds.EXPECT().Create(gomock.Any(), s.actor, commands.CreateBusinessRequest{
			Name:        "Salon",
			Timezone:    "UTC",
			AutoConfirm: true,
		}).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/owner/businesses", map[string]any{"name": "Salon"}, "")

		var res resdto.BusinessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(created.ID(), res.ID)
		s.Equal("Salon", res.Name)
	})

	s.Run("success: explicit fields are forwarded", func() {
		created := builder.NewBusinessBuilder().WithOwnerID(s.actor.UserID).WithTimezone("Asia/Tokyo").AsManualConfirm().MustBuildDomain()
		s.cmds.EXPECT().Create(gomock.Any(), s.actor, commands.CreateBusinessRequest{
			Name:        created.Name(),
			Timezone:    "Asia/Tokyo",
			AutoConfirm: false,
		}).Return(created, nil).Times(1)

		body := map[string]any{"name": created.Name(), "timezone": "Asia/Tokyo", "auto_confirm": false}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/owner/businesses", body, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: missing name is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/owner/businesses", map[string]any{}, "")
		assertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeValidation)
	})
}

func (s *BusinessHandlerTestSuite) TestListOwned() {
	s.Run("success: lists the caller's businesses", func() {
		views := []*queries.BusinessView{
			builder.NewBusinessBuilder().WithOwnerID(s.actor.UserID).BuildView(),
			builder.NewBusinessBuilder().WithOwnerID(s.actor.UserID).BuildView(),
		}
		s.queries.EXPECT().ListOwned(gomock.Any(), s.actor.UserID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/owner/businesses", nil, "")

		var res []resdto.BusinessResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Len(res, 2)
	})
}

func (s *BusinessHandlerTestSuite) TestGet() {
	s.Run("error: unknown business is 404", func() {
		id := uuid.New()
		s.queries.EXPECT().GetBusiness(gomock.Any(), id).Return(nil, queries.ErrBusinessNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/businesses/"+id.String(), nil, "")
		assertErrorCode(s.T(), rec, http.StatusNotFound, "business_not_found")
	})

	s.Run("error: malformed id is 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/businesses/123", nil, "")
		assertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeValidation)
	})
}
