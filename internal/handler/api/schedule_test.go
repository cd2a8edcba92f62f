//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/aljonb/sched/internal/domain/schedule"
	"github.com/aljonb/sched/internal/handler/api"
	resdto "github.com/aljonb/sched/internal/handler/dto/response"
	"github.com/aljonb/sched/internal/pkg/errs"
	"github.com/aljonb/sched/internal/usecase/commands"
	"github.com/aljonb/sched/internal/usecase/queries"
	"github.com/aljonb/sched/internal/usecase/shared"
	"github.com/aljonb/sched/tests/common/httptest"
	commandsmock "github.com/aljonb/sched/tests/mock/commands"
	queriesmock "github.com/aljonb/sched/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	cmds       *commandsmock.MockScheduleCommands
	queries    *queriesmock.MockScheduleQueries
	actor      shared.Actor
	businessID uuid.UUID
	view       *queries.ScheduleView
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.cmds = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.queries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.actor = newOwner()
	s.businessID = uuid.New()
	s.view = &queries.ScheduleView{
		BusinessID:            s.businessID,
		Timezone:              "UTC",
		AvailableDays:         []string{"monday", "tuesday"},
		OpensAt:               "09:00",
		ClosesAt:              "17:00",
		SlotDurationMinutes:   30,
		MaxAdvanceBookingDays: 30,
		UpdatedAt:             time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}

	h := api.NewScheduleHandler(s.cmds, s.queries)
	s.router.GET("/businesses/:id/schedule", h.Get)
	s.router.PUT("/owner/businesses/:id/schedule", withActor(s.actor), h.Upsert)
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

func (s *ScheduleHandlerTestSuite) TestGet() {
	s.Run("success: nil breaks are rendered as an empty list", func() {
		s.queries.EXPECT().GetSchedule(gomock.Any(), s.businessID).Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/businesses/"+s.businessID.String()+"/schedule", nil, "")

		var res map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal([]any{}, res["breaks"])
		s.Equal("09:00", res["opens_at"])
	})

	s.Run("error: no schedule is 404", func() {
		s.queries.EXPECT().GetSchedule(gomock.Any(), s.businessID).Return(nil, queries.ErrScheduleNotConfigured).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/businesses/"+s.businessID.String()+"/schedule", nil, "")
		assertErrorCode(s.T(), rec, http.StatusNotFound, "schedule_not_configured")
	})
}

func (s *ScheduleHandlerTestSuite) TestUpsert() {
	url := "/owner/businesses/" + s.businessID.String() + "/schedule"
	body := map[string]any{
		"available_days":           []string{"monday", "tuesday"},
		"opens_at":                 "09:00",
		"closes_at":                "17:00",
		"breaks":                   []map[string]string{{"start": "12:00", "end": "13:00"}},
		"slot_duration_minutes":    30,
		"max_advance_booking_days": 30,
	}

	s.Run("success: converts the request and returns the stored schedule", func() {
		want := commands.UpsertScheduleRequest{
			AvailableDays:            []string{"monday", "tuesday"},
			OpensAt:                  "09:00",
			ClosesAt:                 "17:00",
			Breaks:                   []commands.BreakInput{{Start: "12:00", End: "13:00"}},
			SlotDurationMinutes:      30,
			MinAdvanceBookingMinutes: 0,
			MaxAdvanceBookingDays:    30,
		}
		s.cmds.EXPECT().Upsert(gomock.Any(), s.actor, s.businessID, gomock.Cond(func(got commands.UpsertScheduleRequest) bool {
			return cmp.Equal(want, got)
		})).Return(nil, nil).Times(1)
		s.queries.EXPECT().GetSchedule(gomock.Any(), s.businessID).Return(s.view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")

		var res resdto.ScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(30, res.SlotDurationMinutes)
	})

	s.Run("error: invalid schedule is 422 with the reason", func() {
		cause := errs.Mark(schedule.ErrInvalidSlotDuration, schedule.ErrInvalidSchedule)
		s.cmds.EXPECT().Upsert(gomock.Any(), s.actor, s.businessID, gomock.Any()).Return(nil, cause).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		assertErrorCode(s.T(), rec, http.StatusUnprocessableEntity, api.CodeInvalidSchedule)
		s.Contains(rec.Body.String(), schedule.ErrInvalidSlotDuration.Error())
	})

	s.Run("error: not the owner is 403", func() {
		s.cmds.EXPECT().Upsert(gomock.Any(), s.actor, s.businessID, gomock.Any()).Return(nil, commands.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "")
		assertErrorCode(s.T(), rec, http.StatusForbidden, "forbidden")
	})

	s.Run("error: missing opens_at is 400", func() {
		bad := map[string]any{"available_days": []string{"monday"}, "closes_at": "17:00"}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, bad, "")
		assertErrorCode(s.T(), rec, http.StatusBadRequest, api.CodeValidation)
	})
}
