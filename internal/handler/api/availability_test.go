//go:build unit

package api_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aljonb/sched/internal/handler/api"
	resdto "github.com/aljonb/sched/internal/handler/dto/response"
	"github.com/aljonb/sched/internal/usecase/queries"
	"github.com/aljonb/sched/tests/common/httptest"
	queriesmock "github.com/aljonb/sched/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAvailabilityHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)
	businessID := uuid.New()
	base := "/businesses/" + businessID.String() + "/slots"

	nine := time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)
	day := &queries.DaySlots{
		Date:     "2025-03-03",
		Timezone: "UTC",
		Slots: []queries.SlotView{
			{Start: nine, End: nine.Add(30 * time.Minute)},
			{Start: nine.Add(30 * time.Minute), End: nine.Add(time.Hour)},
		},
	}

	tests := []struct {
		name       string
		query      string
		setup      func(m *queriesmock.MockAvailabilityQueries)
		wantStatus int
		wantCode   string
		check      func(t *testing.T, body []byte)
	}{
		{
			name:  "single date",
			query: "?date=2025-03-03",
			setup: func(m *queriesmock.MockAvailabilityQueries) {
				m.EXPECT().GetDaySlots(gomock.Any(), businessID, "2025-03-03").Return(day, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var res resdto.DaySlotsResponse
				require.NoError(t, json.Unmarshal(body, &res))
				assert.Equal(t, "2025-03-03", res.Date)
				assert.Len(t, res.Slots, 2)
			},
		},
		{
			name:  "date range",
			query: "?from=2025-03-03&to=2025-03-04",
			setup: func(m *queriesmock.MockAvailabilityQueries) {
				next := &queries.DaySlots{Date: "2025-03-04", Timezone: "UTC", Slots: []queries.SlotView{}}
				m.EXPECT().GetRangeSlots(gomock.Any(), businessID, "2025-03-03", "2025-03-04").
					Return([]*queries.DaySlots{day, next}, nil)
			},
			wantStatus: http.StatusOK,
			check: func(t *testing.T, body []byte) {
				var res resdto.RangeSlotsResponse
				require.NoError(t, json.Unmarshal(body, &res))
				require.Len(t, res.Days, 2)
				assert.Equal(t, "2025-03-04", res.Days[1].Date)
				assert.Empty(t, res.Days[1].Slots)
			},
		},
		{
			name:       "neither date nor range",
			query:      "",
			setup:      func(*queriesmock.MockAvailabilityQueries) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeValidation,
		},
		{
			name:       "half a range",
			query:      "?from=2025-03-03",
			setup:      func(*queriesmock.MockAvailabilityQueries) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeValidation,
		},
		{
			name:  "malformed date",
			query: "?date=03/03/2025",
			setup: func(m *queriesmock.MockAvailabilityQueries) {
				m.EXPECT().GetDaySlots(gomock.Any(), businessID, "03/03/2025").Return(nil, queries.ErrInvalidDate)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "invalid_date",
		},
		{
			name:  "range too large",
			query: "?from=2025-01-01&to=2025-12-31",
			setup: func(m *queriesmock.MockAvailabilityQueries) {
				m.EXPECT().GetRangeSlots(gomock.Any(), businessID, "2025-01-01", "2025-12-31").Return(nil, queries.ErrRangeTooLarge)
			},
			wantStatus: http.StatusBadRequest,
			wantCode:   "range_too_large",
		},
		{
			name:  "no schedule",
			query: "?date=2025-03-03",
			setup: func(m *queriesmock.MockAvailabilityQueries) {
				m.EXPECT().GetDaySlots(gomock.Any(), businessID, "2025-03-03").Return(nil, queries.ErrScheduleNotConfigured)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "schedule_not_configured",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			m := queriesmock.NewMockAvailabilityQueries(ctrl)
			tt.setup(m)

			router := gin.New()
			router.GET("/businesses/:id/slots", api.NewAvailabilityHandler(m).List)

			rec := httptest.PerformRequest(t, router, http.MethodGet, base+tt.query, nil, "")
			if tt.wantStatus != http.StatusOK {
				assertErrorCode(t, rec, tt.wantStatus, tt.wantCode)
				return
			}
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			tt.check(t, rec.Body.Bytes())
		})
	}
}
