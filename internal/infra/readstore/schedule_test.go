//go:build unit

package readstore_test

import (
	"context"
	"testing"

	"github.com/aljonb/sched/internal/domain/schedule"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/readstore"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/pkg/errs"
	readstoremock "github.com/aljonb/sched/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestScheduleReadStore_FindByBusinessID(t *testing.T) {
	ctx := context.Background()
	businessID := uuid.New()

	validRow := sqlc.BusinessSchedules{
		BusinessID:            businessID,
		AvailableDays:         []string{"monday", "wednesday"},
		OpensAt:               "09:00",
		ClosesAt:              "17:00",
		Breaks:                []byte(`[{"start":"12:00","end":"13:00"}]`),
		SlotDurationMinutes:   30,
		MaxAdvanceBookingDays: 14,
	}
	brokenRow := validRow
	brokenRow.OpensAt = "18:00"

	testCases := []struct {
		name        string
		row         sqlc.BusinessSchedules
		dbErr       error
		expectKind  infra.RepositoryErrorKind
		expectMark  error
		expectSlots int
	}{
		{name: "success: schedule loaded", row: validRow, expectSlots: 30},
		{name: "error: no schedule configured", dbErr: pgx.ErrNoRows, expectKind: infra.KindNotFound},
		{name: "error: stored schedule no longer validates", row: brokenRow, expectMark: schedule.ErrInvalidSchedule},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockQueries := readstoremock.NewMockScheduleReadQueries(ctrl)
			store := readstore.NewScheduleReadStore(mockQueries, nil)

			mockQueries.EXPECT().GetScheduleByBusinessID(ctx, gomock.Any(), businessID).Return(tc.row, tc.dbErr)

			got, err := store.FindByBusinessID(ctx, businessID)

			switch {
			case tc.expectKind != "":
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
			case tc.expectMark != nil:
				require.Error(t, err)
				assert.True(t, errs.Is(err, tc.expectMark))
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.expectSlots, got.SlotDurationMinutes())
				assert.Len(t, got.Breaks(), 1)
			}
		})
	}
}
