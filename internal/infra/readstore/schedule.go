package readstore

import (
	"context"

	"github.com/aljonb/sched/internal/domain/schedule"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/repository/converter"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type ScheduleReadQueries interface {
	GetScheduleByBusinessID(ctx context.Context, db sqlc.DBTX, businessID uuid.UUID) (sqlc.BusinessSchedules, error)
}

type ScheduleReadStore struct {
	queries ScheduleReadQueries
	db      sqlc.DBTX
}

func NewScheduleReadStore(queries ScheduleReadQueries, db sqlc.DBTX) *ScheduleReadStore {
	return &ScheduleReadStore{
		queries: queries,
		db:      db,
	}
}

// FindByBusinessID returns the stored schedule. A stored row that fails
// validation is returned as an error marked schedule.ErrInvalidSchedule.
func (r *ScheduleReadStore) FindByBusinessID(ctx context.Context, businessID uuid.UUID) (*schedule.BusinessSchedule, error) {
	row, err := r.queries.GetScheduleByBusinessID(ctx, r.db, businessID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get schedule", err)
	}
	return converter.ScheduleFromRow(row)
}
