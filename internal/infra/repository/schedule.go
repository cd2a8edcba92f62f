package repository

import (
	"context"

	"github.com/aljonb/sched/internal/domain/schedule"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/repository/converter"
	"github.com/aljonb/sched/internal/infra/sqlc"
)

type ScheduleWriteQueries interface {
	UpsertSchedule(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertScheduleParams) error
}

type ScheduleRepository struct {
	queries ScheduleWriteQueries
}

func NewScheduleRepository(queries ScheduleWriteQueries) *ScheduleRepository {
	return &ScheduleRepository{queries: queries}
}

func (r *ScheduleRepository) Upsert(ctx context.Context, tx sqlc.DBTX, s *schedule.BusinessSchedule) error {
	if err := s.Validate(); err != nil {
		return err
	}
	params, err := converter.ScheduleToUpsertParams(s)
	if err != nil {
		return infra.WrapRepoErr("failed to encode schedule", err, infra.KindDBFailure)
	}
	if err := r.queries.UpsertSchedule(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to upsert schedule", err)
	}
	return nil
}
