package readstore

import (
	"context"
	"time"

	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/pkg/pgconv"
	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/google/uuid"
)

type BlockedSlotReadQueries interface {
	ListOverlappingBlockedSlots(ctx context.Context, db sqlc.DBTX, arg sqlc.ListOverlappingBlockedSlotsParams) ([]sqlc.BlockedSlots, error)
}

type BlockedSlotReadStore struct {
	queries BlockedSlotReadQueries
	db      sqlc.DBTX
}

func NewBlockedSlotReadStore(queries BlockedSlotReadQueries, db sqlc.DBTX) *BlockedSlotReadStore {
	return &BlockedSlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BlockedSlotReadStore) FindInRange(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]*queries.BlockedSlotView, error) {
	rows, err := r.queries.ListOverlappingBlockedSlots(ctx, r.db, sqlc.ListOverlappingBlockedSlotsParams{
		BusinessID: businessID,
		RangeStart: pgconv.TimeToPgtype(from),
		RangeEnd:   pgconv.TimeToPgtype(to),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list blocked slots", err)
	}
	out := make([]*queries.BlockedSlotView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.BlockedSlotView{
			ID:         row.ID,
			BusinessID: row.BusinessID,
			Start:      row.StartTime.Time,
			End:        row.EndTime.Time,
			Reason:     pgconv.StringPtrFromPgtype(row.Reason),
			CreatedBy:  row.CreatedBy,
			CreatedAt:  pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return out, nil
}
