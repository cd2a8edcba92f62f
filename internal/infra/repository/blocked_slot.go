package repository

import (
	"context"

	"github.com/aljonb/sched/internal/domain/blockedslot"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/repository/converter"
	"github.com/aljonb/sched/internal/infra/sqlc"

	"github.com/google/uuid"
)

type BlockedSlotWriteQueries interface {
	CreateBlockedSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBlockedSlotParams) error
	DeleteBlockedSlot(ctx context.Context, db sqlc.DBTX, arg sqlc.DeleteBlockedSlotParams) (int64, error)
}

type BlockedSlotRepository struct {
	queries BlockedSlotWriteQueries
}

func NewBlockedSlotRepository(queries BlockedSlotWriteQueries) *BlockedSlotRepository {
	return &BlockedSlotRepository{queries: queries}
}

func (r *BlockedSlotRepository) Create(ctx context.Context, tx sqlc.DBTX, b *blockedslot.BlockedSlot) error {
	if err := r.queries.CreateBlockedSlot(ctx, tx, converter.BlockedSlotToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create blocked slot", err)
	}
	return nil
}

// Delete removes a block only when it belongs to businessID.
func (r *BlockedSlotRepository) Delete(ctx context.Context, tx sqlc.DBTX, businessID, id uuid.UUID) error {
	rows, err := r.queries.DeleteBlockedSlot(ctx, tx, sqlc.DeleteBlockedSlotParams{ID: id, BusinessID: businessID})
	if err != nil {
		return infra.WrapRepoErr("failed to delete blocked slot", err)
	}
	if rows == 0 {
		return infra.WrapRepoErr("blocked slot not found", nil, infra.KindNotFound)
	}
	return nil
}
