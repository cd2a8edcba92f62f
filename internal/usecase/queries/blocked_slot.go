package queries

import (
	"context"
	"time"

	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/google/uuid"
)

type BlockedSlotQueries interface {
	ListForBusiness(ctx context.Context, actor shared.Actor, businessID uuid.UUID, from, to time.Time) ([]*BlockedSlotView, error)
}

type blockedSlotQueriesImpl struct {
	businesses BusinessReadStore
	blocks     BlockedSlotReadStore
}

func NewBlockedSlotQueries(businesses BusinessReadStore, blocks BlockedSlotReadStore) BlockedSlotQueries {
	return &blockedSlotQueriesImpl{
		businesses: businesses,
		blocks:     blocks,
	}
}

func (q *blockedSlotQueriesImpl) ListForBusiness(ctx context.Context, actor shared.Actor, businessID uuid.UUID, from, to time.Time) ([]*BlockedSlotView, error) {
	if _, err := findManagedBusiness(ctx, q.businesses, actor, businessID); err != nil {
		return nil, err
	}
	if from.IsZero() {
		from = listFloor
	}
	if to.IsZero() {
		to = listCeiling
	}
	if !from.Before(to) {
		return nil, ErrInvalidDateRange
	}
	return q.blocks.FindInRange(ctx, businessID, from, to)
}
