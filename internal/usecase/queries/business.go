package queries

import (
	"context"

	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/google/uuid"
)

type BusinessQueries interface {
	GetBusiness(ctx context.Context, id uuid.UUID) (*BusinessView, error)
	ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*BusinessView, error)
}

type businessQueriesImpl struct {
	businesses BusinessReadStore
}

func NewBusinessQueries(businesses BusinessReadStore) BusinessQueries {
	return &businessQueriesImpl{businesses: businesses}
}

func (q *businessQueriesImpl) GetBusiness(ctx context.Context, id uuid.UUID) (*BusinessView, error) {
	biz, err := findBusiness(ctx, q.businesses, id)
	if err != nil {
		return nil, err
	}
	return ToBusinessView(biz), nil
}

func (q *businessQueriesImpl) ListOwned(ctx context.Context, ownerID uuid.UUID) ([]*BusinessView, error) {
	list, err := q.businesses.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]*BusinessView, 0, len(list))
	for _, b := range list {
		out = append(out, ToBusinessView(b))
	}
	return out, nil
}

func ToBusinessView(b *business.Business) *BusinessView {
	return &BusinessView{
		ID:          b.ID(),
		OwnerID:     b.OwnerID(),
		Name:        b.Name(),
		Timezone:    b.Timezone(),
		AutoConfirm: b.AutoConfirm(),
		CreatedAt:   b.CreatedAt(),
	}
}

func findBusiness(ctx context.Context, store BusinessReadStore, id uuid.UUID) (*business.Business, error) {
	biz, err := store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	return biz, nil
}

func findManagedBusiness(ctx context.Context, store BusinessReadStore, actor shared.Actor, id uuid.UUID) (*business.Business, error) {
	biz, err := findBusiness(ctx, store, id)
	if err != nil {
		return nil, err
	}
	if !actor.CanManage(biz) {
		return nil, ErrForbidden
	}
	return biz, nil
}
