package readstore

import (
	"context"

	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/repository/converter"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type BusinessReadQueries interface {
	GetBusinessByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Businesses, error)
	ListBusinessesByOwner(ctx context.Context, db sqlc.DBTX, ownerID uuid.UUID) ([]sqlc.Businesses, error)
}

type BusinessReadStore struct {
	queries BusinessReadQueries
	db      sqlc.DBTX
}

func NewBusinessReadStore(queries BusinessReadQueries, db sqlc.DBTX) *BusinessReadStore {
	return &BusinessReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BusinessReadStore) FindByID(ctx context.Context, id uuid.UUID) (*business.Business, error) {
	row, err := r.queries.GetBusinessByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("business not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get business", err)
	}
	b, err := converter.BusinessFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored business is invalid", err, infra.KindDBFailure)
	}
	return b, nil
}

func (r *BusinessReadStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*business.Business, error) {
	rows, err := r.queries.ListBusinessesByOwner(ctx, r.db, ownerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list businesses", err)
	}
	out := make([]*business.Business, 0, len(rows))
	for _, row := range rows {
		b, err := converter.BusinessFromRow(row)
		if err != nil {
			return nil, infra.WrapRepoErr("stored business is invalid", err, infra.KindDBFailure)
		}
		out = append(out, b)
	}
	return out, nil
}
