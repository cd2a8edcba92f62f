package repository

import (
	"context"

	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/repository/converter"
	"github.com/aljonb/sched/internal/infra/sqlc"
)

type BusinessWriteQueries interface {
	CreateBusiness(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBusinessParams) (sqlc.Businesses, error)
}

type BusinessRepository struct {
	queries BusinessWriteQueries
}

func NewBusinessRepository(queries BusinessWriteQueries) *BusinessRepository {
	return &BusinessRepository{queries: queries}
}

func (r *BusinessRepository) Create(ctx context.Context, tx sqlc.DBTX, b *business.Business) error {
	if _, err := r.queries.CreateBusiness(ctx, tx, converter.BusinessToCreateParams(b)); err != nil {
		return infra.WrapRepoErr("failed to create business", err)
	}
	return nil
}
