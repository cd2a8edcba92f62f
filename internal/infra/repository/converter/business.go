package converter

import (
	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/pkg/pgconv"
)

func BusinessToCreateParams(b *business.Business) sqlc.CreateBusinessParams {
	return sqlc.CreateBusinessParams{
		ID:          b.ID(),
		OwnerID:     b.OwnerID(),
		Name:        b.Name(),
		Timezone:    b.Timezone(),
		AutoConfirm: b.AutoConfirm(),
		CreatedAt:   pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BusinessFromRow(row sqlc.Businesses) (*business.Business, error) {
	return business.ReconstructBusiness(
		row.ID,
		row.OwnerID,
		row.Name,
		row.Timezone,
		row.AutoConfirm,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	)
}
