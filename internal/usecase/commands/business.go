package commands

import (
	"context"

	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/pkg/errs"
	"github.com/aljonb/sched/internal/usecase/shared"
)

type CreateBusinessRequest struct {
	Name        string
	Timezone    string
	AutoConfirm bool
}

type BusinessCommands interface {
	Create(ctx context.Context, actor shared.Actor, req CreateBusinessRequest) (*business.Business, error)
}

type businessCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBusinessCommands(uow shared.UnitOfWork, clk clock.Clock) BusinessCommands {
	return &businessCommandsImpl{
		uow:   uow,
		clock: clk,
	}
}

// Create registers a business owned by the acting user.
func (c *businessCommandsImpl) Create(ctx context.Context, actor shared.Actor, req CreateBusinessRequest) (*business.Business, error) {
	biz, err := business.NewBusiness(actor.UserID, req.Name, req.Timezone, req.AutoConfirm, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Businesses().Create(ctx, tx.DB(), biz)
	})
	if err != nil {
		return nil, err
	}
	return biz, nil
}
