package commands

import (
	"context"
	"time"

	"github.com/aljonb/sched/internal/domain/blockedslot"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/pkg/errs"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type CreateBlockedSlotRequest struct {
	Start  time.Time
	End    time.Time
	Reason *string
}

type BlockedSlotCommands interface {
	Create(ctx context.Context, actor shared.Actor, businessID uuid.UUID, req CreateBlockedSlotRequest) (*blockedslot.BlockedSlot, error)
	Delete(ctx context.Context, actor shared.Actor, businessID, blockID uuid.UUID) error
}

type blockedSlotCommandsImpl struct {
	uow   shared.UnitOfWork
	cache shared.SlotCache
	clock clock.Clock
}

func NewBlockedSlotCommands(uow shared.UnitOfWork, cache shared.SlotCache, clk clock.Clock) BlockedSlotCommands {
	return &blockedSlotCommandsImpl{
		uow:   uow,
		cache: cache,
		clock: clk,
	}
}

// Create takes the same business lock as booking, so a block and a booking
// for overlapping time can never both commit.
func (c *blockedSlotCommandsImpl) Create(
	ctx context.Context,
	actor shared.Actor,
	businessID uuid.UUID,
	req CreateBlockedSlotRequest,
) (created *blockedslot.BlockedSlot, err error) {
	ctx, span := tracer.Start(ctx, "BlockedSlotCommands.Create", trace.WithAttributes(
		attribute.String("business.id", businessID.String()),
	))
	defer func() { endSpan(span, err) }()

	now := c.clock.Now()
	block, err := blockedslot.NewBlockedSlot(businessID, req.Start, req.End, req.Reason, actor.UserID, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidInput)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.LockBusiness(ctx, businessID); err != nil {
			return err
		}
		reads := tx.Reads()
		if _, err := loadManagedBusiness(ctx, reads, actor, businessID); err != nil {
			return err
		}

		booked, err := reads.OverlappingAppointments(ctx, businessID, block.Slot())
		if err != nil {
			return err
		}
		for _, b := range booked {
			if b.Status.OccupiesTime() && block.Blocks(b.Slot) {
				return ErrBlockOverlapsAppointment
			}
		}

		if err := tx.BlockedSlots().Create(ctx, tx.DB(), block); err != nil {
			return err
		}
		return tx.Outbox().Append(ctx, tx.DB(), shared.DomainEvent{
			Type:        shared.EventBlockedSlotCreated,
			BusinessID:  businessID,
			AggregateID: block.ID(),
			OccurredAt:  now,
			Payload: shared.BlockedSlotPayload{
				BlockedSlotID: block.ID(),
				Start:         block.Slot().Start,
				End:           block.Slot().End,
			},
		})
	})
	if err != nil {
		return nil, err
	}

	invalidateSlots(ctx, c.cache, businessID)
	return block, nil
}

func (c *blockedSlotCommandsImpl) Delete(ctx context.Context, actor shared.Actor, businessID, blockID uuid.UUID) (err error) {
	ctx, span := tracer.Start(ctx, "BlockedSlotCommands.Delete", trace.WithAttributes(
		attribute.String("business.id", businessID.String()),
		attribute.String("blocked_slot.id", blockID.String()),
	))
	defer func() { endSpan(span, err) }()

	now := c.clock.Now()
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		reads := tx.Reads()
		if _, err := loadManagedBusiness(ctx, reads, actor, businessID); err != nil {
			return err
		}

		block, err := reads.BlockedSlotByID(ctx, blockID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBlockedSlotNotFound
			}
			return err
		}
		if block.BusinessID() != businessID {
			return ErrBlockedSlotNotFound
		}

		if err := tx.BlockedSlots().Delete(ctx, tx.DB(), businessID, blockID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrBlockedSlotNotFound
			}
			return err
		}
		return tx.Outbox().Append(ctx, tx.DB(), shared.DomainEvent{
			Type:        shared.EventBlockedSlotDeleted,
			BusinessID:  businessID,
			AggregateID: blockID,
			OccurredAt:  now,
			Payload: shared.BlockedSlotPayload{
				BlockedSlotID: blockID,
				Start:         block.Slot().Start,
				End:           block.Slot().End,
			},
		})
	})
	if err != nil {
		return err
	}

	invalidateSlots(ctx, c.cache, businessID)
	return nil
}
