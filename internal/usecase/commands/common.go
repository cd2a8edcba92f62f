package commands

import (
	"context"
	"log/slog"

	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/domain/interval"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/aljonb/sched/internal/usecase/commands")

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func loadManagedBusiness(ctx context.Context, reads shared.CommandReads, actor shared.Actor, businessID uuid.UUID) (*business.Business, error) {
	biz, err := reads.BusinessByID(ctx, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBusinessNotFound
		}
		return nil, err
	}
	if !actor.CanManage(biz) {
		return nil, ErrForbidden
	}
	return biz, nil
}

// ensureSlotFree is the guard's check half and gives the typed conflict
// errors. Under SERIALIZABLE the snapshot is taken when the lock statement
// starts, so a writer that waited on the lock may not see the winner's row
// here. The exclusion constraints and the 40001 retry in the unit of work
// close that gap; the retried attempt sees the winner and returns a conflict.
func ensureSlotFree(ctx context.Context, reads shared.CommandReads, businessID uuid.UUID, slot interval.Interval) error {
	booked, err := reads.OverlappingAppointments(ctx, businessID, slot)
	if err != nil {
		return err
	}
	for _, b := range booked {
		if b.Status.OccupiesTime() && interval.Overlaps(slot, b.Slot) {
			return ErrAppointmentConflict
		}
	}

	blocks, err := reads.OverlappingBlocks(ctx, businessID, slot)
	if err != nil {
		return err
	}
	if interval.OverlapsAny(slot, blocks) {
		return ErrBlockedConflict
	}
	return nil
}

// invalidateSlots runs after commit; a failure only delays cache freshness
// until the entry's TTL.
func invalidateSlots(ctx context.Context, cache shared.SlotCache, businessID uuid.UUID) {
	if err := cache.Invalidate(ctx, businessID); err != nil {
		slog.Warn("failed to invalidate slot cache", "business_id", businessID, "error", err.Error())
	}
}
