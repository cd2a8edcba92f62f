//go:build unit || e2e

package builder

import (
	"time"

	"github.com/aljonb/sched/internal/domain/blockedslot"
	"github.com/aljonb/sched/internal/domain/interval"

	"github.com/google/uuid"
)

type BlockedSlotBuilder struct {
	BusinessID uuid.UUID
	Start      time.Time
	End        time.Time
	Reason     *string
	CreatedBy  uuid.UUID
	Now        time.Time
}

func NewBlockedSlotBuilder() *BlockedSlotBuilder {
	start := time.Date(2025, 3, 3, 14, 0, 0, 0, time.UTC)
	reason := "Staff meeting"
	return &BlockedSlotBuilder{
		BusinessID: uuid.New(),
		Start:      start,
		End:        start.Add(30 * time.Minute),
		Reason:     &reason,
		CreatedBy:  uuid.New(),
		Now:        start.Add(-48 * time.Hour),
	}
}

func (b *BlockedSlotBuilder) With(mutate func(*BlockedSlotBuilder)) *BlockedSlotBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BlockedSlotBuilder) Slot() interval.Interval {
	return interval.Interval{Start: b.Start, End: b.End}
}

func (b *BlockedSlotBuilder) BuildDomain() (*blockedslot.BlockedSlot, error) {
	return blockedslot.NewBlockedSlot(b.BusinessID, b.Start, b.End, b.Reason, b.CreatedBy, b.Now)
}

// Fluent builder methods
func (b *BlockedSlotBuilder) WithBusinessID(id uuid.UUID) *BlockedSlotBuilder {
	b.BusinessID = id
	return b
}

func (b *BlockedSlotBuilder) WithSlot(start, end time.Time) *BlockedSlotBuilder {
	b.Start = start
	b.End = end
	return b
}

func (b *BlockedSlotBuilder) WithReason(reason string) *BlockedSlotBuilder {
	b.Reason = &reason
	return b
}

func (b *BlockedSlotBuilder) WithoutReason() *BlockedSlotBuilder {
	b.Reason = nil
	return b
}
