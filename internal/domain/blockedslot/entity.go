package blockedslot

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/aljonb/sched/internal/domain/interval"

	"github.com/google/uuid"
)

var (
	ErrInvalidInterval = errors.New("blocked slot end must be after start")
	ErrReasonTooLong   = errors.New("blocked slot reason must be at most 500 characters")
	ErrMissingBusiness = errors.New("blocked slot business is required")
)

const MaxReasonLength = 500

// BlockedSlot is an owner-defined unavailable interval. It has no status and is
// active from creation until deleted.
type BlockedSlot struct {
	id         uuid.UUID
	businessID uuid.UUID
	slot       interval.Interval
	reason     *string
	createdBy  uuid.UUID
	createdAt  time.Time
}

func NewBlockedSlot(businessID uuid.UUID, start, end time.Time, reason *string, createdBy uuid.UUID, now time.Time) (*BlockedSlot, error) {
	if businessID == uuid.Nil {
		return nil, ErrMissingBusiness
	}
	slot, err := interval.New(start, end)
	if err != nil {
		return nil, ErrInvalidInterval
	}
	if reason != nil {
		trimmed := strings.TrimSpace(*reason)
		if utf8.RuneCountInString(trimmed) > MaxReasonLength {
			return nil, ErrReasonTooLong
		}
		if trimmed == "" {
			reason = nil
		} else {
			reason = &trimmed
		}
	}

	return &BlockedSlot{
		id:         uuid.New(),
		businessID: businessID,
		slot:       slot,
		reason:     reason,
		createdBy:  createdBy,
		createdAt:  now,
	}, nil
}

func ReconstructBlockedSlot(id, businessID uuid.UUID, slot interval.Interval, reason *string, createdBy uuid.UUID, createdAt time.Time) *BlockedSlot {
	return &BlockedSlot{
		id:         id,
		businessID: businessID,
		slot:       slot,
		reason:     reason,
		createdBy:  createdBy,
		createdAt:  createdAt,
	}
}

func (b *BlockedSlot) ID() uuid.UUID           { return b.id }
func (b *BlockedSlot) BusinessID() uuid.UUID   { return b.businessID }
func (b *BlockedSlot) Slot() interval.Interval { return b.slot }
func (b *BlockedSlot) Reason() *string         { return b.reason }
func (b *BlockedSlot) CreatedBy() uuid.UUID    { return b.createdBy }
func (b *BlockedSlot) CreatedAt() time.Time    { return b.createdAt }

func (b *BlockedSlot) Blocks(candidate interval.Interval) bool {
	return interval.Overlaps(b.slot, candidate)
}
