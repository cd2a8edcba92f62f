package response

import (
	"time"

	"github.com/aljonb/sched/internal/domain/blockedslot"
	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/google/uuid"
)

type BlockedSlotResponse struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedBy  uuid.UUID `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

func FromBlockedSlot(b *blockedslot.BlockedSlot) *BlockedSlotResponse {
	return &BlockedSlotResponse{
		ID:         b.ID(),
		BusinessID: b.BusinessID(),
		Start:      b.Slot().Start,
		End:        b.Slot().End,
		Reason:     b.Reason(),
		CreatedBy:  b.CreatedBy(),
		CreatedAt:  b.CreatedAt(),
	}
}

func FromBlockedSlotViews(vs []*queries.BlockedSlotView) ([]*BlockedSlotResponse, error) {
	return copyAll[BlockedSlotResponse](vs)
}
