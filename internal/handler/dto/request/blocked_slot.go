package request

import "time"

type CreateBlockedSlotRequest struct {
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
	Reason *string   `json:"reason,omitempty" binding:"omitempty,max=500"`
}

type ListBlockedSlotsQuery struct {
	From *time.Time `form:"from"`
	To   *time.Time `form:"to"`
}
