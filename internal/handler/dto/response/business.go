package response

import (
	"time"

	"github.com/aljonb/sched/internal/usecase/queries"

	"github.com/google/uuid"
)

type BusinessResponse struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Timezone    string    `json:"timezone"`
	AutoConfirm bool      `json:"auto_confirm"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromBusinessView(v *queries.BusinessView) (*BusinessResponse, error) {
	return copyInto[BusinessResponse](v)
}

func FromBusinessViews(vs []*queries.BusinessView) ([]*BusinessResponse, error) {
	return copyAll[BusinessResponse](vs)
}

type BreakResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ScheduleResponse struct {
	BusinessID               uuid.UUID       `json:"business_id"`
	Timezone                 string          `json:"timezone"`
	AvailableDays            []string        `json:"available_days"`
	OpensAt                  string          `json:"opens_at"`
	ClosesAt                 string          `json:"closes_at"`
	Breaks                   []BreakResponse `json:"breaks"`
	SlotDurationMinutes      int             `json:"slot_duration_minutes"`
	MinAdvanceBookingMinutes int             `json:"min_advance_booking_minutes"`
	MaxAdvanceBookingDays    int             `json:"max_advance_booking_days"`
	UpdatedAt                time.Time       `json:"updated_at"`
}

func FromScheduleView(v *queries.ScheduleView) (*ScheduleResponse, error) {
	res, err := copyInto[ScheduleResponse](v)
	if err != nil {
		return nil, err
	}
	if res.Breaks == nil {
		res.Breaks = []BreakResponse{}
	}
	return res, nil
}
