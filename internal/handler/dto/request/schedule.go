package request

type BreakRequest struct {
	Start string `json:"start" binding:"required"`
	End   string `json:"end" binding:"required"`
}

// Ranges are left to the domain so that a bad schedule is reported as a
// configuration error rather than a binding error.
type UpsertScheduleRequest struct {
	AvailableDays            []string       `json:"available_days" binding:"required"`
	OpensAt                  string         `json:"opens_at" binding:"required"`
	ClosesAt                 string         `json:"closes_at" binding:"required"`
	Breaks                   []BreakRequest `json:"breaks" binding:"omitempty,dive"`
	SlotDurationMinutes      int            `json:"slot_duration_minutes"`
	MinAdvanceBookingMinutes *int           `json:"min_advance_booking_minutes,omitempty"`
	MaxAdvanceBookingDays    int            `json:"max_advance_booking_days"`
}
