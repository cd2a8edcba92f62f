package queries

import (
	"time"

	"github.com/google/uuid"
)

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}

type BusinessView struct {
	ID          uuid.UUID `json:"id"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Name        string    `json:"name"`
	Timezone    string    `json:"timezone"`
	AutoConfirm bool      `json:"auto_confirm"`
	CreatedAt   time.Time `json:"created_at"`
}

type BreakView struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type ScheduleView struct {
	BusinessID               uuid.UUID   `json:"business_id"`
	Timezone                 string      `json:"timezone"`
	AvailableDays            []string    `json:"available_days"`
	OpensAt                  string      `json:"opens_at"`
	ClosesAt                 string      `json:"closes_at"`
	Breaks                   []BreakView `json:"breaks"`
	SlotDurationMinutes      int         `json:"slot_duration_minutes"`
	MinAdvanceBookingMinutes int         `json:"min_advance_booking_minutes"`
	MaxAdvanceBookingDays    int         `json:"max_advance_booking_days"`
	UpdatedAt                time.Time   `json:"updated_at"`
}

type AppointmentView struct {
	ID            uuid.UUID  `json:"id"`
	BusinessID    uuid.UUID  `json:"business_id"`
	Start         time.Time  `json:"start"`
	End           time.Time  `json:"end"`
	Status        string     `json:"status"`
	Token         string     `json:"-"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	CustomerPhone string     `json:"customer_phone,omitempty"`
	Notes         string     `json:"notes,omitempty"`
	CancelledAt   *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type BlockedSlotView struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Reason     *string   `json:"reason,omitempty"`
	CreatedBy  uuid.UUID `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
}

type SlotView struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// DaySlots is the bookable slots of one civil date in the business timezone.
type DaySlots struct {
	Date     string     `json:"date"`
	Timezone string     `json:"timezone"`
	Slots    []SlotView `json:"slots"`
}

type AppointmentFilter struct {
	From   time.Time
	To     time.Time
	Status *string
}
