package sqlc

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Users struct {
	ID           uuid.UUID          `json:"id"`
	Email        string             `json:"email"`
	PasswordHash string             `json:"password_hash"`
	Role         string             `json:"role"`
	LastLogin    pgtype.Timestamptz `json:"last_login"`
	IsActive     bool               `json:"is_active"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	UpdatedAt    pgtype.Timestamptz `json:"updated_at"`
}

type Businesses struct {
	ID          uuid.UUID          `json:"id"`
	OwnerID     uuid.UUID          `json:"owner_id"`
	Name        string             `json:"name"`
	Timezone    string             `json:"timezone"`
	AutoConfirm bool               `json:"auto_confirm"`
	CreatedAt   pgtype.Timestamptz `json:"created_at"`
	UpdatedAt   pgtype.Timestamptz `json:"updated_at"`
}

type BusinessSchedules struct {
	BusinessID               uuid.UUID          `json:"business_id"`
	AvailableDays            []string           `json:"available_days"`
	OpensAt                  string             `json:"opens_at"`
	ClosesAt                 string             `json:"closes_at"`
	Breaks                   []byte             `json:"breaks"`
	SlotDurationMinutes      int32              `json:"slot_duration_minutes"`
	MinAdvanceBookingMinutes int32              `json:"min_advance_booking_minutes"`
	MaxAdvanceBookingDays    int32              `json:"max_advance_booking_days"`
	UpdatedAt                pgtype.Timestamptz `json:"updated_at"`
}

type Appointments struct {
	ID            uuid.UUID          `json:"id"`
	BusinessID    uuid.UUID          `json:"business_id"`
	StartTime     pgtype.Timestamptz `json:"start_time"`
	EndTime       pgtype.Timestamptz `json:"end_time"`
	Status        string             `json:"status"`
	Token         string             `json:"token"`
	CustomerName  string             `json:"customer_name"`
	CustomerEmail string             `json:"customer_email"`
	CustomerPhone string             `json:"customer_phone"`
	Notes         string             `json:"notes"`
	CancelledAt   pgtype.Timestamptz `json:"cancelled_at"`
	CreatedAt     pgtype.Timestamptz `json:"created_at"`
	UpdatedAt     pgtype.Timestamptz `json:"updated_at"`
}

type BlockedSlots struct {
	ID         uuid.UUID          `json:"id"`
	BusinessID uuid.UUID          `json:"business_id"`
	StartTime  pgtype.Timestamptz `json:"start_time"`
	EndTime    pgtype.Timestamptz `json:"end_time"`
	Reason     pgtype.Text        `json:"reason"`
	CreatedBy  uuid.UUID          `json:"created_by"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

type OutboxEvents struct {
	ID           uuid.UUID          `json:"id"`
	BusinessID   uuid.UUID          `json:"business_id"`
	AggregateID  uuid.UUID          `json:"aggregate_id"`
	EventType    string             `json:"event_type"`
	Payload      []byte             `json:"payload"`
	TraceCarrier []byte             `json:"trace_carrier"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
	PublishedAt  pgtype.Timestamptz `json:"published_at"`
}
