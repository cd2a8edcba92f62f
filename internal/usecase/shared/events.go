package shared

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventAppointmentBooked        EventType = "appointment.booked"
	EventAppointmentStatusChanged EventType = "appointment.status_changed"
	EventBlockedSlotCreated       EventType = "blocked_slot.created"
	EventBlockedSlotDeleted       EventType = "blocked_slot.deleted"
	EventScheduleUpdated          EventType = "schedule.updated"
)

// DomainEvent is written to the outbox in the transaction that caused it.
type DomainEvent struct {
	Type        EventType
	BusinessID  uuid.UUID
	AggregateID uuid.UUID
	OccurredAt  time.Time
	Payload     any
}

type AppointmentPayload struct {
	AppointmentID  uuid.UUID `json:"appointment_id"`
	Start          time.Time `json:"start"`
	End            time.Time `json:"end"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previous_status,omitempty"`
}

type BlockedSlotPayload struct {
	BlockedSlotID uuid.UUID `json:"blocked_slot_id"`
	Start         time.Time `json:"start,omitempty"`
	End           time.Time `json:"end,omitempty"`
}

type SchedulePayload struct {
	SlotDurationMinutes int `json:"slot_duration_minutes"`
}
