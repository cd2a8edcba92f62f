package appointment

import (
	"errors"
	"time"

	"github.com/aljonb/sched/internal/domain/interval"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus           = errors.New("invalid appointment status")
	ErrInvalidInitialStatus    = errors.New("appointment must start as pending or confirmed")
	ErrInvalidTransition       = errors.New("appointment status transition not allowed")
	ErrCancellationInvariant   = errors.New("cancellation timestamp must be set if and only if status is cancelled")
	ErrNotCancellable          = errors.New("appointment can no longer be cancelled")
	ErrInvalidInterval         = errors.New("appointment end must be after start")
	ErrStartInPast             = errors.New("appointment start is in the past")
	ErrDurationOutOfRange      = errors.New("appointment duration must be between 1 and 1440 minutes")
	ErrMissingBusiness         = errors.New("appointment business is required")
	ErrTokenGenerationFailed   = errors.New("failed to generate booking token")
	ErrAppointmentWithoutToken = errors.New("appointment token is required")
)

const (
	MinDuration      = time.Minute
	MaxDuration      = 1440 * time.Minute
	DefaultClockSkew = 60 * time.Second
)

type Services struct {
	Clock  clock.Clock
	Tokens TokenGenerator
}

type Appointment struct {
	id          uuid.UUID
	businessID  uuid.UUID
	slot        interval.Interval
	status      Status
	token       Token
	customer    Customer
	cancelledAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// ValidateProposal checks the shape of a requested booking before any storage access.
func ValidateProposal(slot interval.Interval, now time.Time, skew time.Duration) error {
	if slot.IsEmpty() {
		return ErrInvalidInterval
	}
	if slot.Start.Before(now.Add(-skew)) {
		return ErrStartInPast
	}
	if d := slot.Duration(); d < MinDuration || d > MaxDuration {
		return ErrDurationOutOfRange
	}
	return nil
}

func NewAppointment(services *Services, businessID uuid.UUID, slot interval.Interval, customer Customer, initial Status) (*Appointment, error) {
	if businessID == uuid.Nil {
		return nil, ErrMissingBusiness
	}
	if slot.IsEmpty() {
		return nil, ErrInvalidInterval
	}
	if initial != StatusPending && initial != StatusConfirmed {
		return nil, ErrInvalidInitialStatus
	}
	token, err := services.Tokens.Generate()
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGenerationFailed)
	}

	now := services.Clock.Now()
	return &Appointment{
		id:         uuid.New(),
		businessID: businessID,
		slot:       slot,
		status:     initial,
		token:      token,
		customer:   customer,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructAppointment(
	id, businessID uuid.UUID,
	slot interval.Interval,
	status Status,
	token Token,
	customer Customer,
	cancelledAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Appointment, error) {
	a := &Appointment{
		id:          id,
		businessID:  businessID,
		slot:        slot,
		status:      status,
		token:       token,
		customer:    customer,
		cancelledAt: cancelledAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate checks the standing invariants of a persisted appointment.
func (a *Appointment) Validate() error {
	if !a.status.IsValid() {
		return ErrInvalidStatus
	}
	if a.slot.IsEmpty() {
		return ErrInvalidInterval
	}
	if a.token.IsZero() {
		return ErrAppointmentWithoutToken
	}
	if (a.status == StatusCancelled) != (a.cancelledAt != nil) {
		return ErrCancellationInvariant
	}
	return nil
}

func (a *Appointment) ChangeStatus(to Status, now time.Time) error {
	if !to.IsValid() {
		return ErrInvalidStatus
	}
	if !a.status.CanTransitionTo(to) {
		return ErrInvalidTransition
	}

	a.status = to
	if to == StatusCancelled {
		ts := now
		a.cancelledAt = &ts
	} else {
		a.cancelledAt = nil
	}
	a.updatedAt = now
	return a.Validate()
}

// CancelByCustomer applies the self-service cancellation rules on top of ChangeStatus.
func (a *Appointment) CancelByCustomer(now time.Time) error {
	if a.status != StatusPending && a.status != StatusConfirmed {
		return ErrNotCancellable
	}
	if !a.slot.Start.After(now) {
		return ErrNotCancellable
	}
	return a.ChangeStatus(StatusCancelled, now)
}

func (a *Appointment) ID() uuid.UUID           { return a.id }
func (a *Appointment) BusinessID() uuid.UUID   { return a.businessID }
func (a *Appointment) Slot() interval.Interval { return a.slot }
func (a *Appointment) Start() time.Time        { return a.slot.Start }
func (a *Appointment) End() time.Time          { return a.slot.End }
func (a *Appointment) Status() Status          { return a.status }
func (a *Appointment) Token() Token            { return a.token }
func (a *Appointment) Customer() Customer      { return a.customer }
func (a *Appointment) CancelledAt() *time.Time { return a.cancelledAt }
func (a *Appointment) CreatedAt() time.Time    { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time    { return a.updatedAt }

// Booked is the minimal view of an existing appointment that availability needs.
type Booked struct {
	Slot   interval.Interval
	Status Status
}
