package business

import (
	"errors"
	"strings"
	"time"
	_ "time/tzdata" // zone names must resolve on hosts without a zoneinfo database
	"unicode/utf8"

	"github.com/aljonb/sched/internal/domain/appointment"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errors.New("business name is required and must be at most 200 characters")
	ErrInvalidTimezone = errors.New("business timezone must be a valid IANA zone")
	ErrMissingOwner    = errors.New("business owner is required")
	ErrInvalidDate     = errors.New("date must be formatted as YYYY-MM-DD")
)

const (
	MaxNameLength = 200
	DateLayout    = "2006-01-02"
)

// Business owns one schedule and a set of appointments. Civil dates are
// interpreted in its timezone.
type Business struct {
	id          uuid.UUID
	ownerID     uuid.UUID
	name        string
	timezone    *time.Location
	autoConfirm bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewBusiness(ownerID uuid.UUID, name, timezone string, autoConfirm bool, now time.Time) (*Business, error) {
	if ownerID == uuid.Nil {
		return nil, ErrMissingOwner
	}
	name = strings.TrimSpace(name)
	if name == "" || utf8.RuneCountInString(name) > MaxNameLength {
		return nil, ErrInvalidName
	}
	loc, err := LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &Business{
		id:          uuid.New(),
		ownerID:     ownerID,
		name:        name,
		timezone:    loc,
		autoConfirm: autoConfirm,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructBusiness(id, ownerID uuid.UUID, name, timezone string, autoConfirm bool, createdAt, updatedAt time.Time) (*Business, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return nil, err
	}
	return &Business{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		timezone:    loc,
		autoConfirm: autoConfirm,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

func (b *Business) ID() uuid.UUID            { return b.id }
func (b *Business) OwnerID() uuid.UUID       { return b.ownerID }
func (b *Business) Name() string             { return b.name }
func (b *Business) Location() *time.Location { return b.timezone }
func (b *Business) Timezone() string         { return b.timezone.String() }
func (b *Business) AutoConfirm() bool        { return b.autoConfirm }
func (b *Business) CreatedAt() time.Time     { return b.createdAt }
func (b *Business) UpdatedAt() time.Time     { return b.updatedAt }

// InitialStatus is the status a freshly accepted booking starts in.
func (b *Business) InitialStatus() appointment.Status {
	if b.autoConfirm {
		return appointment.StatusConfirmed
	}
	return appointment.StatusPending
}

// ParseDate anchors a YYYY-MM-DD civil date at midnight in the business timezone.
func (b *Business) ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), b.timezone)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// IsManagedBy reports whether the user may administer this business.
func (b *Business) IsManagedBy(userID uuid.UUID, isAdmin bool) bool {
	return isAdmin || b.ownerID == userID
}
