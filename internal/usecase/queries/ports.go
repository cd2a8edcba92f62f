package queries

import (
	"context"
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/domain/schedule"

	"github.com/google/uuid"
)

type BusinessReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*business.Business, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*business.Business, error)
}

type ScheduleReadStore interface {
	FindByBusinessID(ctx context.Context, businessID uuid.UUID) (*schedule.BusinessSchedule, error)
}

type AppointmentReadStore interface {
	FindOccupying(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]appointment.Booked, error)
	FindByToken(ctx context.Context, token string) (*AppointmentView, error)
	ListByBusiness(ctx context.Context, businessID uuid.UUID, filter AppointmentFilter, afterStart time.Time, afterID uuid.UUID, limit int32) ([]*AppointmentView, error)
}

type BlockedSlotReadStore interface {
	FindInRange(ctx context.Context, businessID uuid.UUID, from, to time.Time) ([]*BlockedSlotView, error)
}
