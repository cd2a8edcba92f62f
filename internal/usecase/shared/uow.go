package shared

import (
	"context"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/blockedslot"
	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/domain/interval"
	"github.com/aljonb/sched/internal/domain/schedule"
	"github.com/aljonb/sched/internal/infra/sqlc"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: serializable transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	// LockBusiness queues writers of one business until the transaction ends.
	// It does not make earlier commits visible to the waiting transaction.
	LockBusiness(ctx context.Context, businessID uuid.UUID) error
	Appointments() AppointmentRepository
	BlockedSlots() BlockedSlotRepository
	Businesses() BusinessRepository
	Schedules() ScheduleRepository
	Outbox() OutboxRepository
	Users() UserRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	BusinessByID(ctx context.Context, id uuid.UUID) (*business.Business, error)
	ScheduleByBusinessID(ctx context.Context, businessID uuid.UUID) (*schedule.BusinessSchedule, error)
	AppointmentByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error)
	AppointmentByToken(ctx context.Context, token appointment.Token) (*appointment.Appointment, error)
	BlockedSlotByID(ctx context.Context, id uuid.UUID) (*blockedslot.BlockedSlot, error)
	// OverlappingAppointments returns only appointments that occupy time.
	OverlappingAppointments(ctx context.Context, businessID uuid.UUID, window interval.Interval) ([]appointment.Booked, error)
	OverlappingBlocks(ctx context.Context, businessID uuid.UUID, window interval.Interval) ([]interval.Interval, error)
}

type AppointmentRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, a *appointment.Appointment) error
}

type BlockedSlotRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *blockedslot.BlockedSlot) error
	Delete(ctx context.Context, tx sqlc.DBTX, businessID, id uuid.UUID) error
}

type BusinessRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *business.Business) error
}

type ScheduleRepository interface {
	Upsert(ctx context.Context, tx sqlc.DBTX, s *schedule.BusinessSchedule) error
}

type OutboxRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, event DomainEvent) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx sqlc.DBTX, userID uuid.UUID) error
	Create(ctx context.Context, tx sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error)
}
