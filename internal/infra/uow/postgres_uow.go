package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/blockedslot"
	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/domain/interval"
	"github.com/aljonb/sched/internal/domain/schedule"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/readstore"
	"github.com/aljonb/sched/internal/infra/repository"
	"github.com/aljonb/sched/internal/infra/repository/converter"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/pkg/errs"
	"github.com/aljonb/sched/internal/pkg/pgconv"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
	q    *sqlc.Queries
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries) shared.UnitOfWork {
	return &PostgresUoW{
		pool: pool,
		q:    q,
	}
}

// Serializable so that a check-then-insert inside fn cannot interleave with
// another writer; 40001 and 40P01 are retried with backoff.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{
			dbtx: pgxTx,
			uow:  u,
		}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errMaxRetriesExceeded)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		// Fallback to a simple calculation if crypto/rand fails
		return 0
	}
	// Safe conversion: mask high bit to ensure positive int64
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	if infra.IsKind(err, infra.KindRetryable) {
		return true
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	appointmentRepo shared.AppointmentRepository
	blockedSlotRepo shared.BlockedSlotRepository
	businessRepo    shared.BusinessRepository
	scheduleRepo    shared.ScheduleRepository
	outboxRepo      shared.OutboxRepository
	userRepo        shared.UserRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) LockBusiness(ctx context.Context, businessID uuid.UUID) error {
	if err := t.uow.q.AcquireBusinessLock(ctx, t.dbtx, businessID); err != nil {
		return infra.WrapRepoErr("failed to lock business", err)
	}
	return nil
}

func (t *pgTx) Appointments() shared.AppointmentRepository {
	if t.appointmentRepo == nil {
		t.appointmentRepo = repository.NewAppointmentRepository(t.uow.q)
	}
	return t.appointmentRepo
}

func (t *pgTx) BlockedSlots() shared.BlockedSlotRepository {
	if t.blockedSlotRepo == nil {
		t.blockedSlotRepo = repository.NewBlockedSlotRepository(t.uow.q)
	}
	return t.blockedSlotRepo
}

func (t *pgTx) Businesses() shared.BusinessRepository {
	if t.businessRepo == nil {
		t.businessRepo = repository.NewBusinessRepository(t.uow.q)
	}
	return t.businessRepo
}

func (t *pgTx) Schedules() shared.ScheduleRepository {
	if t.scheduleRepo == nil {
		t.scheduleRepo = repository.NewScheduleRepository(t.uow.q)
	}
	return t.scheduleRepo
}

func (t *pgTx) Outbox() shared.OutboxRepository {
	if t.outboxRepo == nil {
		t.outboxRepo = repository.NewOutboxRepository(t.uow.q)
	}
	return t.outboxRepo
}

func (t *pgTx) Users() shared.UserRepository {
	if t.userRepo == nil {
		t.userRepo = repository.NewUserRepository(t.uow.q)
	}
	return t.userRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	businessStore    *readstore.BusinessReadStore
	scheduleStore    *readstore.ScheduleReadStore
	appointmentStore *readstore.AppointmentReadStore
}

func (r *commandReads) BusinessByID(ctx context.Context, id uuid.UUID) (*business.Business, error) {
	if r.businessStore == nil {
		r.businessStore = readstore.NewBusinessReadStore(r.uow.q, r.dbtx)
	}
	return r.businessStore.FindByID(ctx, id)
}

func (r *commandReads) ScheduleByBusinessID(ctx context.Context, businessID uuid.UUID) (*schedule.BusinessSchedule, error) {
	if r.scheduleStore == nil {
		r.scheduleStore = readstore.NewScheduleReadStore(r.uow.q, r.dbtx)
	}
	return r.scheduleStore.FindByBusinessID(ctx, businessID)
}

func (r *commandReads) AppointmentByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	row, err := r.uow.q.GetAppointmentByID(ctx, r.dbtx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get appointment", err)
	}
	return appointmentFromRow(row)
}

func (r *commandReads) AppointmentByToken(ctx context.Context, token appointment.Token) (*appointment.Appointment, error) {
	row, err := r.uow.q.GetAppointmentByToken(ctx, r.dbtx, token.String())
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get appointment by token", err)
	}
	return appointmentFromRow(row)
}

func appointmentFromRow(row sqlc.Appointments) (*appointment.Appointment, error) {
	a, err := converter.AppointmentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("stored appointment is invalid", err, infra.KindDBFailure)
	}
	return a, nil
}

func (r *commandReads) BlockedSlotByID(ctx context.Context, id uuid.UUID) (*blockedslot.BlockedSlot, error) {
	row, err := r.uow.q.GetBlockedSlotByID(ctx, r.dbtx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("blocked slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get blocked slot", err)
	}
	return converter.BlockedSlotFromRow(row), nil
}

func (r *commandReads) OverlappingAppointments(ctx context.Context, businessID uuid.UUID, window interval.Interval) ([]appointment.Booked, error) {
	if r.appointmentStore == nil {
		r.appointmentStore = readstore.NewAppointmentReadStore(r.uow.q, r.dbtx)
	}
	return r.appointmentStore.FindOccupying(ctx, businessID, window.Start, window.End)
}

func (r *commandReads) OverlappingBlocks(ctx context.Context, businessID uuid.UUID, window interval.Interval) ([]interval.Interval, error) {
	rows, err := r.uow.q.ListOverlappingBlockedSlots(ctx, r.dbtx, sqlc.ListOverlappingBlockedSlotsParams{
		BusinessID: businessID,
		RangeStart: pgconv.TimeToPgtype(window.Start),
		RangeEnd:   pgconv.TimeToPgtype(window.End),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list overlapping blocks", err)
	}
	return converter.IntervalsFromBlockRows(rows), nil
}
