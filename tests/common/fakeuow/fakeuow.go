//go:build unit

// Package fakeuow is an in-memory shared.UnitOfWork for use case tests.
// Writes are staged per transaction and applied on commit. The appointment
// exclusion constraint is enforced on insert and again on commit, so racing
// transactions behave like they do against Postgres.
package fakeuow

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/domain/blockedslot"
	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/domain/interval"
	"github.com/aljonb/sched/internal/domain/schedule"
	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/google/uuid"
)

var errNoRows = errors.New("no rows in result set")

type Store struct {
	mu           sync.Mutex
	businesses   map[uuid.UUID]*business.Business
	schedules    map[uuid.UUID]*schedule.BusinessSchedule
	appointments map[uuid.UUID]*appointment.Appointment
	blocks       map[uuid.UUID]*blockedslot.BlockedSlot
	users        map[string]uuid.UUID
	events       []shared.DomainEvent

	lockMu sync.Mutex
	locks  map[uuid.UUID]*sync.Mutex

	createErrs []error
	commits    int
}

func New() *Store {
	return &Store{
		businesses:   map[uuid.UUID]*business.Business{},
		schedules:    map[uuid.UUID]*schedule.BusinessSchedule{},
		appointments: map[uuid.UUID]*appointment.Appointment{},
		blocks:       map[uuid.UUID]*blockedslot.BlockedSlot{},
		users:        map[string]uuid.UUID{},
		locks:        map[uuid.UUID]*sync.Mutex{},
	}
}

// Seeding

func (s *Store) AddBusiness(b *business.Business) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.businesses[b.ID()] = b
}

func (s *Store) AddSchedule(sc *schedule.BusinessSchedule) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.schedules[sc.BusinessID()] = sc
}

func (s *Store) AddAppointment(a *appointment.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appointments[a.ID()] = clone(a)
}

func (s *Store) AddBlock(b *blockedslot.BlockedSlot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blocks[b.ID()] = b
}

// FailNextAppointmentCreate queues errors returned by the next inserts, in order.
func (s *Store) FailNextAppointmentCreate(errs ...error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.createErrs = append(s.createErrs, errs...)
}

// Inspection

func (s *Store) Appointments(businessID uuid.UUID) []*appointment.Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*appointment.Appointment, 0)
	for _, a := range s.appointments {
		if a.BusinessID() == businessID {
			out = append(out, clone(a))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start().Before(out[j].Start()) })
	return out
}

func (s *Store) Appointment(id uuid.UUID) (*appointment.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	a, ok := s.appointments[id]
	if !ok {
		return nil, false
	}
	return clone(a), true
}

func (s *Store) Blocks(businessID uuid.UUID) []*blockedslot.BlockedSlot {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*blockedslot.BlockedSlot
	for _, b := range s.blocks {
		if b.BusinessID() == businessID {
			out = append(out, b)
		}
	}
	return out
}

func (s *Store) Schedule(businessID uuid.UUID) (*schedule.BusinessSchedule, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, ok := s.schedules[businessID]
	return sc, ok
}

func (s *Store) Business(id uuid.UUID) (*business.Business, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.businesses[id]
	return b, ok
}

func (s *Store) Events() []shared.DomainEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]shared.DomainEvent, len(s.events))
	copy(out, s.events)
	return out
}

func (s *Store) Commits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commits
}

// UnitOfWork

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	t := &tx{store: s}
	defer t.releaseLocks()

	if err := fn(ctx, t); err != nil {
		return err
	}
	return s.commit(t)
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *Store) CommandReads() shared.CommandReads {
	return reads{store: s}
}

func (s *Store) businessLock(id uuid.UUID) *sync.Mutex {
	s.lockMu.Lock()
	defer s.lockMu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

func (s *Store) commit(t *tx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range t.appointments {
		if a.Status().OccupiesTime() && s.collides(a, nil) {
			return infra.WrapRepoErr("appointment overlaps on commit", nil, infra.KindConflict)
		}
	}
	for _, a := range t.appointments {
		s.appointments[a.ID()] = a
	}
	for _, b := range t.businesses {
		s.businesses[b.ID()] = b
	}
	for _, sc := range t.schedules {
		s.schedules[sc.BusinessID()] = sc
	}
	for _, b := range t.blocks {
		s.blocks[b.ID()] = b
	}
	for _, id := range t.deletedBlocks {
		delete(s.blocks, id)
	}
	for email, id := range t.users {
		s.users[email] = id
	}
	s.events = append(s.events, t.events...)
	s.commits++
	return nil
}

// collides reports whether a overlaps another committed or staged occupying
// appointment of the same business. Callers hold s.mu.
func (s *Store) collides(a *appointment.Appointment, staged map[uuid.UUID]*appointment.Appointment) bool {
	check := func(other *appointment.Appointment) bool {
		return other.ID() != a.ID() &&
			other.BusinessID() == a.BusinessID() &&
			other.Status().OccupiesTime() &&
			interval.Overlaps(other.Slot(), a.Slot())
	}
	for _, other := range s.appointments {
		if _, replaced := staged[other.ID()]; replaced {
			continue
		}
		if check(other) {
			return true
		}
	}
	for _, other := range staged {
		if check(other) {
			return true
		}
	}
	return false
}

type tx struct {
	store  *Store
	locked []*sync.Mutex

	appointments  map[uuid.UUID]*appointment.Appointment
	businesses    []*business.Business
	schedules     []*schedule.BusinessSchedule
	blocks        []*blockedslot.BlockedSlot
	deletedBlocks []uuid.UUID
	users         map[string]uuid.UUID
	events        []shared.DomainEvent
}

func (t *tx) LockBusiness(ctx context.Context, businessID uuid.UUID) error {
	l := t.store.businessLock(businessID)
	l.Lock()
	t.locked = append(t.locked, l)
	return nil
}

func (t *tx) releaseLocks() {
	for i := len(t.locked) - 1; i >= 0; i-- {
		t.locked[i].Unlock()
	}
	t.locked = nil
}

func (t *tx) Appointments() shared.AppointmentRepository { return appointmentRepo{t} }
func (t *tx) BlockedSlots() shared.BlockedSlotRepository { return blockRepo{t} }
func (t *tx) Businesses() shared.BusinessRepository      { return businessRepo{t} }
func (t *tx) Schedules() shared.ScheduleRepository       { return scheduleRepo{t} }
func (t *tx) Outbox() shared.OutboxRepository            { return outboxRepo{t} }
func (t *tx) Users() shared.UserRepository               { return userRepo{t} }
func (t *tx) Reads() shared.CommandReads                 { return reads{store: t.store} }
func (t *tx) DB() sqlc.DBTX                              { return nil }

func (t *tx) stageAppointment(a *appointment.Appointment) error {
	if t.appointments == nil {
		t.appointments = map[uuid.UUID]*appointment.Appointment{}
	}
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.Status().OccupiesTime() {
		staged := map[uuid.UUID]*appointment.Appointment{}
		for id, v := range t.appointments {
			staged[id] = v
		}
		staged[a.ID()] = a
		if s.collides(a, staged) {
			return infra.WrapRepoErr("appointment overlaps", nil, infra.KindConflict)
		}
	}
	t.appointments[a.ID()] = clone(a)
	return nil
}

type appointmentRepo struct{ t *tx }

func (r appointmentRepo) Create(ctx context.Context, _ sqlc.DBTX, a *appointment.Appointment) error {
	s := r.t.store
	s.mu.Lock()
	if len(s.createErrs) > 0 {
		err := s.createErrs[0]
		s.createErrs = s.createErrs[1:]
		s.mu.Unlock()
		return err
	}
	for _, existing := range s.appointments {
		if existing.Token() == a.Token() {
			s.mu.Unlock()
			return infra.WrapRepoErr("duplicate token", nil, infra.KindDuplicateKey)
		}
	}
	s.mu.Unlock()
	return r.t.stageAppointment(a)
}

func (r appointmentRepo) UpdateStatus(ctx context.Context, _ sqlc.DBTX, a *appointment.Appointment) error {
	s := r.t.store
	s.mu.Lock()
	_, ok := s.appointments[a.ID()]
	s.mu.Unlock()
	if !ok {
		return infra.WrapRepoErr("appointment not found", errNoRows, infra.KindNotFound)
	}
	return r.t.stageAppointment(a)
}

type blockRepo struct{ t *tx }

func (r blockRepo) Create(ctx context.Context, _ sqlc.DBTX, b *blockedslot.BlockedSlot) error {
	r.t.blocks = append(r.t.blocks, b)
	return nil
}

func (r blockRepo) Delete(ctx context.Context, _ sqlc.DBTX, businessID, id uuid.UUID) error {
	s := r.t.store
	s.mu.Lock()
	b, ok := s.blocks[id]
	s.mu.Unlock()
	if !ok || b.BusinessID() != businessID {
		return infra.WrapRepoErr("blocked slot not found", errNoRows, infra.KindNotFound)
	}
	r.t.deletedBlocks = append(r.t.deletedBlocks, id)
	return nil
}

type businessRepo struct{ t *tx }

func (r businessRepo) Create(ctx context.Context, _ sqlc.DBTX, b *business.Business) error {
	r.t.businesses = append(r.t.businesses, b)
	return nil
}

type scheduleRepo struct{ t *tx }

func (r scheduleRepo) Upsert(ctx context.Context, _ sqlc.DBTX, sc *schedule.BusinessSchedule) error {
	r.t.schedules = append(r.t.schedules, sc)
	return nil
}

type outboxRepo struct{ t *tx }

func (r outboxRepo) Append(ctx context.Context, _ sqlc.DBTX, event shared.DomainEvent) error {
	r.t.events = append(r.t.events, event)
	return nil
}

type userRepo struct{ t *tx }

func (r userRepo) UpdateLastLogin(ctx context.Context, _ sqlc.DBTX, userID uuid.UUID) error {
	return nil
}

func (r userRepo) Create(ctx context.Context, _ sqlc.DBTX, params sqlc.CreateUserParams) (uuid.UUID, error) {
	s := r.t.store
	s.mu.Lock()
	_, taken := s.users[params.Email]
	s.mu.Unlock()
	if _, staged := r.t.users[params.Email]; taken || staged {
		return uuid.Nil, infra.WrapRepoErr("email taken", nil, infra.KindDuplicateKey)
	}
	if r.t.users == nil {
		r.t.users = map[string]uuid.UUID{}
	}
	id := uuid.New()
	r.t.users[params.Email] = id
	return id, nil
}

// reads serves committed state only.
type reads struct{ store *Store }

func (r reads) BusinessByID(ctx context.Context, id uuid.UUID) (*business.Business, error) {
	if b, ok := r.store.Business(id); ok {
		return b, nil
	}
	return nil, infra.WrapRepoErr("business not found", errNoRows, infra.KindNotFound)
}

func (r reads) ScheduleByBusinessID(ctx context.Context, businessID uuid.UUID) (*schedule.BusinessSchedule, error) {
	if sc, ok := r.store.Schedule(businessID); ok {
		return sc, nil
	}
	return nil, infra.WrapRepoErr("schedule not found", errNoRows, infra.KindNotFound)
}

func (r reads) AppointmentByID(ctx context.Context, id uuid.UUID) (*appointment.Appointment, error) {
	if a, ok := r.store.Appointment(id); ok {
		return a, nil
	}
	return nil, infra.WrapRepoErr("appointment not found", errNoRows, infra.KindNotFound)
}

func (r reads) AppointmentByToken(ctx context.Context, token appointment.Token) (*appointment.Appointment, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.appointments {
		if a.Token() == token {
			return clone(a), nil
		}
	}
	return nil, infra.WrapRepoErr("appointment not found", errNoRows, infra.KindNotFound)
}

func (r reads) BlockedSlotByID(ctx context.Context, id uuid.UUID) (*blockedslot.BlockedSlot, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.blocks[id]; ok {
		return b, nil
	}
	return nil, infra.WrapRepoErr("blocked slot not found", errNoRows, infra.KindNotFound)
}

func (r reads) OverlappingAppointments(ctx context.Context, businessID uuid.UUID, window interval.Interval) ([]appointment.Booked, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []appointment.Booked
	for _, a := range s.appointments {
		if a.BusinessID() == businessID && a.Status().OccupiesTime() && interval.Overlaps(a.Slot(), window) {
			out = append(out, appointment.Booked{Slot: a.Slot(), Status: a.Status()})
		}
	}
	return out, nil
}

func (r reads) OverlappingBlocks(ctx context.Context, businessID uuid.UUID, window interval.Interval) ([]interval.Interval, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []interval.Interval
	for _, b := range s.blocks {
		if b.BusinessID() == businessID && interval.Overlaps(b.Slot(), window) {
			out = append(out, b.Slot())
		}
	}
	return out, nil
}

func clone(a *appointment.Appointment) *appointment.Appointment {
	c, err := appointment.ReconstructAppointment(
		a.ID(), a.BusinessID(), a.Slot(), a.Status(), a.Token(), a.Customer(),
		a.CancelledAt(), a.CreatedAt(), a.UpdatedAt(),
	)
	if err != nil {
		panic(err)
	}
	return c
}
