package queries

import (
	"context"

	"github.com/aljonb/sched/internal/domain/business"
	"github.com/aljonb/sched/internal/domain/schedule"
	"github.com/aljonb/sched/internal/infra"

	"github.com/google/uuid"
)

type ScheduleQueries interface {
	GetSchedule(ctx context.Context, businessID uuid.UUID) (*ScheduleView, error)
}

type scheduleQueriesImpl struct {
	businesses BusinessReadStore
	schedules  ScheduleReadStore
}

func NewScheduleQueries(businesses BusinessReadStore, schedules ScheduleReadStore) ScheduleQueries {
	return &scheduleQueriesImpl{
		businesses: businesses,
		schedules:  schedules,
	}
}

func (q *scheduleQueriesImpl) GetSchedule(ctx context.Context, businessID uuid.UUID) (*ScheduleView, error) {
	biz, err := findBusiness(ctx, q.businesses, businessID)
	if err != nil {
		return nil, err
	}
	s, err := findSchedule(ctx, q.schedules, businessID)
	if err != nil {
		return nil, err
	}
	return ToScheduleView(biz, s), nil
}

func findSchedule(ctx context.Context, store ScheduleReadStore, businessID uuid.UUID) (*schedule.BusinessSchedule, error) {
	s, err := store.FindByBusinessID(ctx, businessID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrScheduleNotConfigured
		}
		return nil, err
	}
	return s, nil
}

func ToScheduleView(biz *business.Business, s *schedule.BusinessSchedule) *ScheduleView {
	breaks := make([]BreakView, 0, len(s.Breaks()))
	for _, b := range s.Breaks() {
		breaks = append(breaks, BreakView{Start: b.Start().String(), End: b.End().String()})
	}
	return &ScheduleView{
		BusinessID:               s.BusinessID(),
		Timezone:                 biz.Timezone(),
		AvailableDays:            s.AvailableDays().Names(),
		OpensAt:                  s.OpensAt().String(),
		ClosesAt:                 s.ClosesAt().String(),
		Breaks:                   breaks,
		SlotDurationMinutes:      s.SlotDurationMinutes(),
		MinAdvanceBookingMinutes: s.MinAdvanceBookingMinutes(),
		MaxAdvanceBookingDays:    s.MaxAdvanceBookingDays(),
		UpdatedAt:                s.UpdatedAt(),
	}
}
