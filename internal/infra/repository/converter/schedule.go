package converter

import (
	"encoding/json"

	"github.com/aljonb/sched/internal/domain/schedule"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/pkg/errs"
	"github.com/aljonb/sched/internal/pkg/pgconv"
)

// breakRecord is the jsonb shape of business_schedules.breaks.
type breakRecord struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func ScheduleToUpsertParams(s *schedule.BusinessSchedule) (sqlc.UpsertScheduleParams, error) {
	records := make([]breakRecord, 0, len(s.Breaks()))
	for _, b := range s.Breaks() {
		records = append(records, breakRecord{Start: b.Start().String(), End: b.End().String()})
	}
	breaks, err := json.Marshal(records)
	if err != nil {
		return sqlc.UpsertScheduleParams{}, errs.Wrap(err, "failed to encode breaks")
	}

	return sqlc.UpsertScheduleParams{
		BusinessID:               s.BusinessID(),
		AvailableDays:            s.AvailableDays().Names(),
		OpensAt:                  s.OpensAt().String(),
		ClosesAt:                 s.ClosesAt().String(),
		Breaks:                   breaks,
		SlotDurationMinutes:      pgconv.IntToInt32(s.SlotDurationMinutes()),
		MinAdvanceBookingMinutes: pgconv.IntToInt32(s.MinAdvanceBookingMinutes()),
		MaxAdvanceBookingDays:    pgconv.IntToInt32(s.MaxAdvanceBookingDays()),
		UpdatedAt:                pgconv.TimeToPgtype(s.UpdatedAt()),
	}, nil
}

// ScheduleFromRow rebuilds a schedule. A row that no longer validates comes
// back marked schedule.ErrInvalidSchedule.
func ScheduleFromRow(row sqlc.BusinessSchedules) (*schedule.BusinessSchedule, error) {
	days, err := schedule.ParseWeekdays(row.AvailableDays)
	if err != nil {
		return nil, errs.Mark(err, schedule.ErrInvalidSchedule)
	}
	opens, err := schedule.ParseTimeOfDay(row.OpensAt)
	if err != nil {
		return nil, errs.Mark(err, schedule.ErrInvalidSchedule)
	}
	closes, err := schedule.ParseTimeOfDay(row.ClosesAt)
	if err != nil {
		return nil, errs.Mark(err, schedule.ErrInvalidSchedule)
	}

	var records []breakRecord
	if len(row.Breaks) > 0 {
		if err := json.Unmarshal(row.Breaks, &records); err != nil {
			return nil, errs.Mark(err, schedule.ErrInvalidSchedule)
		}
	}
	breaks, err := breaksFromRecords(records)
	if err != nil {
		return nil, err
	}

	return schedule.New(schedule.Params{
		BusinessID:               row.BusinessID,
		AvailableDays:            days,
		OpensAt:                  opens,
		ClosesAt:                 closes,
		Breaks:                   breaks,
		SlotDurationMinutes:      int(row.SlotDurationMinutes),
		MinAdvanceBookingMinutes: int(row.MinAdvanceBookingMinutes),
		MaxAdvanceBookingDays:    int(row.MaxAdvanceBookingDays),
		UpdatedAt:                pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}

func breaksFromRecords(records []breakRecord) ([]schedule.Break, error) {
	out := make([]schedule.Break, 0, len(records))
	for _, r := range records {
		start, err := schedule.ParseTimeOfDay(r.Start)
		if err != nil {
			return nil, errs.Mark(err, schedule.ErrInvalidSchedule)
		}
		end, err := schedule.ParseTimeOfDay(r.End)
		if err != nil {
			return nil, errs.Mark(err, schedule.ErrInvalidSchedule)
		}
		b, err := schedule.NewBreak(start, end)
		if err != nil {
			return nil, errs.Mark(err, schedule.ErrInvalidSchedule)
		}
		out = append(out, b)
	}
	return out, nil
}
