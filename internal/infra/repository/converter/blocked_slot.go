package converter

import (
	"github.com/aljonb/sched/internal/domain/blockedslot"
	"github.com/aljonb/sched/internal/domain/interval"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/pkg/pgconv"
)

func BlockedSlotToCreateParams(b *blockedslot.BlockedSlot) sqlc.CreateBlockedSlotParams {
	return sqlc.CreateBlockedSlotParams{
		ID:         b.ID(),
		BusinessID: b.BusinessID(),
		StartTime:  pgconv.TimeToPgtype(b.Slot().Start),
		EndTime:    pgconv.TimeToPgtype(b.Slot().End),
		Reason:     pgconv.StringPtrToPgtype(b.Reason()),
		CreatedBy:  b.CreatedBy(),
		CreatedAt:  pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BlockedSlotFromRow(row sqlc.BlockedSlots) *blockedslot.BlockedSlot {
	return blockedslot.ReconstructBlockedSlot(
		row.ID,
		row.BusinessID,
		interval.Interval{Start: row.StartTime.Time, End: row.EndTime.Time},
		pgconv.StringPtrFromPgtype(row.Reason),
		row.CreatedBy,
		pgconv.TimeFromPgtype(row.CreatedAt),
	)
}

func IntervalsFromBlockRows(rows []sqlc.BlockedSlots) []interval.Interval {
	out := make([]interval.Interval, 0, len(rows))
	for _, row := range rows {
		out = append(out, interval.Interval{Start: row.StartTime.Time, End: row.EndTime.Time})
	}
	return out
}
