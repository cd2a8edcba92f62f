package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getScheduleByBusinessID = `-- name: GetScheduleByBusinessID :one
SELECT business_id, available_days, opens_at, closes_at, breaks,
       slot_duration_minutes, min_advance_booking_minutes, max_advance_booking_days, updated_at
FROM business_schedules
WHERE business_id = $1`

func (q *Queries) GetScheduleByBusinessID(ctx context.Context, db DBTX, businessID uuid.UUID) (BusinessSchedules, error) {
	row := db.QueryRow(ctx, getScheduleByBusinessID, businessID)
	var i BusinessSchedules
	err := row.Scan(
		&i.BusinessID,
		&i.AvailableDays,
		&i.OpensAt,
		&i.ClosesAt,
		&i.Breaks,
		&i.SlotDurationMinutes,
		&i.MinAdvanceBookingMinutes,
		&i.MaxAdvanceBookingDays,
		&i.UpdatedAt,
	)
	return i, err
}

const upsertSchedule = `-- name: UpsertSchedule :exec
INSERT INTO business_schedules (
    business_id, available_days, opens_at, closes_at, breaks,
    slot_duration_minutes, min_advance_booking_minutes, max_advance_booking_days, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (business_id) DO UPDATE SET
    available_days = EXCLUDED.available_days,
    opens_at = EXCLUDED.opens_at,
    closes_at = EXCLUDED.closes_at,
    breaks = EXCLUDED.breaks,
    slot_duration_minutes = EXCLUDED.slot_duration_minutes,
    min_advance_booking_minutes = EXCLUDED.min_advance_booking_minutes,
    max_advance_booking_days = EXCLUDED.max_advance_booking_days,
    updated_at = EXCLUDED.updated_at`

type UpsertScheduleParams struct {
	BusinessID               uuid.UUID          `json:"business_id"`
	AvailableDays            []string           `json:"available_days"`
	OpensAt                  string             `json:"opens_at"`
	ClosesAt                 string             `json:"closes_at"`
	Breaks                   []byte             `json:"breaks"`
	SlotDurationMinutes      int32              `json:"slot_duration_minutes"`
	MinAdvanceBookingMinutes int32              `json:"min_advance_booking_minutes"`
	MaxAdvanceBookingDays    int32              `json:"max_advance_booking_days"`
	UpdatedAt                pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpsertSchedule(ctx context.Context, db DBTX, arg UpsertScheduleParams) error {
	_, err := db.Exec(ctx, upsertSchedule,
		arg.BusinessID,
		arg.AvailableDays,
		arg.OpensAt,
		arg.ClosesAt,
		arg.Breaks,
		arg.SlotDurationMinutes,
		arg.MinAdvanceBookingMinutes,
		arg.MaxAdvanceBookingDays,
		arg.UpdatedAt,
	)
	return err
}
