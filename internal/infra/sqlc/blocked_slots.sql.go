package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const blockedSlotColumns = `id, business_id, start_time, end_time, reason, created_by, created_at`

func scanBlockedSlot(row pgx.Row) (BlockedSlots, error) {
	var i BlockedSlots
	err := row.Scan(
		&i.ID,
		&i.BusinessID,
		&i.StartTime,
		&i.EndTime,
		&i.Reason,
		&i.CreatedBy,
		&i.CreatedAt,
	)
	return i, err
}

const createBlockedSlot = `-- name: CreateBlockedSlot :exec
INSERT INTO blocked_slots (id, business_id, start_time, end_time, reason, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type CreateBlockedSlotParams struct {
	ID         uuid.UUID          `json:"id"`
	BusinessID uuid.UUID          `json:"business_id"`
	StartTime  pgtype.Timestamptz `json:"start_time"`
	EndTime    pgtype.Timestamptz `json:"end_time"`
	Reason     pgtype.Text        `json:"reason"`
	CreatedBy  uuid.UUID          `json:"created_by"`
	CreatedAt  pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateBlockedSlot(ctx context.Context, db DBTX, arg CreateBlockedSlotParams) error {
	_, err := db.Exec(ctx, createBlockedSlot,
		arg.ID,
		arg.BusinessID,
		arg.StartTime,
		arg.EndTime,
		arg.Reason,
		arg.CreatedBy,
		arg.CreatedAt,
	)
	return err
}

const getBlockedSlotByID = `-- name: GetBlockedSlotByID :one
SELECT ` + blockedSlotColumns + `
FROM blocked_slots
WHERE id = $1`

func (q *Queries) GetBlockedSlotByID(ctx context.Context, db DBTX, id uuid.UUID) (BlockedSlots, error) {
	return scanBlockedSlot(db.QueryRow(ctx, getBlockedSlotByID, id))
}

const deleteBlockedSlot = `-- name: DeleteBlockedSlot :execrows
DELETE FROM blocked_slots
WHERE id = $1 AND business_id = $2`

type DeleteBlockedSlotParams struct {
	ID         uuid.UUID `json:"id"`
	BusinessID uuid.UUID `json:"business_id"`
}

func (q *Queries) DeleteBlockedSlot(ctx context.Context, db DBTX, arg DeleteBlockedSlotParams) (int64, error) {
	result, err := db.Exec(ctx, deleteBlockedSlot, arg.ID, arg.BusinessID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const listOverlappingBlockedSlots = `-- name: ListOverlappingBlockedSlots :many
SELECT ` + blockedSlotColumns + `
FROM blocked_slots
WHERE business_id = $1
  AND start_time < $3
  AND end_time > $2
ORDER BY start_time, id`

type ListOverlappingBlockedSlotsParams struct {
	BusinessID uuid.UUID          `json:"business_id"`
	RangeStart pgtype.Timestamptz `json:"range_start"`
	RangeEnd   pgtype.Timestamptz `json:"range_end"`
}

func (q *Queries) ListOverlappingBlockedSlots(ctx context.Context, db DBTX, arg ListOverlappingBlockedSlotsParams) ([]BlockedSlots, error) {
	rows, err := db.Query(ctx, listOverlappingBlockedSlots, arg.BusinessID, arg.RangeStart, arg.RangeEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []BlockedSlots
	for rows.Next() {
		i, err := scanBlockedSlot(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
