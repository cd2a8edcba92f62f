package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertOutboxEvent = `-- name: InsertOutboxEvent :exec
INSERT INTO outbox_events (id, business_id, aggregate_id, event_type, payload, trace_carrier, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

type InsertOutboxEventParams struct {
	ID           uuid.UUID          `json:"id"`
	BusinessID   uuid.UUID          `json:"business_id"`
	AggregateID  uuid.UUID          `json:"aggregate_id"`
	EventType    string             `json:"event_type"`
	Payload      []byte             `json:"payload"`
	TraceCarrier []byte             `json:"trace_carrier"`
	CreatedAt    pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) InsertOutboxEvent(ctx context.Context, db DBTX, arg InsertOutboxEventParams) error {
	_, err := db.Exec(ctx, insertOutboxEvent,
		arg.ID,
		arg.BusinessID,
		arg.AggregateID,
		arg.EventType,
		arg.Payload,
		arg.TraceCarrier,
		arg.CreatedAt,
	)
	return err
}

const claimUnpublishedEvents = `-- name: ClaimUnpublishedEvents :many
SELECT id, business_id, aggregate_id, event_type, payload, trace_carrier, created_at, published_at
FROM outbox_events
WHERE published_at IS NULL
ORDER BY created_at, id
LIMIT $1
FOR UPDATE SKIP LOCKED`

func (q *Queries) ClaimUnpublishedEvents(ctx context.Context, db DBTX, limit int32) ([]OutboxEvents, error) {
	rows, err := db.Query(ctx, claimUnpublishedEvents, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []OutboxEvents
	for rows.Next() {
		var i OutboxEvents
		if err := rows.Scan(
			&i.ID,
			&i.BusinessID,
			&i.AggregateID,
			&i.EventType,
			&i.Payload,
			&i.TraceCarrier,
			&i.CreatedAt,
			&i.PublishedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const markEventsPublished = `-- name: MarkEventsPublished :execrows
UPDATE outbox_events
SET published_at = $2
WHERE id = ANY($1::uuid[])`

type MarkEventsPublishedParams struct {
	IDs         []uuid.UUID        `json:"ids"`
	PublishedAt pgtype.Timestamptz `json:"published_at"`
}

func (q *Queries) MarkEventsPublished(ctx context.Context, db DBTX, arg MarkEventsPublishedParams) (int64, error) {
	result, err := db.Exec(ctx, markEventsPublished, arg.IDs, arg.PublishedAt)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
