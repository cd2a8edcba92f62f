package repository

import (
	"context"
	"encoding/json"

	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/pkg/pgconv"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type OutboxWriteQueries interface {
	InsertOutboxEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertOutboxEventParams) error
}

type OutboxRepository struct {
	queries OutboxWriteQueries
}

func NewOutboxRepository(queries OutboxWriteQueries) *OutboxRepository {
	return &OutboxRepository{queries: queries}
}

// Append stores the event together with the caller's trace context so the
// relay can continue the trace when it publishes.
func (r *OutboxRepository) Append(ctx context.Context, tx sqlc.DBTX, event shared.DomainEvent) error {
	payload, err := json.Marshal(event.Payload)
	if err != nil {
		return infra.WrapRepoErr("failed to encode outbox payload", err, infra.KindDBFailure)
	}

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	traceCarrier, err := json.Marshal(carrier)
	if err != nil {
		return infra.WrapRepoErr("failed to encode trace carrier", err, infra.KindDBFailure)
	}

	params := sqlc.InsertOutboxEventParams{
		ID:           uuid.New(),
		BusinessID:   event.BusinessID,
		AggregateID:  event.AggregateID,
		EventType:    string(event.Type),
		Payload:      payload,
		TraceCarrier: traceCarrier,
		CreatedAt:    pgconv.TimeToPgtype(event.OccurredAt),
	}
	if err := r.queries.InsertOutboxEvent(ctx, tx, params); err != nil {
		return infra.WrapRepoErr("failed to append outbox event", err)
	}
	return nil
}
