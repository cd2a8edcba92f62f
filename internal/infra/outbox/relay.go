package outbox

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/aljonb/sched/internal/infra"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/pkg/pgconv"
	"github.com/aljonb/sched/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

const (
	defaultPollInterval = 2 * time.Second
	defaultBatchSize    = 50
)

type Queries interface {
	ClaimUnpublishedEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.OutboxEvents, error)
	MarkEventsPublished(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkEventsPublishedParams) (int64, error)
}

// MessageWriter is satisfied by *kafka.Writer.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type Config struct {
	PollInterval time.Duration
	BatchSize    int
}

// Relay moves committed outbox rows to Kafka. Rows are claimed with
// FOR UPDATE SKIP LOCKED, so several relays may run against one database.
// Delivery is at-least-once.
type Relay struct {
	uow     shared.UnitOfWork
	queries Queries
	writer  MessageWriter
	clock   clock.Clock
	cfg     Config

	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

func NewRelay(uow shared.UnitOfWork, queries Queries, writer MessageWriter, clk clock.Clock, cfg Config) *Relay {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = defaultBatchSize
	}
	return &Relay{
		uow:     uow,
		queries: queries,
		writer:  writer,
		clock:   clk,
		cfg:     cfg,
	}
}

func NewKafkaWriter(brokers []string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// Start launches the polling loop. It returns immediately.
func (r *Relay) Start(ctx context.Context) {
	ctx, r.cancel = context.WithCancel(context.WithoutCancel(ctx))
	r.done = make(chan struct{})
	go r.run(ctx)
}

func (r *Relay) Stop(ctx context.Context) error {
	var err error
	r.once.Do(func() {
		if r.cancel == nil {
			return
		}
		r.cancel()
		select {
		case <-r.done:
		case <-ctx.Done():
			err = ctx.Err()
		}
		if closeErr := r.writer.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	})
	return err
}

func (r *Relay) run(ctx context.Context) {
	defer close(r.done)

	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	slog.Info("outbox relay started", "poll_interval", r.cfg.PollInterval.String(), "batch_size", r.cfg.BatchSize)
	for {
		select {
		case <-ctx.Done():
			slog.Info("outbox relay stopped")
			return
		case <-ticker.C:
			n, err := r.PublishBatch(ctx)
			if err != nil {
				slog.Error("outbox publish failed", "error", err.Error())
				continue
			}
			if n > 0 {
				slog.Debug("outbox events published", "count", n)
			}
		}
	}
}

// PublishBatch claims one batch, writes it to Kafka and marks it published,
// all inside one transaction. A failed write leaves every row unpublished.
func (r *Relay) PublishBatch(ctx context.Context) (int, error) {
	var published int
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		published = 0
		rows, err := r.queries.ClaimUnpublishedEvents(ctx, tx.DB(), pgconv.IntToInt32(r.cfg.BatchSize))
		if err != nil {
			return infra.WrapRepoErr("failed to claim outbox events", err)
		}
		if len(rows) == 0 {
			return nil
		}

		msgs := make([]kafka.Message, 0, len(rows))
		ids := make([]uuid.UUID, 0, len(rows))
		for _, row := range rows {
			msgs = append(msgs, toMessage(ctx, row))
			ids = append(ids, row.ID)
		}
		if err := r.writer.WriteMessages(ctx, msgs...); err != nil {
			return err
		}

		if _, err := r.queries.MarkEventsPublished(ctx, tx.DB(), sqlc.MarkEventsPublishedParams{
			IDs:         ids,
			PublishedAt: pgconv.TimeToPgtype(r.clock.Now()),
		}); err != nil {
			return infra.WrapRepoErr("failed to mark outbox events published", err)
		}
		published = len(rows)
		return nil
	})
	return published, err
}

func toMessage(ctx context.Context, row sqlc.OutboxEvents) kafka.Message {
	msg := kafka.Message{
		Topic: row.EventType,
		Key:   []byte(row.BusinessID.String()),
		Value: row.Payload,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(row.ID.String())},
			{Key: "event_type", Value: []byte(row.EventType)},
			{Key: "aggregate_id", Value: []byte(row.AggregateID.String())},
		},
	}

	carrier := propagation.MapCarrier{}
	if len(row.TraceCarrier) > 0 {
		if err := json.Unmarshal(row.TraceCarrier, &carrier); err != nil {
			slog.Warn("outbox trace carrier unreadable", "event_id", row.ID, "error", err.Error())
		}
	}
	msgCtx := otel.GetTextMapPropagator().Extract(ctx, carrier)
	msg.Headers = injectTraceHeaders(msgCtx, msg.Headers)
	return msg
}
