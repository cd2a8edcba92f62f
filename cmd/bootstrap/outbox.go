package bootstrap

import (
	"context"
	"log/slog"

	"github.com/aljonb/sched/internal/infra/outbox"
	"github.com/aljonb/sched/internal/infra/sqlc"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/pkg/config"
	"github.com/aljonb/sched/internal/usecase/shared"

	"go.uber.org/fx"
)

var OutboxModule = fx.Module("outbox",
	fx.Invoke(StartOutboxRelay),
)

// StartOutboxRelay runs the relay for the lifetime of the app. Events keep
// accumulating in the outbox table while KAFKA_BROKERS is empty.
func StartOutboxRelay(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, q *sqlc.Queries, clk clock.Clock) {
	if !cfg.Kafka.Enabled() {
		slog.Info("outbox relay disabled")
		return
	}

	relay := outbox.NewRelay(uow, q, outbox.NewKafkaWriter(cfg.Kafka.Brokers), clk, outbox.Config{
		PollInterval: cfg.Kafka.PollInterval,
		BatchSize:    cfg.Kafka.BatchSize,
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			relay.Start(ctx)
			slog.Info("outbox relay started", "brokers", cfg.Kafka.Brokers)
			return nil
		},
		OnStop: relay.Stop,
	})
}
