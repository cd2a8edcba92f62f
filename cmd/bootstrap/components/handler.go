package components

import (
	"context"

	"github.com/aljonb/sched/internal/handler"
	"github.com/aljonb/sched/internal/handler/api"
	"github.com/aljonb/sched/internal/handler/middleware"
	"github.com/aljonb/sched/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBusinessHandler,
		api.NewScheduleHandler,
		api.NewAvailabilityHandler,
		api.NewBookingHandler,
		api.NewOwnerAppointmentHandler,
		api.NewBlockedSlotHandler,
		NewHealthHandler,
		middleware.NewAuthMiddleware,
		func(cfg config.Config) config.RateLimitConfig { return cfg.RateLimit },
		middleware.NewRateLimiter,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

type handlerParams struct {
	fx.In

	Auth             *api.AuthHandler
	Business         *api.BusinessHandler
	Schedule         *api.ScheduleHandler
	Availability     *api.AvailabilityHandler
	Booking          *api.BookingHandler
	OwnerAppointment *api.OwnerAppointmentHandler
	BlockedSlot      *api.BlockedSlotHandler
	Health           *api.HealthHandler
}

func NewHandlers(p handlerParams) handler.Handlers {
	return handler.Handlers{
		Auth:             p.Auth,
		Business:         p.Business,
		Schedule:         p.Schedule,
		Availability:     p.Availability,
		Booking:          p.Booking,
		OwnerAppointment: p.OwnerAppointment,
		BlockedSlot:      p.BlockedSlot,
		Health:           p.Health,
	}
}

// NewHealthHandler checks postgres, plus redis when it is configured.
func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client) *api.HealthHandler {
	checks := []api.ReadinessCheck{
		{Name: "postgres", Check: pool.Ping},
	}
	if rdb != nil {
		checks = append(checks, api.ReadinessCheck{
			Name:  "redis",
			Check: func(ctx context.Context) error { return rdb.Ping(ctx).Err() },
		})
	}
	return api.NewHealthHandler(checks)
}
