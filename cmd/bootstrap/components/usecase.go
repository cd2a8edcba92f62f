package components

import (
	"github.com/aljonb/sched/internal/domain/appointment"
	"github.com/aljonb/sched/internal/pkg/clock"
	"github.com/aljonb/sched/internal/pkg/config"
	"github.com/aljonb/sched/internal/pkg/jwt"
	"github.com/aljonb/sched/internal/usecase"
	"github.com/aljonb/sched/internal/usecase/commands"
	"github.com/aljonb/sched/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	appointment.NewRandomTokenGenerator,
	func(cfg config.Config) config.BookingConfig { return cfg.Booking },
	func(cfg config.Config) queries.AvailabilityConfig {
		return queries.NewAvailabilityConfig(cfg.Booking, cfg.Redis)
	},
	fx.Annotate(
		func(s *jwt.Service) *jwt.Service { return s },
		fx.As(new(commands.TokenIssuer)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBusinessCommands,
		commands.NewScheduleCommands,
		commands.NewBookingCommands,
		commands.NewAppointmentCommands,
		commands.NewBlockedSlotCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBusinessQueries,
		queries.NewScheduleQueries,
		queries.NewAvailabilityQueries,
		queries.NewAppointmentQueries,
		queries.NewBlockedSlotQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
