package components

import (
	"log/slog"

	"rooftop-wizard/internal/infra/availability"
	"rooftop-wizard/internal/infra/bookinggw"
	"rooftop-wizard/internal/infra/sessionstore"
	"rooftop-wizard/internal/pkg/config"
	"rooftop-wizard/internal/usecase/commands"
	"rooftop-wizard/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(commands.SessionRepository)),
			fx.As(new(queries.SessionReadStore)),
		),
		fx.Annotate(
			NewAvailabilityChecker,
			fx.As(new(commands.AvailabilityChecker)),
		),
		fx.Annotate(
			NewBookingGateway,
			fx.As(new(commands.BookingGateway)),
		),
	),
)

func NewSessionStore(client *redis.Client, cfg config.Config, logger *slog.Logger) *sessionstore.RedisSessionStore {
	return sessionstore.NewRedisSessionStore(client, cfg.Wizard.SessionTTL, logger)
}

func NewAvailabilityChecker(pool *pgxpool.Pool, logger *slog.Logger) *availability.PostgresChecker {
	return availability.NewPostgresChecker(pool, logger)
}

func NewBookingGateway(cfg config.Config) *bookinggw.Client {
	return bookinggw.NewClient(cfg.BookingAPI)
}
