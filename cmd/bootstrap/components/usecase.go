package components

import (
	"time"

	"rooftop-wizard/internal/pkg/clock"
	"rooftop-wizard/internal/pkg/config"
	"rooftop-wizard/internal/usecase"
	"rooftop-wizard/internal/usecase/commands"
	"rooftop-wizard/internal/usecase/queries"

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
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewWizardCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewWizardQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewWizardCommands(
	cfg config.Config,
	sessions commands.SessionRepository,
	availability commands.AvailabilityChecker,
	gateway commands.BookingGateway,
	clk clock.Clock,
) (commands.WizardCommands, error) {
	loc, err := time.LoadLocation(cfg.Wizard.TimeZone)
	if err != nil {
		return nil, err
	}
	return commands.NewWizardCommands(sessions, availability, gateway, clk, loc, cfg.BookingAPI.Timeout), nil
}
