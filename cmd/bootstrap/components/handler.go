package components

import (
	"rooftop-wizard/internal/handler"
	"rooftop-wizard/internal/handler/api"
	"rooftop-wizard/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewWizardHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
