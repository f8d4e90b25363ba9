package bootstrap

import (
	"rooftop-wizard/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	components.InfraModule,
	components.UseCaseModule,
	components.HandlerModule,
)
