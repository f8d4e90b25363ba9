package bootstrap

import (
	"rooftop-wizard/internal/pkg/config"
	"rooftop-wizard/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTVerifier,
	),
)

func NewJWTVerifier(cfg config.Config) *jwt.Verifier {
	return jwt.NewVerifier(cfg.Auth.JWTSecret)
}
