package usecase

import (
	"rooftop-wizard/internal/pkg/errs"
	"rooftop-wizard/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator checks platform-issued access tokens. Login, refresh and
// user storage live in the auth service; this is verification only.
type TokenValidator interface {
	ValidateToken(token string) (uuid.UUID, error)
}

type tokenValidatorImpl struct {
	verifier *jwt.Verifier
}

func NewTokenValidator(verifier *jwt.Verifier) TokenValidator {
	return &tokenValidatorImpl{verifier: verifier}
}

func (v *tokenValidatorImpl) ValidateToken(token string) (uuid.UUID, error) {
	claims, err := v.verifier.VerifyToken(token)
	if err != nil {
		return uuid.Nil, errs.Wrap(err, "token verification failed")
	}
	if claims.UserID == uuid.Nil {
		return uuid.Nil, errs.New("token missing user id")
	}
	return claims.UserID, nil
}
