package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/samandr77/stroika/internal/entity"
)

type accessClaims struct {
	jwt.RegisteredClaims

	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
}

// UserByToken verifies an RSA-signed access token issued by the
// identity provider and loads the user behind it. Deactivated users
// are rejected even with a valid token.
func (s *Service) UserByToken(ctx context.Context, accessToken string) (entity.User, error) {
	var claims accessClaims

	token, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodRSA)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.jwtPubKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return entity.User{}, fmt.Errorf("%w: token expired", entity.ErrUnauthorized)
		}

		return entity.User{}, fmt.Errorf("%w: %s", entity.ErrUnauthorized, err)
	}

	if !token.Valid || claims.UserID.IsNil() {
		return entity.User{}, entity.ErrUnauthorized
	}

	user, err := s.repo.UserByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.User{}, entity.ErrUnauthorized
		}

		return entity.User{}, fmt.Errorf("load user: %w", err)
	}

	if !user.IsActive {
		return entity.User{}, fmt.Errorf("%w: %s", entity.ErrUserInactive, user.ID)
	}

	return user, nil
}
