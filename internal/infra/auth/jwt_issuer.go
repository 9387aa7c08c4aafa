// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"keystone/config"
	domainerrors "keystone/internal/domain/errors"
	"keystone/internal/domain/service"
)

// jwtIssuer is a concrete implementation of the TokenIssuer interface using the JWT standard.
type jwtIssuer struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTIssuer is the constructor for jwtIssuer. Malformed lifetime strings
// in the configuration abort startup; there is no fallback lifetime.
func NewJWTIssuer(cfg *config.Config) (service.TokenIssuer, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.Wrap(domainerrors.ErrConfiguration, "jwt secret must be provided")
	}

	accessTTL, err := config.ParseExpiry(cfg.JWT.AccessExpiresIn)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrConfiguration, err.Error())
	}

	refreshTTL, err := config.ParseExpiry(cfg.JWT.RefreshExpiresIn)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrConfiguration, err.Error())
	}

	return &jwtIssuer{
		secret:     []byte(cfg.JWT.Secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// Sign creates a signed HS256 access token bound to one device session.
func (s *jwtIssuer) Sign(userID uuid.UUID, email string, roles []string, sessionID uuid.UUID) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		Email:     email,
		Roles:     roles,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// Verify checks a token string and returns its claims when valid. Expired,
// malformed, and foreign-signature tokens all surface as ErrInvalidToken.
func (s *jwtIssuer) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}
	if !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token is not valid")
	}

	return claims, nil
}

// AccessTokenDuration returns the configured lifetime of access tokens.
func (s *jwtIssuer) AccessTokenDuration() time.Duration {
	return s.accessTTL
}

// RefreshTokenDuration returns the configured lifetime of refresh-token sessions.
func (s *jwtIssuer) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}
