package auth

import (
	"testing"
	"time"

	"keystone/config"
	domainerrors "keystone/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestIssuerConfig(secret, accessExpiresIn string) *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:           secret,
			AccessExpiresIn:  accessExpiresIn,
			RefreshExpiresIn: "7d",
		},
	}
}

func TestNewJWTIssuer_RequiresSecret(t *testing.T) {
	_, err := NewJWTIssuer(newTestIssuerConfig("", "15m"))

	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
}

func TestNewJWTIssuer_RejectsMalformedExpiry(t *testing.T) {
	_, err := NewJWTIssuer(newTestIssuerConfig("secret", "fifteen-minutes"))

	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
}

func TestJWTIssuer_SignAndVerify(t *testing.T) {
	issuer, err := NewJWTIssuer(newTestIssuerConfig("test-secret", "15m"))
	require.NoError(t, err)

	userID := uuid.New()
	sessionID := uuid.New()

	signed, err := issuer.Sign(userID, "test@example.com", []string{"USER"}, sessionID)
	require.NoError(t, err)

	claims, err := issuer.Verify(signed)
	require.NoError(t, err)

	parsedID, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, userID, parsedID)
	assert.Equal(t, "test@example.com", claims.Email)
	assert.Equal(t, []string{"USER"}, claims.Roles)
	assert.Equal(t, sessionID, claims.SessionID)
}

func TestJWTIssuer_Verify_WrongSecret(t *testing.T) {
	issuer, err := NewJWTIssuer(newTestIssuerConfig("secret-one", "15m"))
	require.NoError(t, err)
	other, err := NewJWTIssuer(newTestIssuerConfig("secret-two", "15m"))
	require.NoError(t, err)

	signed, err := issuer.Sign(uuid.New(), "test@example.com", nil, uuid.New())
	require.NoError(t, err)

	claims, err := other.Verify(signed)

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTIssuer_Verify_ExpiredToken(t *testing.T) {
	issuerWithPast := &jwtIssuer{
		secret:    []byte("test-secret"),
		accessTTL: -time.Minute,
	}

	signed, err := issuerWithPast.Sign(uuid.New(), "test@example.com", nil, uuid.New())
	require.NoError(t, err)

	claims, err := issuerWithPast.Verify(signed)

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTIssuer_Verify_Garbage(t *testing.T) {
	issuer, err := NewJWTIssuer(newTestIssuerConfig("test-secret", "15m"))
	require.NoError(t, err)

	claims, err := issuer.Verify("not.a.token")

	assert.Nil(t, claims)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidToken))
}

func TestJWTIssuer_Durations(t *testing.T) {
	issuer, err := NewJWTIssuer(newTestIssuerConfig("test-secret", "15m"))
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, issuer.AccessTokenDuration())
	assert.Equal(t, 7*24*time.Hour, issuer.RefreshTokenDuration())
}
