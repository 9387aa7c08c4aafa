package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every identity carries exactly one credential form: email identities a
// password hash, OAuth identities a token bundle, phone identities neither.

func TestNewEmailIdentity_RequiresPasswordHash(t *testing.T) {
	identity, err := NewEmailIdentity(uuid.New(), "user@example.com", "")

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrPasswordHashRequired)
}

func TestNewEmailIdentity_CarriesOnlyPasswordHash(t *testing.T) {
	identity, err := NewEmailIdentity(uuid.New(), "User@Example.com", "hashed")
	require.NoError(t, err)

	assert.Equal(t, ProviderEmail, identity.Provider)
	assert.Equal(t, "user@example.com", identity.AccountID)
	require.NotNil(t, identity.PasswordHash)
	assert.Equal(t, "hashed", *identity.PasswordHash)
	assert.Nil(t, identity.OAuth)
	assert.True(t, identity.RequiresPassword())
}

func TestNewOAuthIdentity_CarriesOnlyTokenBundle(t *testing.T) {
	identity, err := NewOAuthIdentity(uuid.New(), ProviderGoogle, "google-subject-123", OAuthTokens{
		AccessToken: "access",
	})
	require.NoError(t, err)

	assert.Nil(t, identity.PasswordHash)
	require.NotNil(t, identity.OAuth)
	assert.Equal(t, "access", identity.OAuth.AccessToken)
	assert.False(t, identity.RequiresPassword())
}

func TestNewOAuthIdentity_RejectsNonOAuthProvider(t *testing.T) {
	identity, err := NewOAuthIdentity(uuid.New(), ProviderEmail, "user@example.com", OAuthTokens{})

	assert.Nil(t, identity)
	assert.ErrorIs(t, err, ErrInvalidProvider)
}

func TestAuthIdentity_ChangePassword(t *testing.T) {
	identity, err := NewEmailIdentity(uuid.New(), "user@example.com", "old-hash")
	require.NoError(t, err)

	require.NoError(t, identity.ChangePassword("new-hash"))
	assert.Equal(t, "new-hash", *identity.PasswordHash)

	assert.ErrorIs(t, identity.ChangePassword(""), ErrPasswordHashRequired)
}

func TestAuthIdentity_ChangePassword_NonEmailIdentity(t *testing.T) {
	identity, err := NewOAuthIdentity(uuid.New(), ProviderGitHub, "gh-subject", OAuthTokens{})
	require.NoError(t, err)

	assert.ErrorIs(t, identity.ChangePassword("new-hash"), ErrPasswordNotSupported)
	assert.Nil(t, identity.PasswordHash)
}

func TestNormalizeAccountID(t *testing.T) {
	assert.Equal(t, "user@example.com", NormalizeAccountID("  User@Example.COM "))
}
