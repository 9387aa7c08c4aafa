package auth

import (
	"strings"
	"testing"

	"keystone/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	hash, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	assert.NotEqual(t, "Password123!", hash)

	assert.True(t, hasher.Check("Password123!", hash))
	assert.False(t, hasher.Check("password123!", hash))
	assert.False(t, hasher.Check("Password123!", "not-a-hash"))
}

func TestBcryptHasher_HashesAreSalted(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	first, err := hasher.Hash("Password123!")
	require.NoError(t, err)
	second, err := hasher.Hash("Password123!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBcryptHasher_ValidatePasswordStrength_Defaults(t *testing.T) {
	hasher := NewBcryptHasher(nil)

	assert.Error(t, hasher.ValidatePasswordStrength("short"))
	assert.Error(t, hasher.ValidatePasswordStrength(strings.Repeat("a", 73)))
	assert.NoError(t, hasher.ValidatePasswordStrength("longenough"))
}

func TestBcryptHasher_ValidatePasswordStrength_Requirements(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{
		PasswordStrength: &config.PasswordStrengthConfig{
			MinLength:        8,
			RequireUppercase: true,
			RequireLowercase: true,
			RequireNumbers:   true,
			RequireSpecial:   true,
		},
	})

	assert.Error(t, hasher.ValidatePasswordStrength("password123!"))
	assert.Error(t, hasher.ValidatePasswordStrength("PASSWORD123!"))
	assert.Error(t, hasher.ValidatePasswordStrength("Passwordabc!"))
	assert.Error(t, hasher.ValidatePasswordStrength("Password1234"))
	assert.NoError(t, hasher.ValidatePasswordStrength("Password123!"))
}
