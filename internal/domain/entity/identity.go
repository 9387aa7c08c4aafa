// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Validation errors raised by the AuthIdentity constructors and mutators.
var (
	// ErrPasswordHashRequired is returned when an email identity is built without a credential.
	ErrPasswordHashRequired = errors.New("email identity requires a password hash")
	// ErrPasswordNotSupported is returned when a password operation targets a non-email identity.
	ErrPasswordNotSupported = errors.New("only email identities support password operations")
	// ErrOAuthNotSupported is returned when an OAuth token update targets a non-OAuth identity.
	ErrOAuthNotSupported = errors.New("only oauth identities carry an oauth token bundle")
	// ErrInvalidProvider is returned for unknown provider values.
	ErrInvalidProvider = errors.New("unknown authentication provider")
)

// OAuthTokens is the token bundle stored for OAuth identities.
type OAuthTokens struct {
	AccessToken           string     // The provider-issued access token.
	RefreshToken          *string    // The provider-issued refresh token, if granted.
	AccessTokenExpiresAt  *time.Time // Expiry of the access token, if known.
	RefreshTokenExpiresAt *time.Time // Expiry of the refresh token, if known.
	Scope                 *string    // The granted OAuth scope string.
}

// AuthIdentity represents a single method of logging in (a credential).
// A user's email/password is one record, while a linked Google account is another.
// Exactly one of PasswordHash / OAuth is set, depending on the provider class.
type AuthIdentity struct {
	ID           uuid.UUID    // The unique ID for this specific authentication record itself.
	UserID       uuid.UUID    // Links this authentication method to the User it belongs to.
	Provider     Provider     // The authentication provider, e.g. "email", "google", "phone".
	AccountID    string       // The normalized identifier: email address, OAuth subject, or phone number.
	PasswordHash *string      // The bcrypt-hashed password. Set only when Provider is "email".
	OAuth        *OAuthTokens // The OAuth token bundle. Set only for OAuth providers.
	CreatedAt    time.Time    // Timestamp of when this authentication method was linked.
	UpdatedAt    time.Time    // Timestamp of the last modification to this record.
}

// NormalizeAccountID lower-cases an account identifier so lookups are
// case-insensitive regardless of how the caller spelled it.
func NormalizeAccountID(accountID string) string {
	return strings.ToLower(strings.TrimSpace(accountID))
}

// NewEmailIdentity creates an email/password identity. The password must
// already be hashed by the PasswordHasher at the service layer.
func NewEmailIdentity(userID uuid.UUID, email, passwordHash string) (*AuthIdentity, error) {
	if passwordHash == "" {
		return nil, ErrPasswordHashRequired
	}

	now := time.Now()

	return &AuthIdentity{
		ID:           uuid.New(),
		UserID:       userID,
		Provider:     ProviderEmail,
		AccountID:    NormalizeAccountID(email),
		PasswordHash: &passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// NewOAuthIdentity creates an identity for an OAuth provider. The account ID
// is the provider-side subject (e.g. Google's 'sub' claim).
func NewOAuthIdentity(userID uuid.UUID, provider Provider, accountID string, tokens OAuthTokens) (*AuthIdentity, error) {
	if !provider.IsOAuth() {
		return nil, ErrInvalidProvider
	}

	now := time.Now()

	return &AuthIdentity{
		ID:        uuid.New(),
		UserID:    userID,
		Provider:  provider,
		AccountID: NormalizeAccountID(accountID),
		OAuth:     &tokens,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NewPhoneIdentity creates a phone number identity. Phone identities carry
// neither a password nor OAuth tokens; verification happens via one-time codes.
func NewPhoneIdentity(userID uuid.UUID, phone string) (*AuthIdentity, error) {
	if phone == "" {
		return nil, ErrInvalidProvider
	}

	now := time.Now()

	return &AuthIdentity{
		ID:        uuid.New(),
		UserID:    userID,
		Provider:  ProviderPhone,
		AccountID: NormalizeAccountID(phone),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RequiresPassword reports whether this identity is verified by password.
func (a *AuthIdentity) RequiresPassword() bool {
	return a.Provider == ProviderEmail
}

// ChangePassword replaces the credential hash on an email identity.
// The new password must already be hashed at the service layer.
func (a *AuthIdentity) ChangePassword(newPasswordHash string) error {
	if a.Provider != ProviderEmail {
		return ErrPasswordNotSupported
	}
	if newPasswordHash == "" {
		return ErrPasswordHashRequired
	}

	a.PasswordHash = &newPasswordHash
	a.UpdatedAt = time.Now()

	return nil
}

// UpdateOAuthTokens refreshes the stored OAuth token bundle. Fields that are
// nil on the incoming bundle keep their previous values.
func (a *AuthIdentity) UpdateOAuthTokens(tokens OAuthTokens) error {
	if !a.Provider.IsOAuth() {
		return ErrOAuthNotSupported
	}

	if a.OAuth == nil {
		a.OAuth = &OAuthTokens{}
	}

	a.OAuth.AccessToken = tokens.AccessToken
	if tokens.RefreshToken != nil {
		a.OAuth.RefreshToken = tokens.RefreshToken
	}
	if tokens.AccessTokenExpiresAt != nil {
		a.OAuth.AccessTokenExpiresAt = tokens.AccessTokenExpiresAt
	}
	if tokens.RefreshTokenExpiresAt != nil {
		a.OAuth.RefreshTokenExpiresAt = tokens.RefreshTokenExpiresAt
	}
	if tokens.Scope != nil {
		a.OAuth.Scope = tokens.Scope
	}
	a.UpdatedAt = time.Now()

	return nil
}

// Touch bumps UpdatedAt, recording activity on the identity (e.g. a login).
func (a *AuthIdentity) Touch() {
	a.UpdatedAt = time.Now()
}
