// Package entity contains the core business objects of the project.
package entity

import "slices"

// Provider represents an authentication method type bound to an identity.
type Provider string

const (
	// ProviderEmail indicates email/password authentication.
	ProviderEmail Provider = "email"
	// ProviderGoogle indicates Google OAuth authentication.
	ProviderGoogle Provider = "google"
	// ProviderGitHub indicates GitHub OAuth authentication.
	ProviderGitHub Provider = "github"
	// ProviderPhone indicates phone number authentication.
	ProviderPhone Provider = "phone"
)

// oauthProviders are the providers that carry an OAuth token bundle.
var oauthProviders = []Provider{ProviderGoogle, ProviderGitHub}

// String returns the string representation of the Provider.
func (p Provider) String() string {
	return string(p)
}

// IsValid checks if the Provider is a known value.
func (p Provider) IsValid() bool {
	switch p {
	case ProviderEmail, ProviderGoogle, ProviderGitHub, ProviderPhone:
		return true
	default:
		return false
	}
}

// IsOAuth reports whether the provider is an OAuth provider.
func (p Provider) IsOAuth() bool {
	return slices.Contains(oauthProviders, p)
}
