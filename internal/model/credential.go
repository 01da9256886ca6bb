package model

import (
	"time"

	"golang.org/x/oauth2"
)

// DefaultIdentity is the logical identity the sync service runs as.
const DefaultIdentity = "service-sync"

// CredentialRecord is the persisted delegated-access credential of one identity.
type CredentialRecord struct {
	Identity      string
	AccessToken   string
	RefreshToken  string
	AccessExpiry  time.Time
	RefreshExpiry time.Time // informational only
	Scope         string
	TokenType     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Exists reports whether the record was found in the store.
func (r CredentialRecord) Exists() bool {
	return r.Identity != ""
}

// UsableCredential is an access token that is safe to attach to outbound calls.
type UsableCredential struct {
	AccessToken string
	TokenType   string
	Expiry      time.Time
}

// Token converts the credential for use with oauth2 token sources.
func (c UsableCredential) Token() *oauth2.Token {
	tokenType := c.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}
	return &oauth2.Token{
		AccessToken: c.AccessToken,
		TokenType:   tokenType,
		Expiry:      c.Expiry,
	}
}
