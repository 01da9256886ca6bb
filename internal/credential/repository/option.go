package repository

import "time"

// UpsertCredentialOptions holds a full credential as produced by the
// authorization flow. CreatedAt is kept when the identity already exists.
type UpsertCredentialOptions struct {
	Identity      string
	AccessToken   string
	RefreshToken  string
	AccessExpiry  time.Time
	RefreshExpiry time.Time
	Scope         string
	TokenType     string
	Now           time.Time
}

// UpdateAccessTokenOptions holds the result of a refresh. An empty
// RefreshToken leaves the stored one untouched.
type UpdateAccessTokenOptions struct {
	Identity     string
	AccessToken  string
	RefreshToken string
	AccessExpiry time.Time
	UpdatedAt    time.Time
}
