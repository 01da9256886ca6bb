package credential

import "errors"

var (
	// ErrNotInitialized means no credential exists for the identity; the
	// interactive authorization flow has to run first.
	ErrNotInitialized = errors.New("credential not initialized: run the authorization flow first")
	// ErrCredentialRevoked means the authority rejected the refresh token.
	ErrCredentialRevoked = errors.New("google refresh token invalid or revoked: re-run the authorization flow")
	ErrMissingCode       = errors.New("missing authorization code")
	ErrNoRefreshToken    = errors.New("authority did not return a refresh token")
)
