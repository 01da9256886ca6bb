package repository

import (
	"context"

	"notion-gcal-sync/internal/model"
)

// Repository is the durable credential store, one record per identity.
type Repository interface {
	// GetCredential returns a zero-value record (Exists() == false) when absent.
	GetCredential(ctx context.Context, identity string) (model.CredentialRecord, error)
	UpsertCredential(ctx context.Context, opt UpsertCredentialOptions) (model.CredentialRecord, error)
	UpdateAccessToken(ctx context.Context, opt UpdateAccessTokenOptions) error
}
