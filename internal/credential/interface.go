package credential

import (
	"context"

	"notion-gcal-sync/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// EnsureValid returns a credential that stays valid for more than a minute,
	// refreshing and persisting it when necessary.
	EnsureValid(ctx context.Context, identity string) (model.UsableCredential, error)
	// AuthURL returns the consent URL for the one-time authorization flow.
	AuthURL(state string) string
	// Bootstrap exchanges an authorization code and stores the credential.
	Bootstrap(ctx context.Context, input BootstrapInput) (BootstrapOutput, error)
}
