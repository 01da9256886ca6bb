package credential

import (
	"time"

	"notion-gcal-sync/internal/model"
)

// RefreshMargin is how long before expiry an access token is treated as stale.
const RefreshMargin = 60 * time.Second

// DefaultAccessLifetime is assumed when the authority omits expires_in.
const DefaultAccessLifetime = time.Hour

type BootstrapInput struct {
	Identity string
	Code     string
}

type BootstrapOutput struct {
	Record model.CredentialRecord
}
