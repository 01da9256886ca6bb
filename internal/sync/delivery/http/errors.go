package http

import (
	"errors"
	"net/http"

	"notion-gcal-sync/internal/credential"
	"notion-gcal-sync/internal/sync"
	pkgErrors "notion-gcal-sync/pkg/errors"
)

var errInvalidPayload = errors.New("invalid webhook payload")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, errInvalidPayload):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, errInvalidPayload.Error())
	case errors.Is(err, sync.ErrSyncInProgress):
		return pkgErrors.NewHTTPError(http.StatusConflict, sync.ErrSyncInProgress.Error())
	case errors.Is(err, credential.ErrCredentialRevoked):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, credential.ErrCredentialRevoked.Error())
	case errors.Is(err, credential.ErrNotInitialized):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, credential.ErrNotInitialized.Error())
	case errors.Is(err, sync.ErrSourceFetchFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, sync.ErrSourceFetchFailed.Error())
	case errors.Is(err, sync.ErrTargetMutationFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, sync.ErrTargetMutationFailed.Error())
	case errors.Is(err, sync.ErrCachePersistenceFailed):
		return pkgErrors.NewHTTPError(http.StatusInternalServerError, sync.ErrCachePersistenceFailed.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}
