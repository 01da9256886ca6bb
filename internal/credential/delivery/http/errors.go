package http

import (
	"errors"
	"net/http"

	"notion-gcal-sync/internal/credential"
	pkgErrors "notion-gcal-sync/pkg/errors"
)

var errInvalidState = errors.New("unknown or expired state: request a new authorization URL")

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, errInvalidState):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, errInvalidState.Error())
	case errors.Is(err, credential.ErrMissingCode):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "missing authorization code")
	case errors.Is(err, credential.ErrNoRefreshToken):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "no refresh token returned: revoke the app's access and authorize again")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
