package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"notion-gcal-sync/pkg/response"
)

// AuthURL godoc
// @Summary     Google consent URL
// @Description Returns the offline-access consent URL used to bootstrap the stored credential.
// @Description The URL carries a one-time state that the callback must echo within ten minutes.
// @Tags        Auth
// @Produce     json
// @Security    InternalKey
// @Success     200 {object} authURLResp
// @Failure     403 {object} response.Resp "Forbidden"
// @Router      /api/auth-url [GET]
func (h *handler) AuthURL(c *gin.Context) {
	state := uuid.NewString()
	h.states.Add(state, struct{}{})
	response.OK(c, authURLResp{AuthURL: h.uc.AuthURL(state)})
}

// Callback godoc
// @Summary     OAuth redirect target
// @Description Exchanges the authorization code and stores the credential.
// @Tags        Auth
// @Produce     json
// @Param       code query string true "Authorization code"
// @Param       state query string true "State issued by /api/auth-url"
// @Success     200 {object} callbackResp
// @Failure     400 {object} response.Resp "Missing code or unknown state"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /oauth2callback [GET]
func (h *handler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	var req callbackReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	// States are single use.
	if req.State == "" || !h.states.Remove(req.State) {
		h.l.Warnf(ctx, "credential.Callback: unknown or expired state")
		response.Error(c, h.mapError(errInvalidState), nil)
		return
	}

	output, err := h.uc.Bootstrap(ctx, req.toInput(h.identity))
	if err != nil {
		h.l.Errorf(ctx, "uc.Bootstrap: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	h.l.Infof(ctx, "credential stored for %s", output.Record.Identity)
	response.OK(c, h.newCallbackResp(output))
}
