package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"notion-gcal-sync/pkg/response"
)

// Webhook godoc
// @Summary     Notion webhook
// @Description Acknowledges the subscription handshake, otherwise runs one sync pass and returns its summary.
// @Tags        Sync
// @Accept      json
// @Produce     json
// @Param       X-Notion-Signature header string false "sha256=<hex> HMAC of the body"
// @Success     200 {object} runResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     401 {object} response.Resp "Invalid signature"
// @Failure     409 {object} response.Resp "Sync already running"
// @Failure     429 {object} response.Resp "Rate limit exceeded"
// @Failure     500 {object} response.Resp "Sync failed"
// @Router      /webhook/notion [POST]
func (h *handler) Webhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := h.processWebhookReq(c)
	if err != nil {
		h.l.Warnf(ctx, "sync.Webhook: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	if payload.VerificationToken != "" {
		h.l.Infof(ctx, "sync.Webhook: notion verification token received")
		response.OK(c, verificationResp{Status: "verified"})
		return
	}

	if payload.Type != "" {
		h.l.Infof(ctx, "sync.Webhook: %s on %s %s", payload.Type, payload.Entity.Type, payload.Entity.ID)
	}

	if h.runTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.runTimeout)
		defer cancel()
	}

	summary, err := h.uc.Run(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Run: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newRunResp(summary))
}
