package http

import (
	"encoding/json"
	"io"

	"github.com/gin-gonic/gin"

	"notion-gcal-sync/internal/sync"
)

type verificationResp struct {
	Status string `json:"status"`
}

type runResp struct {
	RunID      string `json:"run_id"`
	Fetched    int    `json:"fetched"`
	Created    int    `json:"created"`
	Updated    int    `json:"updated"`
	Deleted    int    `json:"deleted"`
	Skipped    int    `json:"skipped"`
	Unchanged  int    `json:"unchanged"`
	DurationMS int64  `json:"duration_ms"`
}

func (h *handler) newRunResp(s sync.Summary) runResp {
	return runResp{
		RunID:      s.RunID,
		Fetched:    s.Fetched,
		Created:    s.Created,
		Updated:    s.Updated,
		Deleted:    s.Deleted,
		Skipped:    s.Skipped,
		Unchanged:  s.Unchanged,
		DurationMS: s.Duration.Milliseconds(),
	}
}

// processWebhookReq reads the payload. An empty body is a plain trigger.
func (h *handler) processWebhookReq(c *gin.Context) (sync.WebhookPayload, error) {
	var payload sync.WebhookPayload

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return payload, errInvalidPayload
	}
	if len(body) == 0 {
		return payload, nil
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return payload, errInvalidPayload
	}
	return payload, nil
}
