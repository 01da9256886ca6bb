package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"notion-gcal-sync/internal/sync"
	"notion-gcal-sync/pkg/log"
)

// Handler is the public interface for the sync trigger endpoint.
type Handler interface {
	Webhook(c *gin.Context)
}

type handler struct {
	l          log.Logger
	uc         sync.UseCase
	runTimeout time.Duration
}

// New creates a new HTTP handler for the sync domain.
func New(l log.Logger, uc sync.UseCase, runTimeout time.Duration) *handler {
	return &handler{
		l:          l,
		uc:         uc,
		runTimeout: runTimeout,
	}
}
