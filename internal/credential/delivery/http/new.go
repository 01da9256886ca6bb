package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"notion-gcal-sync/internal/credential"
	"notion-gcal-sync/pkg/log"
)

// Handler is the public interface for the authorization bootstrap endpoints.
type Handler interface {
	AuthURL(c *gin.Context)
	Callback(c *gin.Context)
}

const (
	maxPendingStates = 64
	stateTTL         = 10 * time.Minute
)

type handler struct {
	l        log.Logger
	uc       credential.UseCase
	identity string
	// states issued by AuthURL and not yet redeemed by Callback.
	states *expirable.LRU[string, struct{}]
}

// New creates a new HTTP handler for the credential domain.
func New(l log.Logger, uc credential.UseCase, identity string) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		identity: identity,
		states:   expirable.NewLRU[string, struct{}](maxPendingStates, nil, stateTTL),
	}
}
