package middleware

import (
	"notion-gcal-sync/pkg/log"
)

type Middleware struct {
	l             log.Logger
	internalKey   string
	authScheme    string
	webhookSecret string
	limiter       *rateLimiter
}

// Config is the dependency bag passed to New().
type Config struct {
	InternalKey     string
	AuthScheme      string
	WebhookSecret   string
	RateLimitPerMin int
}

func New(l log.Logger, cfg Config) Middleware {
	scheme := cfg.AuthScheme
	if scheme == "" {
		scheme = "Bearer"
	}
	return Middleware{
		l:             l,
		internalKey:   cfg.InternalKey,
		authScheme:    scheme,
		webhookSecret: cfg.WebhookSecret,
		limiter:       newRateLimiter(cfg.RateLimitPerMin),
	}
}
