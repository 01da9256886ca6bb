package log_test

import (
	"context"
	"testing"

	"notion-gcal-sync/pkg/log"
)

func TestInit(t *testing.T) {
	cases := []log.ZapConfig{
		{Level: "debug", Mode: "debug", Encoding: "console", ColorEnabled: true},
		{Level: "info", Mode: "production", Encoding: "json"},
		{Level: "not-a-level", Mode: "production", Encoding: "json"},
	}

	for _, cfg := range cases {
		t.Run(cfg.Level+"/"+cfg.Encoding, func(t *testing.T) {
			l := log.Init(cfg)
			if l == nil {
				t.Fatal("expected logger")
			}
			ctx := log.WithRunID(context.Background(), "run-1")
			l.Infof(ctx, "hello %s", "world")
			l.Debug(ctx, "debug line")
			l.Warnf(context.Background(), "warn %d", 1)
		})
	}
}

func TestNewNop(t *testing.T) {
	l := log.NewNop()
	l.Errorf(context.Background(), "discarded %v", "error")
}
