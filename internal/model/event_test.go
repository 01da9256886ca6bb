package model_test

import (
	"testing"
	"time"

	"notion-gcal-sync/internal/model"
)

func TestSourceEventFields(t *testing.T) {
	t.Run("uses event zone", func(t *testing.T) {
		e := model.SourceEvent{Title: "Standup", StartDate: "2024-01-02T09:00:00.000+08:00", EndDate: "2024-01-02T09:15:00.000+08:00", TimeZone: "Europe/Paris"}
		f := e.Fields("Asia/Shanghai")
		if f.TimeZone != "Europe/Paris" {
			t.Errorf("expected event zone, got %s", f.TimeZone)
		}
		if f.Summary != "Standup" || f.Start != e.StartDate || f.End != e.EndDate {
			t.Errorf("unexpected fields: %+v", f)
		}
	})

	t.Run("falls back to default zone", func(t *testing.T) {
		f := model.SourceEvent{Title: "x"}.Fields("Asia/Shanghai")
		if f.TimeZone != "Asia/Shanghai" {
			t.Errorf("expected default zone, got %q", f.TimeZone)
		}
	})
}

func TestToCached(t *testing.T) {
	e := model.SourceEvent{ID: "a1", Title: "t", LastEditedTime: "2024-01-01T00:00:00Z"}
	c := e.ToCached("g1")
	if c.ID != "a1" || c.TargetEventID != "g1" || c.LastEditedTime != e.LastEditedTime {
		t.Errorf("unexpected cached event: %+v", c)
	}
	if !c.HasTarget() {
		t.Error("expected HasTarget")
	}
	if (model.CachedEvent{}).HasTarget() {
		t.Error("expected no target on zero value")
	}
}

func TestUsableCredentialToken(t *testing.T) {
	exp := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	tok := model.UsableCredential{AccessToken: "abc", Expiry: exp}.Token()
	if tok.TokenType != "Bearer" {
		t.Errorf("expected Bearer default, got %s", tok.TokenType)
	}
	if tok.AccessToken != "abc" || !tok.Expiry.Equal(exp) {
		t.Errorf("unexpected token: %+v", tok)
	}
}
