package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"notion-gcal-sync/internal/credential"
	"notion-gcal-sync/internal/middleware"
	"notion-gcal-sync/internal/sync"
	"notion-gcal-sync/pkg/log"
)

type fakeUseCase struct {
	summary sync.Summary
	err     error
	calls   int
}

func (f *fakeUseCase) Run(ctx context.Context) (sync.Summary, error) {
	f.calls++
	return f.summary, f.err
}

func newTestRouter(uc sync.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.HandleMethodNotAllowed = true
	mw := middleware.New(log.NewNop(), middleware.Config{RateLimitPerMin: 6000})
	RegisterRoutes(r, New(log.NewNop(), uc, time.Minute), mw)
	return r
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/notion", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestWebhookVerification(t *testing.T) {
	uc := &fakeUseCase{}
	w := post(newTestRouter(uc), `{"verification_token":"secret_abc"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if uc.calls != 0 {
		t.Errorf("verification must not trigger a sync, got %d runs", uc.calls)
	}
}

func TestWebhookRunsSync(t *testing.T) {
	uc := &fakeUseCase{summary: sync.Summary{RunID: "run-1", Created: 2, Deleted: 1, Duration: 1500 * time.Millisecond}}

	for _, body := range []string{`{"type":"page.properties_updated","entity":{"id":"p1","type":"page"}}`, ``} {
		w := post(newTestRouter(uc), body)
		if w.Code != http.StatusOK {
			t.Fatalf("body %q: expected 200, got %d", body, w.Code)
		}

		var resp struct {
			Data runResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if resp.Data.RunID != "run-1" || resp.Data.Created != 2 || resp.Data.Deleted != 1 || resp.Data.DurationMS != 1500 {
			t.Errorf("unexpected response %+v", resp.Data)
		}
	}
	if uc.calls != 2 {
		t.Errorf("expected 2 runs, got %d", uc.calls)
	}
}

func TestWebhookErrors(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{"invalid json", `{`, nil, http.StatusBadRequest, "invalid webhook payload"},
		{"revoked", `{}`, fmt.Errorf("%w: %w", credential.ErrCredentialRevoked, fmt.Errorf("oauth2: \"invalid_grant\"")), http.StatusInternalServerError, "re-run the authorization flow"},
		{"not initialized", `{}`, credential.ErrNotInitialized, http.StatusInternalServerError, "run the authorization flow first"},
		{"in progress", `{}`, sync.ErrSyncInProgress, http.StatusConflict, "already in progress"},
		{"fetch", `{}`, fmt.Errorf("%w: boom", sync.ErrSourceFetchFailed), http.StatusInternalServerError, "source fetch failed"},
		{"mutation", `{}`, fmt.Errorf("%w: boom", sync.ErrTargetMutationFailed), http.StatusInternalServerError, "mutation failed"},
		{"cache", `{}`, fmt.Errorf("%w: boom", sync.ErrCachePersistenceFailed), http.StatusInternalServerError, "persistence failed"},
		{"unknown", `{}`, context.DeadlineExceeded, http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(newTestRouter(&fakeUseCase{err: tt.err}), tt.body)
			if w.Code != tt.wantCode {
				t.Fatalf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if !strings.Contains(w.Body.String(), tt.wantMsg) {
				t.Errorf("expected message containing %q, got %s", tt.wantMsg, w.Body.String())
			}
		})
	}
}

func TestWebhookMethodNotAllowed(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/webhook/notion", nil))
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405, got %d", w.Code)
	}
}
