package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"notion-gcal-sync/internal/credential"
	"notion-gcal-sync/internal/middleware"
	"notion-gcal-sync/internal/model"
	"notion-gcal-sync/pkg/log"
)

type fakeUseCase struct {
	bootstrapIn  credential.BootstrapInput
	bootstrapErr error
	calls        int
}

func (f *fakeUseCase) EnsureValid(ctx context.Context, identity string) (model.UsableCredential, error) {
	return model.UsableCredential{}, nil
}

func (f *fakeUseCase) AuthURL(state string) string {
	return "https://accounts.example/auth?state=" + state
}

func (f *fakeUseCase) Bootstrap(ctx context.Context, in credential.BootstrapInput) (credential.BootstrapOutput, error) {
	f.calls++
	f.bootstrapIn = in
	if f.bootstrapErr != nil {
		return credential.BootstrapOutput{}, f.bootstrapErr
	}
	if in.Code == "" {
		return credential.BootstrapOutput{}, credential.ErrMissingCode
	}
	return credential.BootstrapOutput{Record: model.CredentialRecord{
		Identity:     in.Identity,
		AccessExpiry: time.Date(2024, 6, 1, 1, 0, 0, 0, time.UTC),
		Scope:        "calendar",
	}}, nil
}

func newTestRouter(uc credential.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), middleware.Config{InternalKey: "secret", AuthScheme: "Hanning"})
	RegisterRoutes(r, New(log.NewNop(), uc, model.DefaultIdentity), mw)
	return r
}

// issueState fetches an auth URL and returns the state it carries.
func issueState(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth-url", nil)
	req.Header.Set("Authorization", "Hanning secret")
	r.ServeHTTP(w, req)

	var body struct {
		Data authURLResp `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	u, err := url.Parse(body.Data.AuthURL)
	if err != nil {
		t.Fatalf("parse auth url: %v", err)
	}
	return u.Query().Get("state")
}

func callback(r *gin.Engine, query string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/oauth2callback?"+query, nil))
	return w
}

func TestAuthURL(t *testing.T) {
	r := newTestRouter(&fakeUseCase{})

	t.Run("authorized", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/auth-url", nil)
		req.Header.Set("Authorization", "Hanning secret")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Data authURLResp `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		state := strings.TrimPrefix(body.Data.AuthURL, "https://accounts.example/auth?state=")
		if state == "" || state == body.Data.AuthURL || state == model.DefaultIdentity {
			t.Errorf("expected a random state, got auth url %q", body.Data.AuthURL)
		}
	})

	t.Run("fresh state per call", func(t *testing.T) {
		if a, b := issueState(t, r), issueState(t, r); a == b {
			t.Errorf("expected distinct states, got %q twice", a)
		}
	})

	t.Run("missing key", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth-url", nil))
		if w.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", w.Code)
		}
	})
}

func TestCallback(t *testing.T) {
	t.Run("stores credential", func(t *testing.T) {
		uc := &fakeUseCase{}
		r := newTestRouter(uc)

		w := callback(r, "code=abc&state="+issueState(t, r))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.bootstrapIn.Code != "abc" || uc.bootstrapIn.Identity != model.DefaultIdentity {
			t.Errorf("unexpected bootstrap input %+v", uc.bootstrapIn)
		}
	})

	t.Run("rejects missing or unknown state", func(t *testing.T) {
		uc := &fakeUseCase{}
		r := newTestRouter(uc)
		issueState(t, r)

		for _, query := range []string{"code=abc", "code=abc&state=forged", "code=abc&state=" + model.DefaultIdentity} {
			if w := callback(r, query); w.Code != http.StatusBadRequest {
				t.Errorf("%s: expected 400, got %d", query, w.Code)
			}
		}
		if uc.calls != 0 {
			t.Errorf("expected no exchange, got %d", uc.calls)
		}
	})

	t.Run("state is single use", func(t *testing.T) {
		uc := &fakeUseCase{}
		r := newTestRouter(uc)
		state := issueState(t, r)

		if w := callback(r, "code=abc&state="+state); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w := callback(r, "code=def&state="+state); w.Code != http.StatusBadRequest {
			t.Errorf("expected replay to be rejected, got %d", w.Code)
		}
		if uc.calls != 1 {
			t.Errorf("expected one exchange, got %d", uc.calls)
		}
	})

	t.Run("missing code", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{})

		if w := callback(r, "state="+issueState(t, r)); w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no refresh token", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{bootstrapErr: credential.ErrNoRefreshToken})

		if w := callback(r, "code=abc&state="+issueState(t, r)); w.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", w.Code)
		}
	})

	t.Run("exchange failure", func(t *testing.T) {
		r := newTestRouter(&fakeUseCase{bootstrapErr: context.DeadlineExceeded})

		if w := callback(r, "code=abc&state="+issueState(t, r)); w.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", w.Code)
		}
	})
}
