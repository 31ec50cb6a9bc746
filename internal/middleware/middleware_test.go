package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/akolanti/DocBridgeAPI/internal/config"
	"golang.org/x/time/rate"
)

type stubLimiter struct {
	allow bool
	err   error
	keys  []string
}

func (s *stubLimiter) Allow(_ context.Context, key string) (bool, error) {
	s.keys = append(s.keys, key)
	return s.allow, s.err
}

func okHandler(gotTrace *string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if gotTrace != nil {
			*gotTrace, _ = r.Context().Value(config.TRACE_ID_KEY).(string)
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func TestWrap_TraceID(t *testing.T) {
	chain := NewChain(config.Settings{}, &stubLimiter{allow: true})

	var got string
	req := httptest.NewRequest(http.MethodPost, "/list_files", nil)
	req.Header.Set(config.TRACE_HEADER, "trace-1")
	rec := httptest.NewRecorder()
	chain.Wrap(okHandler(&got))(rec, req)

	if got != "trace-1" || rec.Header().Get(config.TRACE_HEADER) != "trace-1" {
		t.Errorf("trace not propagated: ctx=%q header=%q", got, rec.Header().Get(config.TRACE_HEADER))
	}

	rec = httptest.NewRecorder()
	chain.Wrap(okHandler(&got))(rec, httptest.NewRequest(http.MethodPost, "/list_files", nil))
	if got == "" || rec.Header().Get(config.TRACE_HEADER) != got {
		t.Errorf("a trace id must be generated, got %q", got)
	}
}

func TestWrap_Authentication(t *testing.T) {
	settings := config.Settings{AuthToken: "secret"}
	tests := []struct {
		name   string
		header string
		public bool
		want   int
	}{
		{"valid token", "Bearer secret", false, http.StatusNoContent},
		{"wrong token", "Bearer nope", false, http.StatusUnauthorized},
		{"no bearer prefix", "secret", false, http.StatusUnauthorized},
		{"missing header", "", false, http.StatusUnauthorized},
		{"public route", "", true, http.StatusNoContent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chain := NewChain(settings, &stubLimiter{allow: true})
			handler := chain.Wrap(okHandler(nil))
			if tt.public {
				handler = chain.Public(okHandler(nil))
			}
			req := httptest.NewRequest(http.MethodPost, "/login", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status got %d, want %d", rec.Code, tt.want)
			}
			if rec.Code == http.StatusUnauthorized {
				var out map[string]any
				_ = json.Unmarshal(rec.Body.Bytes(), &out)
				if out["error"] != "Unauthorized" || out["code"] != float64(401) {
					t.Errorf("body got %v", out)
				}
			}
		})
	}
}

func TestWrap_NoTokenConfiguredIsOpen(t *testing.T) {
	chain := NewChain(config.Settings{}, &stubLimiter{allow: true})
	rec := httptest.NewRecorder()
	chain.Wrap(okHandler(nil))(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("status got %d", rec.Code)
	}
}

func TestWrap_RateLimited(t *testing.T) {
	limiter := &stubLimiter{allow: false}
	chain := NewChain(config.Settings{}, limiter)

	req := httptest.NewRequest(http.MethodPost, "/search_documents", nil)
	req.RemoteAddr = "10.0.0.7:5555"
	rec := httptest.NewRecorder()
	called := false
	chain.Wrap(func(w http.ResponseWriter, r *http.Request) { called = true })(rec, req)

	if rec.Code != http.StatusTooManyRequests || called {
		t.Errorf("status got %d, handler called %v", rec.Code, called)
	}
	if len(limiter.keys) != 1 || limiter.keys[0] != "10.0.0.7" {
		t.Errorf("limiter must be keyed by ip, got %v", limiter.keys)
	}
}

func TestWrap_LimiterErrorFailsOpen(t *testing.T) {
	chain := NewChain(config.Settings{}, &stubLimiter{err: errors.New("redis down")})
	rec := httptest.NewRecorder()
	chain.Wrap(okHandler(nil))(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	if rec.Code != http.StatusNoContent {
		t.Errorf("status got %d", rec.Code)
	}
}

func TestIPRateLimiter(t *testing.T) {
	limiter := NewIPRateLimiter(rate.Limit(1), 2)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if ok, _ := limiter.Allow(ctx, "1.1.1.1"); !ok {
			t.Fatalf("request %d within burst was rejected", i)
		}
	}
	if ok, _ := limiter.Allow(ctx, "1.1.1.1"); ok {
		t.Error("request over burst was allowed")
	}
	if ok, _ := limiter.Allow(ctx, "2.2.2.2"); !ok {
		t.Error("limits must be per ip")
	}
	if limiter.GetLimiter("1.1.1.1") != limiter.GetLimiter("1.1.1.1") {
		t.Error("limiter must be reused per ip")
	}
}
