package config

import (
	"strings"
	"testing"
	"time"
)

func lookupFrom(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	s, err := FromEnv(lookupFrom(map[string]string{
		"SUPABASE_URL":   "https://x.supabase.co",
		"SUPABASE_KEY":   "anon",
		"CARBON_API_KEY": "carbon",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.ListenAddr != ServerListenAddr {
		t.Errorf("ListenAddr got %s, want %s", s.ListenAddr, ServerListenAddr)
	}
	if s.CarbonBaseURL != CarbonBaseURL {
		t.Errorf("CarbonBaseURL got %s", s.CarbonBaseURL)
	}
	if s.SupabaseServiceKey != "anon" {
		t.Errorf("service key should fall back to anon key, got %s", s.SupabaseServiceKey)
	}
	if !s.AuthDisabled() {
		t.Error("empty API_AUTH_TOKEN should bypass auth")
	}
	if s.BackendTimeout != BackendTimeout {
		t.Errorf("BackendTimeout got %v", s.BackendTimeout)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	s, err := FromEnv(lookupFrom(map[string]string{
		"SUPABASE_URL":          "https://x.supabase.co",
		"SUPABASE_KEY":          "anon",
		"CARBON_API_KEY":        "carbon",
		"APP_ENV":               "prod",
		"BACKEND_TIMEOUT":       "3s",
		"RATE_LIMIT_PER_SECOND": "1.5",
		"RATE_LIMIT_BURST":      "4",
		"API_AUTH_TOKEN":        "tok",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.IsProd() {
		t.Error("expected prod")
	}
	if s.BackendTimeout != 3*time.Second || s.RateLimitPerSecond != 1.5 || s.RateLimitBurst != 4 {
		t.Errorf("overrides not applied: %+v", s)
	}
	if s.AuthDisabled() {
		t.Error("auth token set, bypass must be off")
	}
}

func TestFromEnv_MissingRequired(t *testing.T) {
	_, err := FromEnv(lookupFrom(map[string]string{"BACKEND_TIMEOUT": "soon"}))
	if err == nil {
		t.Fatal("expected error")
	}
	for _, want := range []string{"SUPABASE_URL", "SUPABASE_KEY", "CARBON_API_KEY", "BACKEND_TIMEOUT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %s", err.Error(), want)
		}
	}
}

func TestFromEnv_NonPositiveLimits(t *testing.T) {
	base := map[string]string{
		"SUPABASE_URL":   "https://x.supabase.co",
		"SUPABASE_KEY":   "anon",
		"CARBON_API_KEY": "carbon",
	}
	tests := []struct {
		key   string
		value string
	}{
		{"RATE_LIMIT_PER_SECOND", "0"},
		{"RATE_LIMIT_PER_SECOND", "-1"},
		{"RATE_LIMIT_BURST", "0"},
		{"RATE_LIMIT_BURST", "-2"},
		{"BACKEND_TIMEOUT", "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			env := map[string]string{tt.key: tt.value}
			for k, v := range base {
				env[k] = v
			}
			_, err := FromEnv(lookupFrom(env))
			if err == nil || !strings.Contains(err.Error(), tt.key+" must be greater than zero") {
				t.Errorf("got %v", err)
			}
		})
	}
}
