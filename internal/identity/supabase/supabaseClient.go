package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/akolanti/DocBridgeAPI/internal/config"
	"github.com/akolanti/DocBridgeAPI/internal/domain/commonModels"
	"github.com/akolanti/DocBridgeAPI/internal/identity"
	"github.com/akolanti/DocBridgeAPI/internal/metrics"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
)

// Client calls the Supabase GoTrue REST API.
type Client struct {
	baseURL    string
	anonKey    string
	serviceKey string
	httpClient *http.Client
	logger     *logger_i.Logger
}

var _ identity.Backend = (*Client)(nil)

func NewClient(baseURL string, anonKey string, serviceKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		anonKey:    anonKey,
		serviceKey: serviceKey,
		httpClient: httpClient,
		logger:     logger_i.NewLogger("supabase"),
	}
}

type passwordGrantRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionResponse struct {
	AccessToken string        `json:"access_token"`
	User        identity.User `json:"user"`
}

func (c *Client) SignInWithPassword(ctx context.Context, email string, password string) (identity.User, error) {
	body, err := json.Marshal(passwordGrantRequest{Email: email, Password: password})
	if err != nil {
		return identity.User{}, commonModels.Upstream("Could not encode sign in request", err)
	}

	var session sessionResponse
	if err = c.do(ctx, "sign_in", http.MethodPost, config.SupabasePasswordGrantPath, c.anonKey, bytes.NewReader(body), &session); err != nil {
		return identity.User{}, err
	}
	return session.User, nil
}

func (c *Client) GetUser(ctx context.Context, userID string) (identity.User, error) {
	var user identity.User
	path := config.SupabaseAdminUserPath + url.PathEscape(userID)
	if err := c.do(ctx, "get_user", http.MethodGet, path, c.serviceKey, nil, &user); err != nil {
		return identity.User{}, err
	}
	return user, nil
}

func (c *Client) do(ctx context.Context, op string, method string, path string, key string, body io.Reader, out any) error {
	log := c.logger.ForContext(ctx).With("op", op)

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return commonModels.Upstream("Could not build identity request", err)
	}
	req.Header.Set("apikey", key)
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	res, err := c.httpClient.Do(req)
	metrics.CaptureExecutionMetrics("supabase_"+op, time.Since(start))
	if err != nil {
		log.Error("identity backend unreachable", "error", err)
		metrics.IncrementBackendErrors("supabase_"+op, string(commonModels.KindUpstream))
		return commonModels.Upstream("Identity backend unavailable", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(res.Body, 64<<10))
		msg := errorMessage(raw)
		if msg == "" {
			msg = http.StatusText(res.StatusCode)
		}
		log.Warn("identity backend rejected request", "status", res.StatusCode, "message", msg)
		if res.StatusCode >= 500 {
			metrics.IncrementBackendErrors("supabase_"+op, string(commonModels.KindUpstream))
			return commonModels.Upstream(msg, fmt.Errorf("supabase %s: status %d", op, res.StatusCode))
		}
		metrics.IncrementBackendErrors("supabase_"+op, string(commonModels.KindAuthentication))
		return commonModels.Authentication(msg, fmt.Errorf("supabase %s: status %d", op, res.StatusCode))
	}

	if err = json.NewDecoder(res.Body).Decode(out); err != nil {
		log.Error("could not decode identity response", "error", err)
		return commonModels.Upstream("Invalid response from identity backend", err)
	}
	return nil
}

// GoTrue has used error_description, msg and message across versions.
func errorMessage(raw []byte) string {
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		return strings.TrimSpace(string(raw))
	}
	for _, key := range []string{"error_description", "msg", "message", "error"} {
		if v, ok := body[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}
