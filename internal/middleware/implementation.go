package middleware

import (
	"crypto/subtle"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/akolanti/DocBridgeAPI/internal/config"
	"github.com/akolanti/DocBridgeAPI/internal/handlers"
	"github.com/akolanti/DocBridgeAPI/internal/metrics"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
)

type requestResponseStruct struct {
	writer     http.ResponseWriter
	req        *http.Request
	badRequest failureStruct
	logger     *logger_i.Logger
}

type failureStruct struct {
	isBadRequest bool
	httpCode     int
	errorMessage string
}

// Chain runs every request through trace injection, authentication and rate limiting.
type Chain struct {
	settings config.Settings
	limiter  RateStore
	logger   *logger_i.Logger
}

func NewChain(settings config.Settings, limiter RateStore) *Chain {
	c := &Chain{
		settings: settings,
		limiter:  limiter,
		logger:   logger_i.NewLogger("middleware"),
	}
	if settings.AuthDisabled() {
		c.logger.Warn("API_AUTH_TOKEN is not set, requests are not authenticated")
	}
	return c
}

// Wrap guards next. Public marks routes that skip authentication.
func (c *Chain) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return c.wrap(next, true)
}

func (c *Chain) Public(next http.HandlerFunc) http.HandlerFunc {
	return c.wrap(next, false)
}

func (c *Chain) wrap(next http.HandlerFunc, authRequired bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec := &metrics.HttpStatusRecorder{ResponseWriter: w, Status: http.StatusOK} //metrics
		re := c.processRequest(requestResponseStruct{req: r, writer: rec}, authRequired)

		if !re.badRequest.isBadRequest {
			next(rec, re.req)
		}
		metrics.HttpRequestsTotal.WithLabelValues(r.URL.Path, strconv.Itoa(rec.Status)).Inc() //metrics
	}
}

func (c *Chain) processRequest(re requestResponseStruct, authRequired bool) requestResponseStruct {
	re.logger = c.logger
	re = injectTrace(re)
	re.logger.Debug("New request received", "method", re.req.Method, "path", re.req.URL.Path)

	if authRequired {
		re = c.authenticate(re)
		if !handleBadRequest(re) {
			return re //stop if auth fails
		}
	}
	re = c.rateLimiter(re)
	handleBadRequest(re)
	return re
}

func (c *Chain) authenticate(re requestResponseStruct) requestResponseStruct {
	if !IsValidBearerToken(re.req.Header.Get("Authorization"), c.settings, re.logger) {
		re.badRequest = failureStruct{
			isBadRequest: true,
			httpCode:     http.StatusUnauthorized,
			errorMessage: "Unauthorized",
		}
		return re
	}
	return re
}

func IsValidBearerToken(authHeader string, settings config.Settings, log *logger_i.Logger) bool {
	if settings.AuthDisabled() {
		return true
	}
	if authHeader == "" {
		log.Warn("Empty authorization header")
		return false
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		log.Warn("No Bearer header")
		return false
	}
	if subtle.ConstantTimeCompare([]byte(strings.TrimPrefix(authHeader, "Bearer ")), []byte(settings.AuthToken)) != 1 {
		log.Warn("Invalid authorization header")
		return false
	}
	return true
}

func (c *Chain) rateLimiter(re requestResponseStruct) requestResponseStruct {
	ip := clientIP(re.req)
	allowed, err := c.limiter.Allow(re.req.Context(), ip)
	if err != nil {
		//limiter store unavailable, let the request through
		re.logger.Error("rate limiter failed", "error", err, "ip", ip)
		return re
	}
	if !allowed {
		metrics.IncrementRateLimited()
		re.badRequest = failureStruct{
			isBadRequest: true,
			httpCode:     http.StatusTooManyRequests,
			errorMessage: "Rate limit exceeded",
		}
	}
	return re
}

func clientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

func handleBadRequest(re requestResponseStruct) bool {
	if re.badRequest.isBadRequest {
		re.logger.Warn("Bad request", "httpCode", re.badRequest.httpCode, "errorMessage", re.badRequest.errorMessage, "IP", re.req.RemoteAddr)
		handlers.WriteErrorResponse(re.writer, re.badRequest.httpCode, re.badRequest.errorMessage)
		return false
	}
	return true
}
