package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/akolanti/DocBridgeAPI/internal/adapter"
	"github.com/akolanti/DocBridgeAPI/pkg/logger_i"
)

var logRH = logger_i.NewLogger("ResponseWriter")

const invalidBodyMessage = "Invalid request body"

func writeJsonResponse(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Log the error but can't send a clean status code now
		logRH.Error("Error encoding response", "error", err)
	}
}

func WriteErrorResponse(w http.ResponseWriter, httpCode int, message string) {
	writeJsonResponse(w, httpCode, adapter.BadRequest(message, httpCode))
}

func (h *Handler) writeAppError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := adapter.ToErrorResponse(err)
	log := h.logger.ForContext(r.Context()).With("path", r.URL.Path, "status", status)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	} else {
		log.Warn("request rejected", "error", err)
	}
	writeJsonResponse(w, status, body)
}

// decodeJSON reads a json body into dst. An empty body leaves dst zeroed so the
// field validation downstream reports what is missing.
func decodeJSON(r *http.Request, dst any) error {
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			logRH.Error("Couldn't close the request body", "error", err)
		}
	}(r.Body)

	err := json.NewDecoder(r.Body).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func validateContext(ctx context.Context) bool {
	if ctx.Err() != nil {
		logRH.ForContext(ctx).Warn("context error", "error", ctx.Err())
		return false
	}
	return true
}
