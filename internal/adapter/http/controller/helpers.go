package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/apexbank/apexbank-api/internal/adapter/http/middleware"
	"github.com/apexbank/apexbank-api/internal/commons"
	"github.com/apexbank/apexbank-api/internal/domain"
	"github.com/apexbank/apexbank-api/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// statusFor translates a service error and the envelope message into the
// HTTP status code. Sentinel errors win over message matching.
func statusFor(err error, message string) int {
	switch {
	case errors.Is(err, commons.ErrRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, commons.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, commons.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, commons.ErrInvalidAmount), errors.Is(err, commons.ErrSelfTransfer), errors.Is(err, commons.ErrLoanNotOpen):
		return http.StatusBadRequest
	}

	switch message {
	case "validation failed":
		return http.StatusBadRequest
	case "authentication failed":
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// actor pulls the authenticated identity injected by the auth middleware.
// A missing actor means the route was wired without JWTAuth.
func actor(w http.ResponseWriter, r *http.Request) (domain.Actor, bool) {
	a, ok := middleware.ActorFrom(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, commons.ErrorResponse[struct{}]("Authentication required"))
		return domain.Actor{}, false
	}

	return a, true
}

func decodeBody[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logError(r, err, nil)
		writeJSON(w, http.StatusBadRequest, commons.ErrorResponse[struct{}]("invalid request body", err.Error()))
		return req, false
	}

	return req, true
}

func logRequest(r *http.Request, payload any) {
	logger.Info("http request", logger.Fields{
		"method":  r.Method,
		"path":    r.URL.Path,
		"query":   r.URL.RawQuery,
		"payload": logger.SanitizePayload(payload),
	})
}

func logResponse(r *http.Request, status int, start time.Time) {
	logger.Info("http response", logger.Fields{
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     status,
		"durationMs": time.Since(start).Milliseconds(),
	})
}

func logError(r *http.Request, err error, extra logger.Fields) {
	fields := logger.Fields{
		"method": r.Method,
		"path":   r.URL.Path,
		"query":  r.URL.RawQuery,
	}
	for k, v := range extra {
		fields[k] = v
	}

	logger.Error("http handler error", err, fields)
}

// respond writes the service envelope with the status derived from the
// service error, logging failures along the way.
func respond[T any](w http.ResponseWriter, r *http.Request, response commons.Response[T], err error, okStatus int, start time.Time) {
	status := okStatus
	if err != nil {
		status = statusFor(err, response.Message)
		logError(r, err, logger.Fields{"message": response.Message})
	}

	writeJSON(w, status, response)
	logResponse(r, status, start)
}
