package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"toolshed-backend/internal/logger"
	"toolshed-backend/internal/repository"
	"toolshed-backend/internal/service"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeServiceError maps well-known service errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrUnauthorized):
		writeError(w, http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrInvalidDates),
		errors.Is(err, service.ErrInvalidRating),
		errors.Is(err, service.ErrInvalidPayoutAmount),
		errors.Is(err, service.ErrInvalidTier),
		errors.Is(err, service.ErrInvalidReport):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrToolUnavailable),
		errors.Is(err, service.ErrNotPending),
		errors.Is(err, service.ErrNotCancellable),
		errors.Is(err, service.ErrNotPayable),
		errors.Is(err, service.ErrDepositNotRequired),
		errors.Is(err, service.ErrAlreadyReported),
		errors.Is(err, service.ErrReportNotAllowed),
		errors.Is(err, service.ErrDuplicateReview),
		errors.Is(err, service.ErrInsufficientFunds),
		errors.Is(err, service.ErrReportClosed):
		writeError(w, http.StatusConflict, err.Error())
	default:
		logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// userID extracts the authenticated user id injected by the gateway.
func userID(r *http.Request) string {
	return r.Header.Get("X-User-ID")
}

// requireUser writes a 401 and returns false when no identity is present.
func requireUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := userID(r)
	if id == "" {
		writeError(w, http.StatusUnauthorized, "missing user identity")
		return "", false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
