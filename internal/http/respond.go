package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"klagtrack/internal/core"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

// writeError maps named outcomes to statuses and a machine-readable
// outcome name the view layer can surface.
func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, errorStatus(err), map[string]string{
		"outcome": outcomeName(err),
		"error":   err.Error(),
	})
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, core.ErrNoPriorEntry):
		return http.StatusNotFound
	case errors.Is(err, core.ErrGoalRejected),
		errors.Is(err, core.ErrInvalidDate),
		errors.Is(err, core.ErrCorruptImport),
		errors.Is(err, core.ErrInvalidAmount):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func outcomeName(err error) string {
	switch {
	case errors.Is(err, core.ErrGoalRejected):
		return "GoalRejected"
	case errors.Is(err, core.ErrNoPriorEntry):
		return "NoPriorEntry"
	case errors.Is(err, core.ErrInvalidDate):
		return "InvalidDate"
	case errors.Is(err, core.ErrCorruptImport):
		return "CorruptImport"
	case errors.Is(err, core.ErrInvalidAmount):
		return "InvalidAmount"
	default:
		return "Error"
	}
}

// requireMethod writes 405 and returns false when the method is not
// allowed.
func requireMethod(w http.ResponseWriter, r *http.Request, methods ...string) bool {
	for _, m := range methods {
		if r.Method == m {
			return true
		}
	}
	w.Header().Set("Allow", join(methods))
	w.WriteHeader(http.StatusMethodNotAllowed)
	return false
}

func join(methods []string) string {
	out := ""
	for i, m := range methods {
		if i > 0 {
			out += ", "
		}
		out += m
	}
	return out
}
