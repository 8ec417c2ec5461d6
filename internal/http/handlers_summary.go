package http

import (
	"encoding/json"
	"net/http"
	"time"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"uptime": time.Since(s.started).Round(time.Second).String(),
	})
}

// handleDaySummary returns the derived figures for one date.
func (s *Server) handleDaySummary(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	date := dateParam(r.URL.Query())
	writeJSON(w, http.StatusOK, s.svc.DailySummary(date))
}

// handleWeekSummary returns the pre-tax figures for one week.
func (s *Server) handleWeekSummary(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	params := ParseWeekParams(r.URL.Query(), time.Now(), s.svc.WeekScheme())
	summary := s.svc.WeeklySummary(params.Year, params.Week)
	progress := s.svc.GoalProgress(params.Year, params.Week)
	writeJSON(w, http.StatusOK, map[string]any{
		"summary":  summary,
		"goal":     s.svc.Goal(),
		"progress": progress,
	})
}

// handleMonthSummary returns the full-month figures including tax.
func (s *Server) handleMonthSummary(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	params := ParseMonthParams(r.URL.Query(), time.Now())
	writeJSON(w, http.StatusOK, s.cachedMonthlySummary(params.Year, params.Month))
}

// handleOverview bundles the current month, week, goal progress and chart.
func (s *Server) handleOverview(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, s.svc.OverviewAt(time.Now()))
}

// handleHistory returns one monthly summary per stored month, newest first.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	history := s.svc.History()
	writeJSON(w, http.StatusOK, map[string]any{
		"months": history,
	})
}

// handleGoal reads or updates the weekly goal. A rejected update keeps
// the previous goal and reports it back.
func (s *Server) handleGoal(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]any{
			"goal": s.svc.Goal(),
		})
	case http.MethodPost:
		var payload struct {
			Goal float64 `json:"goal"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"outcome": "BadRequest",
				"error":   "malformed request body",
			})
			return
		}
		if err := s.svc.SetGoal(r.Context(), payload.Goal); err != nil {
			writeJSON(w, errorStatus(err), map[string]any{
				"outcome": outcomeName(err),
				"error":   err.Error(),
				"goal":    s.svc.Goal(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"goal": s.svc.Goal(),
		})
	default:
		requireMethod(w, r, http.MethodGet, http.MethodPost)
	}
}

// handleChart returns the per-day income series for a month.
func (s *Server) handleChart(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodGet) {
		return
	}
	params := ParseMonthParams(r.URL.Query(), time.Now())
	writeJSON(w, http.StatusOK, s.cachedChart(params.Year, params.Month))
}
