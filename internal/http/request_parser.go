package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"klagtrack/internal/core"
)

// MonthParams holds year/month parsed from query parameters.
type MonthParams struct {
	Year  int
	Month int
}

// WeekParams holds year/week parsed from query parameters.
type WeekParams struct {
	Year int
	Week int
}

// ParseMonthParams extracts year and month from the query string, using
// the current date as defaults. Garbage values fall back to now.
func ParseMonthParams(query url.Values, now time.Time) MonthParams {
	params := MonthParams{
		Year:  now.Year(),
		Month: int(now.Month()),
	}
	if v := strings.TrimSpace(query.Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			params.Year = y
		}
	}
	if v := strings.TrimSpace(query.Get("month")); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			params.Month = m
		}
	}
	return params
}

// ParseWeekParams extracts year and week from the query string. The
// default is the week containing now under the given scheme.
func ParseWeekParams(query url.Values, now time.Time, scheme core.WeekScheme) WeekParams {
	year, week := core.WeekOf(now, scheme)
	params := WeekParams{Year: year, Week: week}
	if v := strings.TrimSpace(query.Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			params.Year = y
		}
	}
	if v := strings.TrimSpace(query.Get("week")); v != "" {
		if wk, err := strconv.Atoi(v); err == nil {
			params.Week = wk
		}
	}
	return params
}

// dateParam returns the date query parameter, defaulting to today.
func dateParam(query url.Values) string {
	if v := strings.TrimSpace(query.Get("date")); v != "" {
		return v
	}
	return core.Today()
}

// entryPayload is the JSON body of an entry write. Numeric fields accept
// both JSON numbers and strings so hand-written clients with quoted
// values still work; everything is normalized downstream.
type entryPayload struct {
	Date     string           `json:"date"`
	Hours    json.RawMessage  `json:"hours"`
	Tips     json.RawMessage  `json:"tips"`
	Expenses []expensePayload `json:"expenses"`
	Notes    string           `json:"notes"`
}

type expensePayload struct {
	Category string          `json:"category"`
	Amount   json.RawMessage `json:"amount"`
}

// decodeEntryBody reads the request body and converts it into the raw
// input record normalization expects.
func decodeEntryBody(r *http.Request) (string, core.EntryInput, error) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", core.EntryInput{}, err
	}
	var payload entryPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", core.EntryInput{}, err
	}

	input := core.EntryInput{
		Hours: rawString(payload.Hours),
		Tips:  rawString(payload.Tips),
		Notes: payload.Notes,
	}
	for _, exp := range payload.Expenses {
		input.Expenses = append(input.Expenses, core.ExpenseInput{
			Category: exp.Category,
			Amount:   rawString(exp.Amount),
		})
	}
	return strings.TrimSpace(payload.Date), input, nil
}

// rawString turns a raw JSON scalar into its text form. Quoted strings
// are unquoted; numbers pass through as written.
func rawString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	}
	return string(raw)
}
