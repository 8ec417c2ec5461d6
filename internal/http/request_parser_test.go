package http

import (
	"bytes"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"klagtrack/internal/core"
)

func TestParseMonthParamsDefaults(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		query string
		year  int
		month int
	}{
		{"empty", "", 2024, 3},
		{"explicit", "year=2023&month=11", 2023, 11},
		{"garbage falls back", "year=abc&month=xyz", 2024, 3},
		{"partial", "month=7", 2024, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, _ := url.ParseQuery(tt.query)
			got := ParseMonthParams(q, now)
			if got.Year != tt.year || got.Month != tt.month {
				t.Fatalf("got %+v, want %d/%d", got, tt.year, tt.month)
			}
		})
	}
}

func TestParseWeekParamsDefaultsToCurrentWeek(t *testing.T) {
	// 2024-03-04 is in legacy week 10.
	now := time.Date(2024, time.March, 4, 12, 0, 0, 0, time.UTC)
	got := ParseWeekParams(url.Values{}, now, core.WeekSchemeLegacy)
	if got.Year != 2024 || got.Week != 10 {
		t.Fatalf("got %+v", got)
	}

	q, _ := url.ParseQuery("year=2023&week=2")
	got = ParseWeekParams(q, now, core.WeekSchemeLegacy)
	if got.Year != 2023 || got.Week != 2 {
		t.Fatalf("got %+v", got)
	}
}

func TestDecodeEntryBodyAcceptsNumbersAndStrings(t *testing.T) {
	body := `{"date":"2024-03-04","hours":7,"tips":"120,50","expenses":[{"category":"parking","amount":5}],"notes":"n"}`
	req := httptest.NewRequest("POST", "/api/entry", bytes.NewBufferString(body))

	date, input, err := decodeEntryBody(req)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if date != "2024-03-04" {
		t.Fatalf("date = %q", date)
	}
	if input.Hours != "7" || input.Tips != "120,50" {
		t.Fatalf("input = %+v", input)
	}
	if len(input.Expenses) != 1 || input.Expenses[0].Amount != "5" {
		t.Fatalf("expenses = %+v", input.Expenses)
	}

	entry := core.NormalizeEntry(input)
	if entry.Tips != 120.5 {
		t.Fatalf("normalized tips = %v", entry.Tips)
	}
}

func TestDecodeEntryBodyRejectsGarbage(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/entry", bytes.NewBufferString("not json"))
	if _, _, err := decodeEntryBody(req); err == nil {
		t.Fatal("expected decode error")
	}
}
