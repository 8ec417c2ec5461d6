package core

import (
	"fmt"
	"time"
)

// DateLayout is the fixed-width ledger key format. Because it is
// zero-padded, lexicographic order on keys equals chronological order,
// so range checks are plain string comparisons.
const DateLayout = "2006-01-02"

// WeekScheme selects how week numbers map to date ranges.
type WeekScheme string

const (
	// WeekSchemeLegacy anchors week 1 to the Sunday-aligned boundary at or
	// before January 1st: start = Jan1 - Jan1.weekday + (week-1)*7 days.
	// Weeks can spill into the adjacent year. Kept for compatibility with
	// existing ledgers.
	WeekSchemeLegacy WeekScheme = "legacy"
	// WeekSchemeISO uses ISO-8601 week numbering (weeks start on Monday).
	WeekSchemeISO WeekScheme = "iso"
)

// Valid reports whether the scheme is a known one.
func (s WeekScheme) Valid() bool {
	return s == WeekSchemeLegacy || s == WeekSchemeISO
}

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
// Round-tripping through time catches both bad syntax and bad calendar
// values like 2024-02-30.
func ValidDate(s string) bool {
	t, err := time.Parse(DateLayout, s)
	return err == nil && t.Format(DateLayout) == s
}

// FormatDate renders t as a ledger key.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the current local date as a ledger key.
func Today() string {
	return FormatDate(time.Now())
}

// DayKey builds the ledger key for a year/month/day triple.
func DayKey(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// DaysInMonth returns the calendar length of the month, leap years included.
func DaysInMonth(year, month int) int {
	// Day zero of the following month.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the first and last ledger keys of a month.
func MonthRange(year, month int) (start, end string) {
	return DayKey(year, month, 1), DayKey(year, month, DaysInMonth(year, month))
}

// PrevDay returns the key of the day before date.
func PrevDay(date string) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", ErrInvalidDate
	}
	return FormatDate(t.AddDate(0, 0, -1)), nil
}

// WeekRange returns the inclusive start and end keys of the given week
// number under the chosen scheme. Unknown schemes fall back to legacy.
func WeekRange(year, week int, scheme WeekScheme) (start, end string) {
	var first time.Time
	switch scheme {
	case WeekSchemeISO:
		first = isoWeekStart(year, week)
	default:
		first = legacyWeekStart(year, week)
	}
	return FormatDate(first), FormatDate(first.AddDate(0, 0, 6))
}

// WeekOf returns the week number containing t under the chosen scheme.
// For the ISO scheme the week's year may differ from t's calendar year.
func WeekOf(t time.Time, scheme WeekScheme) (year, week int) {
	if scheme == WeekSchemeISO {
		return t.ISOWeek()
	}
	jan1 := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
	anchor := jan1.AddDate(0, 0, -int(jan1.Weekday()))
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return t.Year(), int(day.Sub(anchor).Hours()/24)/7 + 1
}

func legacyWeekStart(year, week int) time.Time {
	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return jan1.AddDate(0, 0, (week-1)*7-int(jan1.Weekday()))
}

func isoWeekStart(year, week int) time.Time {
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := jan4.AddDate(0, 0, 1-wd)
	return monday.AddDate(0, 0, (week-1)*7)
}
