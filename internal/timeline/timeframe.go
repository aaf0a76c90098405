// Package timeline reconstructs a subject's employment timeline around an
// acquisition date: parsing raw timeframe strings, merging adjacent
// same-category intervals, and locating the current and subsequent jobs.
package timeline

import (
	"regexp"
	"strings"
	"time"

	"github.com/rotisserie/eris"
)

// ErrInvalidTimeframe marks a timeframe string that does not split into two
// non-empty date-like sides. Records with such timeframes are dropped from
// the timeline, never fatal.
var ErrInvalidTimeframe = eris.New("timeline: invalid timeframe")

const (
	timeframeSep = " - "
	// profile exports scraped from HTML carry an en dash instead of the
	// plain hyphen separator
	htmlDashSep = " – "

	present = "Present"
)

// timeframe side punctuation is deleted outright ("Jun. 2015" -> "Jun 2015").
var sidePunct = regexp.MustCompile(`[^\w\s]`)

// ParseTimeframe parses an employment timeframe string such as
// "Jun 2015 - Mar 2017", "2012 - 2014" or "Jun 2015 - Present" into a
// start/end pair normalized to the first day of the month. "Present" maps
// to now. Returns ErrInvalidTimeframe when either side is empty or not
// date-like.
func ParseTimeframe(s string, now time.Time) (start, end time.Time, err error) {
	s = strings.ReplaceAll(s, htmlDashSep, timeframeSep)
	parts := strings.Split(s, timeframeSep)
	if len(parts) < 2 {
		return time.Time{}, time.Time{}, eris.Wrapf(ErrInvalidTimeframe, "missing separator in %q", s)
	}

	startStr := strings.TrimSpace(sidePunct.ReplaceAllString(parts[0], ""))
	endStr := strings.TrimSpace(sidePunct.ReplaceAllString(parts[1], ""))
	if startStr == "" || endStr == "" {
		return time.Time{}, time.Time{}, eris.Wrapf(ErrInvalidTimeframe, "empty side in %q", s)
	}

	if start, err = parseMonthYear(startStr, now); err != nil {
		return time.Time{}, time.Time{}, err
	}
	if end, err = parseMonthYear(endStr, now); err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// parseMonthYear parses one side of a timeframe: "Jun 2015", "2015" or
// "Present".
func parseMonthYear(s string, now time.Time) (time.Time, error) {
	if s == present {
		return MonthStart(now), nil
	}

	layout := "2006"
	if strings.Contains(s, " ") {
		layout = "Jan 2006"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return time.Time{}, eris.Wrapf(ErrInvalidTimeframe, "unparseable date %q", s)
	}
	return MonthStart(t), nil
}

// ParseAcquisitionDate parses the acquisition dataset's "YYYY-MM-DD" dates.
func ParseAcquisitionDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, eris.Wrapf(err, "timeline: parse acquisition date %q", s)
	}
	return t, nil
}

// MonthStart normalizes a date to the first day of its month, midnight UTC.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// subtractMonths moves a date back by an average-month-length multiple and
// renormalizes to the month start, mirroring the tolerance arithmetic the
// merge step is calibrated against.
func subtractMonths(t time.Time, months int) time.Time {
	d := time.Duration(float64(months) * 365.0 / 12.0 * 24.0 * float64(time.Hour))
	return MonthStart(t.Add(-d))
}

// MonthsBetween is the calendar month difference a-b: year*12+month deltas,
// independent of day-of-month.
func MonthsBetween(a, b time.Time) int {
	return (a.Year()-b.Year())*12 + int(a.Month()) - int(b.Month())
}

// DaysBetween is the whole-day difference a-b.
func DaysBetween(a, b time.Time) int {
	return int(a.Sub(b) / (24 * time.Hour))
}

// FormatDate renders a timeline date for reports: "mm/yyyy", or the literal
// "Present" when the year is the current year, or "" for the zero time.
func FormatDate(t, now time.Time) string {
	if t.IsZero() {
		return ""
	}
	if t.Year() == now.Year() {
		return present
	}
	return t.Format("01/2006")
}
