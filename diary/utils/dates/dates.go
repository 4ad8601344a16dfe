// Package dates holds the calendar arithmetic shared by the API and the CLI.
// Dates travel as "YYYY-MM-DD" strings; these helpers are the only place that
// converts between those strings and time.Time.
package dates

import (
	"fmt"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"
)

const Layout = "2006-01-02"

// Parse validates a YYYY-MM-DD calendar date.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", s)
	}
	return t, nil
}

func Format(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// Today returns the calendar date of now as observed in loc.
func Today(now time.Time, loc *time.Location) string {
	return now.In(loc).Format(Layout)
}

// DaysIn returns the number of days in the month, leap years included.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthRange returns the inclusive first and last dates of a month.
func MonthRange(year int, month time.Month) (string, string) {
	return Format(year, month, 1), Format(year, month, DaysIn(year, month))
}

// ParseYearMonth validates path parameters of the form "2024" and "2" or "02".
func ParseYearMonth(yearStr, monthStr string) (int, time.Month, error) {
	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 1 || year > 9999 {
		return 0, 0, fmt.Errorf("invalid year %q", yearStr)
	}
	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		return 0, 0, fmt.Errorf("invalid month %q", monthStr)
	}
	return year, time.Month(month), nil
}

// LoadLocation accepts an IANA zone name ("Asia/Shanghai") or a fixed offset
// written as "UTC+8", "UTC-05:30" or "+08:00".
func LoadLocation(name string) (*time.Location, error) {
	if loc, err := time.LoadLocation(name); err == nil {
		return loc, nil
	}
	offset := strings.TrimPrefix(strings.TrimPrefix(name, "UTC"), "GMT")
	if offset == "" || (offset[0] != '+' && offset[0] != '-') {
		return nil, fmt.Errorf("unknown timezone %q", name)
	}
	sign := 1
	if offset[0] == '-' {
		sign = -1
	}
	hoursStr, minutesStr, _ := strings.Cut(offset[1:], ":")
	hours, err := strconv.Atoi(hoursStr)
	if err != nil || hours < 0 || hours > 14 {
		return nil, fmt.Errorf("unknown timezone %q", name)
	}
	minutes := 0
	if minutesStr != "" {
		minutes, err = strconv.Atoi(minutesStr)
		if err != nil || minutes < 0 || minutes > 59 {
			return nil, fmt.Errorf("unknown timezone %q", name)
		}
	}
	return time.FixedZone(name, sign*(hours*3600+minutes*60)), nil
}
