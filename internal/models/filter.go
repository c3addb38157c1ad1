package models

import (
	"strings"
	"time"
)

// MonthFilter selects trips by the calendar month they started in.
type MonthFilter int

// AllMonths disables month filtering.
const AllMonths MonthFilter = 0

// DayFilter selects trips by the weekday they started on.
// Values run Monday (1) through Sunday (7).
type DayFilter int

const (
	// AllDays disables day filtering.
	AllDays DayFilter = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// String returns the month name, or "All".
func (m MonthFilter) String() string {
	if m == AllMonths {
		return "All"
	}
	if m < 1 || m > 12 {
		return "Unknown"
	}
	return time.Month(m).String()
}

// Matches reports whether t falls in the selected month.
func (m MonthFilter) Matches(t time.Time) bool {
	return m == AllMonths || t.Month() == time.Month(m)
}

// ParseMonth resolves "all" or a month name, case-insensitively.
func ParseMonth(input string) (MonthFilter, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "all" {
		return AllMonths, nil
	}
	for m := time.January; m <= time.December; m++ {
		if strings.ToLower(m.String()) == normalized {
			return MonthFilter(m), nil
		}
	}
	return AllMonths, &InvalidChoiceError{Field: "month", Value: input}
}

// Weekday converts the filter to a time.Weekday. The result is meaningless
// for AllDays.
func (d DayFilter) Weekday() time.Weekday {
	return time.Weekday(int(d) % 7)
}

// String returns the weekday name, or "All".
func (d DayFilter) String() string {
	if d == AllDays {
		return "All"
	}
	if d < Monday || d > Sunday {
		return "Unknown"
	}
	return d.Weekday().String()
}

// Matches reports whether t falls on the selected weekday.
func (d DayFilter) Matches(t time.Time) bool {
	return d == AllDays || t.Weekday() == d.Weekday()
}

// ParseDay resolves "all" or a weekday name, case-insensitively.
func ParseDay(input string) (DayFilter, error) {
	normalized := strings.ToLower(strings.TrimSpace(input))
	if normalized == "all" {
		return AllDays, nil
	}
	for d := Monday; d <= Sunday; d++ {
		if strings.ToLower(d.String()) == normalized {
			return d, nil
		}
	}
	return AllDays, &InvalidChoiceError{Field: "day", Value: input}
}

// Filter is a single query: a resolved city plus optional month and day.
type Filter struct {
	City  City
	Month MonthFilter
	Day   DayFilter
}

// Matches applies the month filter, and the day filter only while the month
// filter is active. With Month == AllMonths the day is ignored.
func (f Filter) Matches(start time.Time) bool {
	if f.Month == AllMonths {
		return true
	}
	if !f.Month.Matches(start) {
		return false
	}
	return f.Day.Matches(start)
}

// DayApplied reports whether the day filter takes effect for this query.
func (f Filter) DayApplied() bool {
	return f.Month != AllMonths && f.Day != AllDays
}

// String describes the filter for logs and headings.
func (f Filter) String() string {
	return f.City.String() + " / " + f.Month.String() + " / " + f.Day.String()
}
