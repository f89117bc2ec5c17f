package models

import (
	"fmt"
	"strings"
)

// Weekday is the closed vocabulary for a doctor's available days. Only the
// seven canonical full names are valid; abbreviations are rejected.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
	"Sunday",
}

func (d Weekday) String() string {
	if d < Monday || d > Sunday {
		return "unknown"
	}
	return weekdayNames[d]
}

// ParseWeekday matches a token case-insensitively against the canonical names.
func ParseWeekday(token string) (Weekday, error) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	for i, name := range weekdayNames {
		if strings.ToLower(name) == normalized {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%q is not a weekday name", token)
}

// ParseWeekdays parses every token, silently deduplicating while preserving
// submission order. An empty result or any unknown token is an error.
func ParseWeekdays(tokens []string) ([]Weekday, error) {
	seen := make(map[Weekday]bool, len(tokens))
	days := make([]Weekday, 0, len(tokens))
	for _, token := range tokens {
		day, err := ParseWeekday(token)
		if err != nil {
			return nil, err
		}
		if seen[day] {
			continue
		}
		seen[day] = true
		days = append(days, day)
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("no weekdays given")
	}
	return days, nil
}

// FormatWeekdays renders days as comma-joined canonical names.
func FormatWeekdays(days []Weekday) string {
	names := make([]string, len(days))
	for i, day := range days {
		names[i] = day.String()
	}
	return strings.Join(names, ",")
}

// WeekdayNames returns the canonical names for days, preserving order.
func WeekdayNames(days []Weekday) []string {
	names := make([]string, len(days))
	for i, day := range days {
		names[i] = day.String()
	}
	return names
}
