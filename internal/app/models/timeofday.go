package models

import (
	"fmt"
	"regexp"

	"care4u-service/internal/pkg/constvars"
)

var timeOfDayPattern = regexp.MustCompile(constvars.RegexTimeOfDay)

// TimeOfDay is a wall-clock minute within a day, parsed from strict
// 24-hour HH:MM text. 9:00 and 24:00 are rejected.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(text string) (TimeOfDay, error) {
	match := timeOfDayPattern.FindStringSubmatch(text)
	if match == nil {
		return TimeOfDay{}, fmt.Errorf("%q is not a valid HH:MM time", text)
	}
	var t TimeOfDay
	fmt.Sscanf(match[1], "%d", &t.Hour)
	fmt.Sscanf(match[2], "%d", &t.Minute)
	return t, nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.Minutes() < other.Minutes()
}
