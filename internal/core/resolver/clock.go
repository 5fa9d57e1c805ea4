package resolver

import (
	"errors"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidClockTime is returned for any clock string that does not parse
// to an in-range wall-clock time. Out-of-range values are rejected, never
// clamped or guessed.
var ErrInvalidClockTime = errors.New("invalid clock time")

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?:\s*([AaPp][Mm]))?$`)

// ParseClockTime parses "H:MM AM/PM" (12-hour) or "HH:MM" (24-hour) into
// an hour (0-23) and minute. "12:00 AM" is hour 0, "12:00 PM" is hour 12.
func ParseClockTime(clock string) (hour, minute int, err error) {
	match := clockPattern.FindStringSubmatch(strings.TrimSpace(clock))
	if match == nil {
		return 0, 0, ErrInvalidClockTime
	}

	hour, err = strconv.Atoi(match[1])
	if err != nil {
		return 0, 0, ErrInvalidClockTime
	}
	minute, err = strconv.Atoi(match[2])
	if err != nil {
		return 0, 0, ErrInvalidClockTime
	}
	if minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidClockTime
	}

	meridiem := strings.ToUpper(match[3])
	if meridiem == "" {
		if hour > 23 {
			return 0, 0, ErrInvalidClockTime
		}
		return hour, minute, nil
	}

	if hour < 1 || hour > 12 {
		return 0, 0, ErrInvalidClockTime
	}
	if hour == 12 {
		hour = 0
	}
	if meridiem == "PM" {
		hour += 12
	}
	return hour, minute, nil
}
