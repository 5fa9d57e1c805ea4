package model

import (
	"bytes"
	"strconv"
)

// LogDuration is the length of a duty-status interval in milliseconds.
// The zero value is Ongoing: the interval has no recorded end, which is
// distinct from a zero-length interval. Keeping the two apart means
// aggregation can never mistake an open entry for an empty one.
type LogDuration struct {
	ms      int64
	bounded bool
}

// Bounded returns a duration of a known length.
func Bounded(ms int64) LogDuration {
	return LogDuration{ms: ms, bounded: true}
}

// Ongoing returns the open-ended duration.
func Ongoing() LogDuration {
	return LogDuration{}
}

// Millis returns the length in milliseconds and whether it is bounded.
func (d LogDuration) Millis() (int64, bool) {
	return d.ms, d.bounded
}

// IsOngoing reports whether the interval has no recorded end.
func (d LogDuration) IsOngoing() bool {
	return !d.bounded
}

var jsonNull = []byte("null")

// MarshalJSON encodes a bounded duration as a number and an ongoing one as null.
func (d LogDuration) MarshalJSON() ([]byte, error) {
	if !d.bounded {
		return jsonNull, nil
	}
	return strconv.AppendInt(nil, d.ms, 10), nil
}

// UnmarshalJSON decodes null (or an absent field) as Ongoing and a number as Bounded.
func (d *LogDuration) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		*d = Ongoing()
		return nil
	}
	ms, err := strconv.ParseInt(string(bytes.TrimSpace(data)), 10, 64)
	if err != nil {
		return err
	}
	*d = Bounded(ms)
	return nil
}
