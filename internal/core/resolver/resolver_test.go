package resolver

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestResolveTimestampDayBoundaries(t *testing.T) {
	r := NewResolver(time.UTC)

	midnight, err := r.ResolveTimestamp("12:00 AM", testDate, "UTC")
	require.NoError(t, err)
	assert.Equal(t, r.DayStart(testDate, "UTC"), midnight)

	midday, err := r.ResolveTimestamp("12:00 PM", testDate, "UTC")
	require.NoError(t, err)
	assert.Equal(t, midnight+12*3600*1000, midday)
}

func TestResolveTimestampInTenantTimezone(t *testing.T) {
	r := NewResolver(time.UTC)

	utc, err := r.ResolveTimestamp("9:00 AM", testDate, "UTC")
	require.NoError(t, err)

	chicago, err := r.ResolveTimestamp("9:00 AM", testDate, "America/Chicago")
	require.NoError(t, err)

	// Chicago is 6 hours behind UTC in January.
	assert.Equal(t, int64(6*3600*1000), chicago-utc)
}

func TestResolveTimestampRoundTrip(t *testing.T) {
	// Parsing a 12-hour string and re-formatting the resolved instant as
	// 24-hour wall clock must land on the same time of day.
	r := NewResolver(time.UTC)

	tests := []struct {
		clock    string
		expected string
	}{
		{clock: "12:00 AM", expected: "00:00"},
		{clock: "9:30 AM", expected: "09:30"},
		{clock: "12:00 PM", expected: "12:00"},
		{clock: "4:45 PM", expected: "16:45"},
		{clock: "11:59 PM", expected: "23:59"},
	}

	for _, tt := range tests {
		t.Run(tt.clock, func(t *testing.T) {
			ts, err := r.ResolveTimestamp(tt.clock, testDate, "UTC")
			require.NoError(t, err)

			wall := time.UnixMilli(ts).UTC().Format("15:04")
			assert.Equal(t, tt.expected, wall)

			again, err := r.ResolveTimestamp(wall, testDate, "UTC")
			require.NoError(t, err)
			assert.Equal(t, ts, again)
		})
	}
}

func TestResolveTimestampInvalidClock(t *testing.T) {
	r := NewResolver(time.UTC)

	for _, clock := range []string{"25:00", "10:70", "invalid", "abc:def AM"} {
		t.Run(clock, func(t *testing.T) {
			_, err := r.ResolveTimestamp(clock, testDate, "UTC")
			assert.ErrorIs(t, err, ErrInvalidClockTime)
		})
	}
}

func TestResolveTimestampUnknownTimezoneFallsBack(t *testing.T) {
	// The fallback is pinned to UTC here, so a garbage timezone resolves
	// exactly as UTC would.
	r := NewResolver(time.UTC)

	ts, err := r.ResolveTimestamp("10:30 AM", testDate, "Invalid/Zone")
	require.NoError(t, err)

	expected, err := r.ResolveTimestamp("10:30 AM", testDate, "UTC")
	require.NoError(t, err)
	assert.Equal(t, expected, ts)
}

func TestResolveTimestampStrictRejectsUnknownTimezone(t *testing.T) {
	r := NewResolver(time.UTC)

	_, err := r.ResolveTimestampStrict("9:00 AM", testDate, "Invalid/Zone")
	assert.ErrorIs(t, err, ErrUnknownTimezone)

	_, err = r.ResolveTimestampStrict("9:00 AM", testDate, "UTC")
	assert.NoError(t, err)
}

func TestDayEnd(t *testing.T) {
	r := NewResolver(time.UTC)

	start := r.DayStart(testDate, "UTC")
	end := r.DayEnd(testDate, "UTC")
	assert.Equal(t, int64(24*3600*1000-1), end-start)
}

func TestStartOfDayFor(t *testing.T) {
	r := NewResolver(time.UTC)

	ts, err := r.ResolveTimestamp("10:00 AM", testDate, "UTC")
	require.NoError(t, err)

	assert.Equal(t, r.DayStart(testDate, "UTC"), r.StartOfDayFor(ts, "UTC"))

	// Unknown timezone still truncates, against the fallback location.
	assert.Equal(t, r.DayStart(testDate, "UTC"), r.StartOfDayFor(ts, "Invalid/Zone"))
}

func TestResolveTimestampAllTwelveHourStrings(t *testing.T) {
	// Sweep the 12-hour clock face on the hour; each resolved instant must
	// re-format to the matching 24-hour wall time.
	r := NewResolver(time.UTC)

	for hour12 := 1; hour12 <= 12; hour12++ {
		for _, meridiem := range []string{"AM", "PM"} {
			clock := fmt.Sprintf("%d:00 %s", hour12, meridiem)
			t.Run(clock, func(t *testing.T) {
				ts, err := r.ResolveTimestamp(clock, testDate, "UTC")
				require.NoError(t, err)

				hour24 := hour12 % 12
				if meridiem == "PM" {
					hour24 += 12
				}
				assert.Equal(t, fmt.Sprintf("%02d:00", hour24),
					time.UnixMilli(ts).UTC().Format("15:04"))
			})
		}
	}
}
