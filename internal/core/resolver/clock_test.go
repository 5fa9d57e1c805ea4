package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClockTime(t *testing.T) {
	tests := []struct {
		name         string
		clock        string
		expectedHour int
		expectedMin  int
		expectError  bool
	}{
		{
			name:         "morning 12-hour time",
			clock:        "9:00 AM",
			expectedHour: 9,
			expectedMin:  0,
		},
		{
			name:         "afternoon 12-hour time",
			clock:        "1:30 PM",
			expectedHour: 13,
			expectedMin:  30,
		},
		{
			name:         "midnight is hour zero",
			clock:        "12:00 AM",
			expectedHour: 0,
			expectedMin:  0,
		},
		{
			name:         "midday is hour twelve",
			clock:        "12:00 PM",
			expectedHour: 12,
			expectedMin:  0,
		},
		{
			name:         "last minute of the day",
			clock:        "11:59 PM",
			expectedHour: 23,
			expectedMin:  59,
		},
		{
			name:         "lowercase meridiem",
			clock:        "9:15 pm",
			expectedHour: 21,
			expectedMin:  15,
		},
		{
			name:         "24-hour time",
			clock:        "14:30",
			expectedHour: 14,
			expectedMin:  30,
		},
		{
			name:         "24-hour midnight",
			clock:        "0:00",
			expectedHour: 0,
			expectedMin:  0,
		},
		{
			name:        "hour out of range",
			clock:       "25:00",
			expectError: true,
		},
		{
			name:        "minute out of range",
			clock:       "10:70",
			expectError: true,
		},
		{
			name:        "12-hour hour out of range",
			clock:       "13:00 PM",
			expectError: true,
		},
		{
			name:        "12-hour hour zero",
			clock:       "0:30 AM",
			expectError: true,
		},
		{
			name:        "not a time at all",
			clock:       "invalid",
			expectError: true,
		},
		{
			name:        "non-numeric components",
			clock:       "abc:def AM",
			expectError: true,
		},
		{
			name:        "empty string",
			clock:       "",
			expectError: true,
		},
		{
			name:        "single digit minutes",
			clock:       "9:5 AM",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hour, minute, err := ParseClockTime(tt.clock)
			if tt.expectError {
				assert.ErrorIs(t, err, ErrInvalidClockTime)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedHour, hour)
			assert.Equal(t, tt.expectedMin, minute)
		})
	}
}
