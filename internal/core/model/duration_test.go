package model

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogDurationZeroValueIsOngoing(t *testing.T) {
	var d LogDuration
	assert.True(t, d.IsOngoing())

	_, bounded := d.Millis()
	assert.False(t, bounded)
}

func TestLogDurationBoundedZeroIsNotOngoing(t *testing.T) {
	// A zero-length interval is still a recorded interval.
	d := Bounded(0)
	assert.False(t, d.IsOngoing())

	ms, bounded := d.Millis()
	assert.True(t, bounded)
	assert.Equal(t, int64(0), ms)
}

func TestLogDurationJSON(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected LogDuration
	}{
		{
			name:     "null decodes as ongoing",
			json:     `{"timestamp":100}`,
			expected: Ongoing(),
		},
		{
			name:     "explicit null decodes as ongoing",
			json:     `{"timestamp":100,"duration":null}`,
			expected: Ongoing(),
		},
		{
			name:     "number decodes as bounded",
			json:     `{"timestamp":100,"duration":3600000}`,
			expected: Bounded(3600000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var log HosLog
			require.NoError(t, sonic.Unmarshal([]byte(tt.json), &log))
			assert.Equal(t, tt.expected, log.Duration)
		})
	}
}

func TestLogDurationMarshal(t *testing.T) {
	data, err := sonic.Marshal(Bounded(1500))
	require.NoError(t, err)
	assert.Equal(t, "1500", string(data))

	data, err = sonic.Marshal(Ongoing())
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestLogDurationRejectsGarbage(t *testing.T) {
	var d LogDuration
	assert.Error(t, d.UnmarshalJSON([]byte(`"soon"`)))
}
