package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpandPath(t *testing.T) {
	home := expandPath("~/day.jsonl")
	assert.True(t, filepath.IsAbs(home))
	assert.Equal(t, "day.jsonl", filepath.Base(home))

	abs := expandPath("/var/log/day.jsonl")
	assert.Equal(t, "/var/log/day.jsonl", abs)
}

func TestSelectedDay(t *testing.T) {
	orig := dateStr
	defer func() { dateStr = orig }()

	dateStr = "2026-08-29"
	day, err := selectedDay()
	require.NoError(t, err)
	assert.Equal(t, 2026, day.Year())
	assert.Equal(t, time.August, day.Month())
	assert.Equal(t, 29, day.Day())

	dateStr = "29/08/2026"
	_, err = selectedDay()
	assert.Error(t, err)

	dateStr = ""
	day, err = selectedDay()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), day, time.Minute)
}
