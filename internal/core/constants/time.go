package constants

import "time"

const (
	// Day window boundaries
	DayDuration       = 24 * time.Hour
	DayMillis         = int64(24 * 3600 * 1000)
	EndOfDayOffsetMs  = DayMillis - 1 // 23:59:59.999 relative to start of day
	MillisPerHour     = int64(3600 * 1000)
	MillisPerMinute   = int64(60 * 1000)

	// Gap duration fallback when an insertion has no surrounding logs.
	// Business-policy default carried over from the upstream service contract.
	DefaultGapDurationMs = MillisPerHour

	// Submission pacing
	SubmitDebounceWindow = 300 * time.Millisecond
	PanelCloseDelay      = 1500 * time.Millisecond

	// Timeline zoom bounds, multiplicative steps
	ZoomStep    = 1.25
	ZoomMinimum = 1.0
	ZoomMaximum = 4.0
)
