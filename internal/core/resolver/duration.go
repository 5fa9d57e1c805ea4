package resolver

import (
	"github.com/fleetlog/go-hos-timeline/internal/core/constants"
	"github.com/fleetlog/go-hos-timeline/internal/core/model"
)

// DurationFromPrevious computes the gap in milliseconds the insertion
// would open against the previous entry, or against start-of-day when no
// entry precedes the instant. With no active logs at all there is nothing
// to bound the interval, so the fixed one-hour default applies.
func DurationFromPrevious(instant int64, logs []model.HosLog, dayStart int64) int64 {
	if len(ActiveSorted(logs)) == 0 {
		return constants.DefaultGapDurationMs
	}
	if prev, ok := FindPreviousLog(instant, logs); ok {
		return instant - prev.Timestamp
	}
	return instant - dayStart
}

// DurationToNext computes the time consumed until the next entry, used
// when the insertion fills a gap before a following state. With no next
// entry the synthetic boundary is end-of-day; with neither neighbor (an
// empty set, or an instant exactly matching the only entry) the fixed
// one-hour default applies.
func DurationToNext(instant int64, logs []model.HosLog, dayEnd int64) int64 {
	if len(ActiveSorted(logs)) == 0 {
		return constants.DefaultGapDurationMs
	}
	if next, ok := FindNextLog(instant, logs); ok {
		return next.Timestamp - instant
	}
	if _, ok := FindPreviousLog(instant, logs); ok {
		return dayEnd - instant
	}
	return constants.DefaultGapDurationMs
}
