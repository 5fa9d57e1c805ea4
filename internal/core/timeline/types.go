package timeline

import (
	"time"

	"github.com/fleetlog/go-hos-timeline/internal/core/constants"
	"github.com/fleetlog/go-hos-timeline/internal/core/model"
	"github.com/fleetlog/go-hos-timeline/internal/core/resolver"
)

// DayWindow is the 24-hour span of a single calendar day, in epoch
// milliseconds. End is exclusive: Start + 24h.
type DayWindow struct {
	Start int64
	End   int64
}

// WindowForDate builds the day window for the calendar day of date in the
// tenant timezone.
func WindowForDate(r *resolver.Resolver, date time.Time, timezone string) DayWindow {
	start := r.DayStart(date, timezone)
	return DayWindow{Start: start, End: start + constants.DayMillis}
}

// Contains reports whether the instant falls inside the window.
func (w DayWindow) Contains(ts int64) bool {
	return ts >= w.Start && ts < w.End
}

// DisplayInterval is one positioned bar on the rendered timeline. It is
// derived state, recomputed from the day's logs on every build and never
// persisted.
type DisplayInterval struct {
	Log                           model.HosLog
	EventCode                     model.EventCode
	StartOffsetPct                float64
	WidthPct                      float64
	IsPending                     bool
	IsContinuationFromPreviousDay bool
}
