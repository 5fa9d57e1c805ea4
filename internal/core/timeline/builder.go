// Package timeline turns a flat list of duty-status log records into a
// gap-free sequence of positioned intervals for one visible calendar day.
package timeline

import (
	"github.com/fleetlog/go-hos-timeline/internal/core/constants"
	"github.com/fleetlog/go-hos-timeline/internal/core/model"
	"github.com/fleetlog/go-hos-timeline/internal/core/resolver"
	"github.com/fleetlog/go-hos-timeline/internal/util"
)

// Builder builds display intervals for a single day window.
type Builder struct {
	window DayWindow
}

// NewBuilder creates a builder for the given day window.
func NewBuilder(window DayWindow) *Builder {
	return &Builder{window: window}
}

// Window returns the day window the builder positions against.
func (b *Builder) Window() DayWindow {
	return b.window
}

// BuildEvents filters and positions the day's logs. Inactive entries and
// non-renderable technical markers are dropped; an ongoing entry survives
// only when nothing else in the filtered set starts later. Geometry is
// expressed as percentages of the 24-hour window, clamped at both edges
// so no interval renders outside the day.
func (b *Builder) BuildEvents(logs []model.HosLog) []DisplayInterval {
	visible := make([]model.HosLog, 0, len(logs))
	for _, log := range resolver.ActiveSorted(logs) {
		if log.EventCode.Renderable() {
			visible = append(visible, log)
		}
	}

	lastStart := int64(0)
	for _, log := range visible {
		if log.Timestamp > lastStart {
			lastStart = log.Timestamp
		}
	}

	intervals := make([]DisplayInterval, 0, len(visible))
	for _, log := range visible {
		if log.Duration.IsOngoing() && log.Timestamp < lastStart {
			// A later entry supersedes this one; an open interval here
			// would overlap it.
			util.LogDebugf("Dropping stale ongoing entry %d at %d", log.Id, log.Timestamp)
			continue
		}

		interval, ok := b.position(log)
		if !ok {
			continue
		}
		intervals = append(intervals, interval)
	}
	return intervals
}

// position clamps one entry into the window, reporting false for entries
// entirely outside it.
func (b *Builder) position(log model.HosLog) (DisplayInterval, bool) {
	rawStart := log.Timestamp
	rawEnd, bounded := log.End()
	if !bounded {
		// Ongoing entries run to the end of the visible day.
		rawEnd = b.window.End
	}

	if rawEnd < b.window.Start || rawStart >= b.window.End {
		return DisplayInterval{}, false
	}

	start := rawStart
	if start < b.window.Start {
		start = b.window.Start
	}
	end := rawEnd
	if end > b.window.End {
		end = b.window.End
	}
	if end <= start {
		return DisplayInterval{}, false
	}

	return DisplayInterval{
		Log:            log,
		EventCode:      log.EventCode,
		StartOffsetPct: float64(start-b.window.Start) / float64(constants.DayMillis) * 100,
		WidthPct:       float64(end-start) / float64(constants.DayMillis) * 100,
		IsPending:      log.IsPending,
		IsContinuationFromPreviousDay: rawStart < b.window.Start && rawEnd >= b.window.Start,
	}, true
}
