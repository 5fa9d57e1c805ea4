package formatter

import (
	"fmt"
	"strings"

	"github.com/fleetlog/go-hos-timeline/internal/core/constants"
	"github.com/fleetlog/go-hos-timeline/internal/core/model"
	"github.com/fleetlog/go-hos-timeline/internal/core/timeline"
	"github.com/fleetlog/go-hos-timeline/internal/data/aggregator"
	"github.com/fleetlog/go-hos-timeline/internal/util"
)

const (
	labelColumnWidth = 20
	minBandWidth     = 24

	cellEmpty        = '·'
	cellFilled       = '█'
	cellPending      = '▒'
	cellContinuation = '◀'
)

var statusColors = map[model.EventCode]string{
	model.EventOffDuty:            util.ColorGray,
	model.EventSleeperBerth:       util.ColorBlue,
	model.EventDriving:            util.ColorGreen,
	model.EventOnDuty:             util.ColorYellow,
	model.EventYardMoves:          util.ColorMagenta,
	model.EventPersonalConveyance: util.ColorCyan,
}

// TimelineRenderer draws a day of positioned duty-status intervals as a
// character grid: one lane per duty status, a shared hour axis, and a
// per-status totals column. Rendering is pure string building; the caller
// owns the terminal.
type TimelineRenderer struct {
	bandWidth int
	zoom      float64
	colorized bool
	labels    map[model.EventCode]string
}

// NewTimelineRenderer creates a renderer whose 24-hour band occupies
// bandWidth character columns at zoom 1.0.
func NewTimelineRenderer(bandWidth int) *TimelineRenderer {
	if bandWidth < minBandWidth {
		bandWidth = minBandWidth
	}
	return &TimelineRenderer{bandWidth: bandWidth, zoom: constants.ZoomMinimum}
}

// SetZoom widens the band by the given factor. Values outside the
// supported range are clamped.
func (r *TimelineRenderer) SetZoom(zoom float64) {
	if zoom < constants.ZoomMinimum {
		zoom = constants.ZoomMinimum
	}
	if zoom > constants.ZoomMaximum {
		zoom = constants.ZoomMaximum
	}
	r.zoom = zoom
}

// Zoom returns the current zoom factor.
func (r *TimelineRenderer) Zoom() float64 {
	return r.zoom
}

// SetLabels installs tenant display names for duty statuses. Statuses
// without a label render their raw code.
func (r *TimelineRenderer) SetLabels(labels map[model.EventCode]string) {
	r.labels = labels
}

// EnableColor turns on ANSI coloring of the status lanes.
func (r *TimelineRenderer) EnableColor() {
	r.colorized = true
}

func (r *TimelineRenderer) label(code model.EventCode) string {
	if name, ok := r.labels[code]; ok && name != "" {
		return name
	}
	return string(code)
}

func (r *TimelineRenderer) band() int {
	return int(float64(r.bandWidth) * r.zoom)
}

// Render draws the full day view: hour axis, one lane per duty status,
// per-interval detail lines and the per-status totals.
func (r *TimelineRenderer) Render(intervals []timeline.DisplayInterval, summary aggregator.DaySummary) string {
	var b strings.Builder

	b.WriteString(r.renderAxis())
	b.WriteByte('\n')
	for _, code := range model.DutyStatusCodes {
		b.WriteString(r.renderLane(code, intervals))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	for _, interval := range intervals {
		b.WriteString(r.renderDetail(interval))
		b.WriteByte('\n')
	}

	b.WriteByte('\n')
	b.WriteString(util.PadToWidth("Total", labelColumnWidth))
	b.WriteString(FormatDurationSummary(summary.TotalMs))
	b.WriteByte('\n')

	return b.String()
}

// renderAxis draws hour markers every six hours across the band.
func (r *TimelineRenderer) renderAxis() string {
	band := r.band()
	axis := []rune(strings.Repeat(" ", band+3))
	for hour := 0; hour <= 24; hour += 6 {
		col := hour * band / 24
		mark := fmt.Sprintf("%d", hour)
		for i, ch := range mark {
			if col+i < len(axis) {
				axis[col+i] = ch
			}
		}
	}
	return strings.Repeat(" ", labelColumnWidth) + string(axis)
}

// renderLane draws one duty status row: the label, the occupancy band and
// the day total for that status.
func (r *TimelineRenderer) renderLane(code model.EventCode, intervals []timeline.DisplayInterval) string {
	band := r.band()
	cells := make([]rune, band)
	for i := range cells {
		cells[i] = cellEmpty
	}

	for _, interval := range intervals {
		if interval.EventCode != code {
			continue
		}
		start, width := r.columns(interval)
		fill := cellFilled
		if interval.IsPending {
			fill = cellPending
		}
		for i := start; i < start+width && i < band; i++ {
			cells[i] = fill
		}
		if interval.IsContinuationFromPreviousDay && start == 0 {
			cells[0] = cellContinuation
		}
	}

	lane := string(cells)
	if r.colorized {
		if color, ok := statusColors[code]; ok {
			lane = color + lane + util.ColorReset
		}
	}

	return util.PadToWidth(r.label(code), labelColumnWidth) + lane
}

// columns converts an interval's percent geometry into band columns. Every
// visible interval occupies at least one column.
func (r *TimelineRenderer) columns(interval timeline.DisplayInterval) (start, width int) {
	band := r.band()
	start = int(interval.StartOffsetPct / 100 * float64(band))
	if start >= band {
		start = band - 1
	}
	width = int(interval.WidthPct/100*float64(band) + 0.5)
	if width < 1 {
		width = 1
	}
	if start+width > band {
		width = band - start
	}
	return start, width
}

// renderDetail draws one interval's listing line: start clock, status,
// duration and address, with pending and carry-over markers.
func (r *TimelineRenderer) renderDetail(interval timeline.DisplayInterval) string {
	offsetMs := int64(interval.StartOffsetPct / 100 * float64(constants.DayMillis))
	clock := fmt.Sprintf("%02d:%02d", offsetMs/constants.MillisPerHour, (offsetMs%constants.MillisPerHour)/constants.MillisPerMinute)

	durationLabel := "Ongoing"
	if ms, bounded := interval.Log.Duration.Millis(); bounded {
		durationLabel = FormatDurationBar(ms)
	}

	parts := []string{clock, util.PadToWidth(r.label(interval.EventCode), labelColumnWidth), util.PadToWidth(durationLabel, 10)}
	if interval.Log.Address != "" {
		parts = append(parts, interval.Log.Address)
	}
	line := strings.Join(parts, " ")
	if interval.IsContinuationFromPreviousDay {
		line += " (carried over)"
	}
	if interval.IsPending {
		line += " [pending approval]"
	}
	return line
}

// RenderSummary draws only the per-status totals block, one row per duty
// status that occurred plus the grand total.
func (r *TimelineRenderer) RenderSummary(summary aggregator.DaySummary) string {
	var b strings.Builder
	for _, code := range model.DutyStatusCodes {
		ms := summary.Duration(code)
		if ms <= 0 {
			continue
		}
		b.WriteString(util.PadToWidth(r.label(code), labelColumnWidth))
		b.WriteString(FormatDurationSummary(ms))
		b.WriteByte('\n')
	}
	b.WriteString(util.PadToWidth("Total", labelColumnWidth))
	b.WriteString(FormatDurationSummary(summary.TotalMs))
	b.WriteByte('\n')
	return b.String()
}
