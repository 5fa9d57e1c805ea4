// Package aggregator sums per-status durations across a day's duty-status
// logs and surfaces the pending-approval overlay.
package aggregator

import (
	"github.com/fleetlog/go-hos-timeline/internal/core/model"
	"github.com/fleetlog/go-hos-timeline/internal/core/resolver"
)

// DaySummary holds the per-status totals for one day plus the grand total
// across all duty statuses.
type DaySummary struct {
	ByStatus map[model.EventCode]int64
	TotalMs  int64
}

// Duration returns the summed milliseconds for a duty status, zero when
// the status never occurred.
func (s DaySummary) Duration(code model.EventCode) int64 {
	return s.ByStatus[code]
}

// AggregateDurations sums bounded durations per duty-status code over the
// active, renderable subset. Multiple non-contiguous segments of the same
// status accumulate. Ongoing and zero-length entries contribute nothing.
func AggregateDurations(logs []model.HosLog) DaySummary {
	summary := DaySummary{ByStatus: make(map[model.EventCode]int64)}
	for _, log := range resolver.ActiveSorted(logs) {
		if !log.EventCode.Renderable() {
			continue
		}
		ms, bounded := log.Duration.Millis()
		if !bounded || ms <= 0 {
			continue
		}
		summary.ByStatus[log.EventCode] += ms
		summary.TotalMs += ms
	}
	return summary
}

// PendingLogs returns every entry flagged pending, regardless of where it
// is in the approval flow. Already-approved entries that still carry the
// flag surface here too.
func PendingLogs(logs []model.HosLog) []model.HosLog {
	pending := make([]model.HosLog, 0)
	for _, log := range logs {
		if log.IsPending {
			pending = append(pending, log)
		}
	}
	return pending
}

// IsCurrentlyPending classifies a single entry as still awaiting approval.
func IsCurrentlyPending(log model.HosLog) bool {
	return log.IsPending && log.ApprovalStatus == model.ApprovalPending
}
