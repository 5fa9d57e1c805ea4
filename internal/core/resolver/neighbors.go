package resolver

import (
	"sort"

	"github.com/fleetlog/go-hos-timeline/internal/core/model"
)

// ActiveSorted returns the active subset of logs ordered by timestamp.
// Callers are never trusted to pre-sort; the neighbor primitives own
// normalization.
func ActiveSorted(logs []model.HosLog) []model.HosLog {
	active := make([]model.HosLog, 0, len(logs))
	for _, log := range logs {
		if log.IsActive() {
			active = append(active, log)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Timestamp < active[j].Timestamp
	})
	return active
}

// FindPreviousLog returns the closest active entry strictly before instant.
// An entry at exactly instant is a conflict, claimed by neither neighbor.
func FindPreviousLog(instant int64, logs []model.HosLog) (model.HosLog, bool) {
	var prev model.HosLog
	found := false
	for _, log := range ActiveSorted(logs) {
		if log.Timestamp >= instant {
			break
		}
		prev = log
		found = true
	}
	return prev, found
}

// FindNextLog returns the closest active entry strictly after instant.
func FindNextLog(instant int64, logs []model.HosLog) (model.HosLog, bool) {
	for _, log := range ActiveSorted(logs) {
		if log.Timestamp > instant {
			return log, true
		}
	}
	return model.HosLog{}, false
}
