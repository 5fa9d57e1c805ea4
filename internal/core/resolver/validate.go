package resolver

import (
	"github.com/fleetlog/go-hos-timeline/internal/core/model"
)

// Validity is the verdict on a proposed insertion instant. A conflict is a
// non-blocking flag plus message, not an error: the caller may let the user
// keep editing the time.
type Validity struct {
	Valid   bool
	Message string
}

// ValidateInsertion rejects an instant that exactly matches an existing
// active entry's timestamp. Equality is exact millisecond match, with no
// tolerance window.
func ValidateInsertion(instant int64, logs []model.HosLog) Validity {
	for _, log := range logs {
		if log.IsActive() && log.Timestamp == instant {
			return Validity{
				Valid:   false,
				Message: "Selected time conflicts with an existing log at that time",
			}
		}
	}
	return Validity{Valid: true}
}
