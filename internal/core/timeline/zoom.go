package timeline

import (
	"github.com/fleetlog/go-hos-timeline/internal/core/constants"
)

// ZoomIn takes one multiplicative zoom step, clamped to the maximum level.
func ZoomIn(level float64) float64 {
	next := level * constants.ZoomStep
	if next > constants.ZoomMaximum {
		return constants.ZoomMaximum
	}
	return next
}

// ZoomOut takes one multiplicative step back, never dropping below the
// initial level. Zooming out at the floor is a no-op, not an error.
func ZoomOut(level float64) float64 {
	next := level / constants.ZoomStep
	if next < constants.ZoomMinimum {
		return constants.ZoomMinimum
	}
	return next
}
