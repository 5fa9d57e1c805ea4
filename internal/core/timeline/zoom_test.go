package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZoomSteps(t *testing.T) {
	level := 1.0

	level = ZoomIn(level)
	assert.Equal(t, 1.25, level)

	level = ZoomOut(level)
	assert.Equal(t, 1.0, level)
}

func TestZoomOutAtFloorIsNoOp(t *testing.T) {
	assert.Equal(t, 1.0, ZoomOut(1.0))
}

func TestZoomInClampsAtMaximum(t *testing.T) {
	level := 1.0
	for i := 0; i < 20; i++ {
		level = ZoomIn(level)
	}
	assert.Equal(t, 4.0, level)
}
