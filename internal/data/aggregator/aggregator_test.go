package aggregator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetlog/go-hos-timeline/internal/core/model"
)

var baseTs = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC).UnixMilli()

func statusLog(code model.EventCode, offsetMin int64, duration model.LogDuration) model.HosLog {
	return model.HosLog{
		Id:        offsetMin,
		Status:    model.StatusActive,
		Timestamp: baseTs + offsetMin*60000,
		Duration:  duration,
		EventCode: code,
		Category:  model.CategoryAutomatic,
	}
}

func TestAggregateDurations(t *testing.T) {
	logs := []model.HosLog{
		statusLog(model.EventDriving, 10, model.Bounded(30*60000)),
		statusLog(model.EventDriving, 40, model.Bounded(15*60000)),
		statusLog(model.EventOnDuty, 70, model.Bounded(45*60000)),
		statusLog(model.EventOffDuty, 120, model.Bounded(0)), // zero duration ignored
	}

	summary := AggregateDurations(logs)
	assert.Equal(t, int64(45*60000), summary.Duration(model.EventDriving))
	assert.Equal(t, int64(45*60000), summary.Duration(model.EventOnDuty))
	assert.Equal(t, int64(0), summary.Duration(model.EventOffDuty))
	assert.Equal(t, int64(90*60000), summary.TotalMs)
}

func TestAggregateDurationsSkipsOngoingAndInactive(t *testing.T) {
	inactive := statusLog(model.EventDriving, 10, model.Bounded(60*60000))
	inactive.Status = model.StatusInactiveChanged

	logs := []model.HosLog{
		inactive,
		statusLog(model.EventOffDuty, 40, model.Ongoing()),
		statusLog(model.EventOnDuty, 70, model.Bounded(20*60000)),
	}

	summary := AggregateDurations(logs)
	assert.Equal(t, int64(0), summary.Duration(model.EventDriving))
	assert.Equal(t, int64(0), summary.Duration(model.EventOffDuty))
	assert.Equal(t, int64(20*60000), summary.TotalMs)
}

func TestAggregateDurationsSkipsHiddenCodes(t *testing.T) {
	logs := []model.HosLog{
		statusLog(model.EventIntermediateLowPrecision, 10, model.Bounded(30*60000)),
	}
	assert.Equal(t, int64(0), AggregateDurations(logs).TotalMs)
}

func TestPendingLogs(t *testing.T) {
	pending := statusLog(model.EventDriving, 10, model.Bounded(60000))
	pending.IsPending = true
	pending.ApprovalStatus = model.ApprovalPending

	approved := statusLog(model.EventDriving, 40, model.Bounded(60000))
	approved.IsPending = true
	approved.ApprovalStatus = model.ApprovalApproved

	plain := statusLog(model.EventOnDuty, 70, model.Bounded(60000))

	overlay := PendingLogs([]model.HosLog{pending, approved, plain})
	require.Len(t, overlay, 2)

	assert.True(t, IsCurrentlyPending(pending))
	assert.False(t, IsCurrentlyPending(approved))
	assert.False(t, IsCurrentlyPending(plain))
}
