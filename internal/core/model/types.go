package model

// EventCode is the categorical duty status of a driver at an instant.
type EventCode string

const (
	EventOffDuty            EventCode = "OFF_DUTY"
	EventSleeperBerth       EventCode = "SLEEPER_BERTH"
	EventDriving            EventCode = "DRIVING"
	EventOnDuty             EventCode = "ON_DUTY"
	EventYardMoves          EventCode = "YARD_MOVES"
	EventPersonalConveyance EventCode = "PERSONAL_CONVEYANCE"

	// Technical markers recorded by the ELD but never rendered on the timeline
	EventIntermediateLowPrecision  EventCode = "INTERMEDIATE_LOG_LOW_PRECISION_LOCATION"
	EventIntermediateHighPrecision EventCode = "INTERMEDIATE_LOG_HIGH_PRECISION_LOCATION"
)

// DutyStatusCodes lists the renderable duty statuses in display order.
var DutyStatusCodes = []EventCode{
	EventOffDuty,
	EventSleeperBerth,
	EventDriving,
	EventOnDuty,
	EventYardMoves,
	EventPersonalConveyance,
}

var hiddenEventCodes = map[EventCode]struct{}{
	EventIntermediateLowPrecision:  {},
	EventIntermediateHighPrecision: {},
}

// Renderable reports whether the event code represents a duty status that
// appears on the timeline, as opposed to a technical marker.
func (c EventCode) Renderable() bool {
	_, hidden := hiddenEventCodes[c]
	return !hidden
}

// LogStatus marks whether a log entry is authoritative or historical.
type LogStatus int

const (
	StatusActive                  LogStatus = 1
	StatusInactiveChanged         LogStatus = 2
	StatusInactiveChangeRequested LogStatus = 3
)

// LogCategory is the provenance of a log entry.
type LogCategory string

const (
	CategoryManual    LogCategory = "MANUAL"
	CategoryAutomatic LogCategory = "AUTOMATIC"
)

// ApprovalStatus tracks the review state of a pending entry.
type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

// HosLog is one duty-status record in a driver's Hours-of-Service log.
type HosLog struct {
	Id                  int64          `json:"id"`
	Status              LogStatus      `json:"status"`
	CreatedOn           int64          `json:"createdOn"`
	UpdatedOn           int64          `json:"updatedOn"`
	Timestamp           int64          `json:"timestamp"` // epoch milliseconds when the status began
	Duration            LogDuration    `json:"duration"`
	Address             string         `json:"address"`
	EventCode           EventCode      `json:"eventCode"`
	Category            LogCategory    `json:"category"`
	CanEdit             bool           `json:"canEdit"`
	EditableFields      []string       `json:"editableFields,omitempty"`
	IsPending           bool           `json:"isPending,omitempty"`
	ApprovalStatus      ApprovalStatus `json:"approvalStatus,omitempty"`
	PendingApprovalDate int64          `json:"pendingApprovalDate,omitempty"`
	RequestedBy         string         `json:"requestedBy,omitempty"`
}

// IsActive reports whether the entry is authoritative. Superseded entries
// are excluded from rendering and conflict checks.
func (l HosLog) IsActive() bool {
	return l.Status == StatusActive
}

// End returns the epoch-millisecond instant the interval closes, or false
// for an ongoing entry.
func (l HosLog) End() (int64, bool) {
	ms, bounded := l.Duration.Millis()
	if !bounded {
		return 0, false
	}
	return l.Timestamp + ms, true
}
