package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fleetlog/go-hos-timeline/internal/core/model"
)

// HosLogsData is the day-log payload returned by the service.
type HosLogsData struct {
	Certified bool           `json:"certified"`
	Logs      []model.HosLog `json:"logs"`
}

// hosLogsEnvelope is the service's standard response wrapper.
type hosLogsEnvelope struct {
	Response bool        `json:"response"`
	Status   int         `json:"status"`
	Message  string      `json:"message"`
	Data     HosLogsData `json:"data"`
}

// LogsClient retrieves and mutates a driver's duty-status logs.
type LogsClient struct {
	client *Client
}

// NewLogsClient creates a logs client against the given base client.
func NewLogsClient(client *Client) *LogsClient {
	return &LogsClient{client: client}
}

func (l *LogsClient) driverURL(tenantID, driverID int64) string {
	return fmt.Sprintf("%s/tenants/%d/drivers/%d/hos-logs", l.client.baseURL, tenantID, driverID)
}

// GetHosLogs fetches the duty-status logs between startTime and endTime
// (epoch milliseconds). showHiddenLogs includes the technical markers the
// timeline normally filters out.
func (l *LogsClient) GetHosLogs(ctx context.Context, tenantID, driverID int64, startTime, endTime int64, showHiddenLogs bool) (*HosLogsData, error) {
	url := fmt.Sprintf("%s?startTime=%d&endTime=%d&showHiddenLogs=%t",
		l.driverURL(tenantID, driverID), startTime, endTime, showHiddenLogs)

	var envelope hosLogsEnvelope
	if err := l.client.doJSON(ctx, http.MethodGet, url, nil, &envelope); err != nil {
		return nil, err
	}
	return &envelope.Data, nil
}

// AddHosLog posts a new pending entry. The entry enters the approval flow
// rather than the authoritative log.
func (l *LogsClient) AddHosLog(ctx context.Context, tenantID, driverID int64, entry model.HosLog, requestedBy string) error {
	body := SimulatePendingLog(entry, requestedBy)
	return l.client.doJSON(ctx, http.MethodPost, l.driverURL(tenantID, driverID), body, nil)
}

// ApproveLog marks a pending entry as approved.
func (l *LogsClient) ApproveLog(ctx context.Context, tenantID, driverID, logID int64) error {
	url := fmt.Sprintf("%s/%d/approve", l.driverURL(tenantID, driverID), logID)
	return l.client.doJSON(ctx, http.MethodPut, url, nil, nil)
}

// RejectLog marks a pending entry as rejected.
func (l *LogsClient) RejectLog(ctx context.Context, tenantID, driverID, logID int64) error {
	url := fmt.Sprintf("%s/%d/reject", l.driverURL(tenantID, driverID), logID)
	return l.client.doJSON(ctx, http.MethodPut, url, nil, nil)
}

// SimulatePendingLog fills in the pending-entry defaults for a partially
// specified entry, mirroring what the service will persist.
func SimulatePendingLog(entry model.HosLog, requestedBy string) model.HosLog {
	if entry.EventCode == "" {
		entry.EventCode = model.EventOffDuty
	}
	if entry.Category == "" {
		entry.Category = model.CategoryManual
	}
	if entry.Address == "" {
		entry.Address = "Unknown Location"
	}
	if entry.Timestamp == 0 {
		entry.Timestamp = time.Now().UnixMilli()
	}
	entry.Status = model.StatusActive
	entry.IsPending = true
	entry.ApprovalStatus = model.ApprovalPending
	entry.PendingApprovalDate = time.Now().UnixMilli()
	entry.RequestedBy = requestedBy
	return entry
}
