package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fleetlog/go-hos-timeline/internal/core/model"
	"github.com/fleetlog/go-hos-timeline/internal/core/resolver"
	"github.com/fleetlog/go-hos-timeline/internal/util"
)

// Local validation error codes, produced before any network call.
const (
	ErrCodeMissingParameters   = "MISSING_PARAMETERS"
	ErrCodeMissingStatus       = "MISSING_STATUS"
	ErrCodeInvalidTimestamp    = "INVALID_TIMESTAMP"
	ErrCodeDurationCalculation = "DURATION_CALCULATION_FAILED"
)

// LogFormData is the manual-entry form payload as typed by the user. The
// event time is still a raw clock string; resolution happens here.
type LogFormData struct {
	DutyStatus string
	EventTime  string
	Location   string
	Comment    string
	LogOwner   string
}

// ResponseData carries the service's echo of the created entry.
type ResponseData struct {
	Duration  string `json:"duration,omitempty"`
	Timestamp int64  `json:"timestamp,omitempty"`
}

// Response is the outcome of a manual-log submission, success or failure.
// Failures are values: the error field holds one of the local codes above
// or the HTTP status that was mapped to a message.
type Response struct {
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Error   string        `json:"error,omitempty"`
	Data    *ResponseData `json:"data,omitempty"`
}

// createLogRequest is the outbound wire body. The service contract wants
// the resolved instant and the implied duration as plain millisecond
// integers.
type createLogRequest struct {
	TimeStamp   int64  `json:"timeStamp"`
	Duration    int64  `json:"duration"`
	DutyStatus  string `json:"dutyStatus"`
	Location    string `json:"location"`
	Comment     string `json:"comment"`
	LogOwner    string `json:"logOwner"`
	InitiatorID int64  `json:"initiatorId"`
}

// ManualLogClient creates manual duty-status entries.
type ManualLogClient struct {
	client   *Client
	resolver *resolver.Resolver
}

// NewManualLogClient creates a manual-log client against the given base
// client, resolving clock times with the given resolver.
func NewManualLogClient(client *Client, r *resolver.Resolver) *ManualLogClient {
	return &ManualLogClient{client: client, resolver: r}
}

// CreateManualLog validates the form locally, resolves the event time in
// the tenant timezone, computes the implied duration against the existing
// logs and posts the entry. All failures come back as a Response value.
//
// Unlike the interactive preview path, timezone resolution here is strict:
// a payload built against the wrong offset must not reach the service.
func (m *ManualLogClient) CreateManualLog(ctx context.Context, tenantID, driverID, initiatorID int64, form LogFormData, selectedDate time.Time, existingLogs []model.HosLog, timezone string) Response {
	if tenantID <= 0 || driverID <= 0 || initiatorID <= 0 {
		return failure("Missing required parameters", ErrCodeMissingParameters)
	}
	if form.DutyStatus == "" {
		return failure("Duty status is required", ErrCodeMissingStatus)
	}

	instant, err := m.resolver.ResolveTimestampStrict(form.EventTime, selectedDate, timezone)
	if err != nil {
		return failure(fmt.Sprintf("Could not resolve event time: %v", err), ErrCodeInvalidTimestamp)
	}

	if len(resolver.ActiveSorted(existingLogs)) == 0 {
		return failure("No existing logs to compute a duration against", ErrCodeDurationCalculation)
	}
	dayEnd := m.resolver.DayEnd(selectedDate, timezone)
	duration := resolver.DurationToNext(instant, existingLogs, dayEnd)

	body := createLogRequest{
		TimeStamp:   instant,
		Duration:    duration,
		DutyStatus:  form.DutyStatus,
		Location:    form.Location,
		Comment:     form.Comment,
		LogOwner:    form.LogOwner,
		InitiatorID: initiatorID,
	}

	url := fmt.Sprintf("%s/tenants/%d/drivers/%d/hos-logs/manual-entry", m.client.baseURL, tenantID, driverID)
	util.LogDebugf("Creating manual log: %s at %d for %d ms", form.DutyStatus, instant, duration)

	var resp Response
	if err := m.client.doJSON(ctx, http.MethodPost, url, body, &resp); err != nil {
		return mapTransportError(err)
	}
	return resp
}

func failure(message, code string) Response {
	return Response{Success: false, Message: message, Error: code}
}

// mapTransportError translates HTTP and network failures into the
// human-facing messages the callers surface directly.
func mapTransportError(err error) Response {
	var httpErr *httpError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusBadRequest:
			return failure("Bad Request: the service rejected the entry", "400")
		case http.StatusInternalServerError:
			return failure("Internal Server Error: please try again later", "500")
		default:
			message := httpErr.Message
			if message == "" {
				message = http.StatusText(httpErr.StatusCode)
			}
			return failure(message, fmt.Sprintf("%d", httpErr.StatusCode))
		}
	}
	return failure(fmt.Sprintf("Request failed: %v", err), "NETWORK_ERROR")
}
