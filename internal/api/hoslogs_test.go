package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetlog/go-hos-timeline/internal/core/model"
)

type recordedRequest struct {
	method string
	path   string
	query  string
	body   []byte
}

func recordingServer(t *testing.T, response string) (*httptest.Server, *[]recordedRequest) {
	t.Helper()
	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		requests = append(requests, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			body:   body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(response))
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func TestGetHosLogs(t *testing.T) {
	response := `{"response":true,"status":200,"message":"ok","data":{"certified":true,"logs":[` +
		`{"id":10,"status":1,"timestamp":1000,"duration":5000,"eventCode":"DRIVING","category":"AUTOMATIC"},` +
		`{"id":11,"status":1,"timestamp":6000,"duration":null,"eventCode":"ON_DUTY","category":"MANUAL"}]}}`
	server, requests := recordingServer(t, response)

	client := NewLogsClient(NewClient(server.URL))
	data, err := client.GetHosLogs(context.Background(), 7, 42, 1000, 90000, true)
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodGet, req.method)
	assert.Equal(t, "/tenants/7/drivers/42/hos-logs", req.path)
	assert.Equal(t, "startTime=1000&endTime=90000&showHiddenLogs=true", req.query)

	assert.True(t, data.Certified)
	require.Len(t, data.Logs, 2)
	assert.Equal(t, model.EventDriving, data.Logs[0].EventCode)
	assert.False(t, data.Logs[0].Duration.IsOngoing())
	assert.True(t, data.Logs[1].Duration.IsOngoing(), "null duration decodes as ongoing")
}

func TestAddHosLogPostsPendingEntry(t *testing.T) {
	server, requests := recordingServer(t, `{"response":true,"status":200,"message":"ok","data":{}}`)
	client := NewLogsClient(NewClient(server.URL))

	entry := model.HosLog{Timestamp: 123456, EventCode: model.EventDriving, Address: "I-80 mile 12"}
	require.NoError(t, client.AddHosLog(context.Background(), 7, 42, entry, "dispatcher"))

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	assert.Equal(t, http.MethodPost, req.method)
	assert.Equal(t, "/tenants/7/drivers/42/hos-logs", req.path)

	var posted model.HosLog
	require.NoError(t, sonic.Unmarshal(req.body, &posted))
	assert.True(t, posted.IsPending)
	assert.Equal(t, model.ApprovalPending, posted.ApprovalStatus)
	assert.Equal(t, "dispatcher", posted.RequestedBy)
	assert.Equal(t, model.EventDriving, posted.EventCode)
	assert.Equal(t, int64(123456), posted.Timestamp)
}

func TestApproveAndRejectLog(t *testing.T) {
	server, requests := recordingServer(t, `{"response":true,"status":200,"message":"ok","data":{}}`)
	client := NewLogsClient(NewClient(server.URL))

	require.NoError(t, client.ApproveLog(context.Background(), 7, 42, 99))
	require.NoError(t, client.RejectLog(context.Background(), 7, 42, 100))

	require.Len(t, *requests, 2)
	assert.Equal(t, http.MethodPut, (*requests)[0].method)
	assert.Equal(t, "/tenants/7/drivers/42/hos-logs/99/approve", (*requests)[0].path)
	assert.Equal(t, http.MethodPut, (*requests)[1].method)
	assert.Equal(t, "/tenants/7/drivers/42/hos-logs/100/reject", (*requests)[1].path)
}

func TestSimulatePendingLogDefaults(t *testing.T) {
	before := time.Now().UnixMilli()
	entry := SimulatePendingLog(model.HosLog{}, "driver-7")
	after := time.Now().UnixMilli()

	assert.Equal(t, model.EventOffDuty, entry.EventCode)
	assert.Equal(t, model.CategoryManual, entry.Category)
	assert.Equal(t, "Unknown Location", entry.Address)
	assert.Equal(t, model.StatusActive, entry.Status)
	assert.True(t, entry.IsPending)
	assert.Equal(t, model.ApprovalPending, entry.ApprovalStatus)
	assert.Equal(t, "driver-7", entry.RequestedBy)
	assert.GreaterOrEqual(t, entry.Timestamp, before)
	assert.LessOrEqual(t, entry.Timestamp, after)
	assert.GreaterOrEqual(t, entry.PendingApprovalDate, before)
}

func TestSimulatePendingLogKeepsProvidedFields(t *testing.T) {
	entry := SimulatePendingLog(model.HosLog{
		Timestamp: 5000,
		EventCode: model.EventSleeperBerth,
		Category:  model.CategoryAutomatic,
		Address:   "Yard 3",
	}, "driver-7")

	assert.Equal(t, int64(5000), entry.Timestamp)
	assert.Equal(t, model.EventSleeperBerth, entry.EventCode)
	assert.Equal(t, model.CategoryAutomatic, entry.Category)
	assert.Equal(t, "Yard 3", entry.Address)
}
