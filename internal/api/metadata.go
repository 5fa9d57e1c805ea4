package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fleetlog/go-hos-timeline/internal/core/model"
	"github.com/fleetlog/go-hos-timeline/internal/util"
)

// EventCodeInfo is the tenant-configured display metadata for one duty
// status.
type EventCodeInfo struct {
	Label string `json:"label"`
}

// MetadataClient looks up tenant HOS display metadata.
type MetadataClient struct {
	client *Client
}

// NewMetadataClient creates a metadata client against the given base client.
func NewMetadataClient(client *Client) *MetadataClient {
	return &MetadataClient{client: client}
}

// EventCodeMetadata fetches the event-code label map for a tenant. Any
// failure yields an empty map: the timeline falls back to raw codes
// rather than failing to render.
func (m *MetadataClient) EventCodeMetadata(ctx context.Context, tenantID int64) map[model.EventCode]EventCodeInfo {
	url := fmt.Sprintf("%s/tenants/%d/hos-metadata", m.client.baseURL, tenantID)

	var envelope struct {
		Data struct {
			EventCode map[model.EventCode]EventCodeInfo `json:"eventCode"`
		} `json:"data"`
	}
	if err := m.client.doJSON(ctx, http.MethodGet, url, nil, &envelope); err != nil {
		util.LogWarnf("Failed to fetch event-code metadata for tenant %d: %v", tenantID, err)
		return map[model.EventCode]EventCodeInfo{}
	}
	if envelope.Data.EventCode == nil {
		return map[model.EventCode]EventCodeInfo{}
	}
	return envelope.Data.EventCode
}
