// Package api implements the clients for the remote HOS service: manual
// log creation, day-log retrieval, pending-log approval and event-code
// metadata. Remote failures are returned as values, never panics; the
// callers decide whether and when to retry.
package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
)

const defaultRequestTimeout = 30 * time.Second

// Client is the shared HTTP plumbing for the HOS service endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultRequestTimeout,
		},
	}
}

// doJSON sends a request with an optional JSON body and decodes the JSON
// response into out when the status is 2xx. Non-2xx responses are returned
// as *httpError carrying the status and any server-provided message.
func (c *Client) doJSON(ctx context.Context, method, url string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		data, err := sonic.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newHTTPError(resp.StatusCode, data)
	}

	if out == nil || len(data) == 0 {
		return nil
	}
	return sonic.Unmarshal(data, out)
}

// httpError is a non-2xx response from the service.
type httpError struct {
	StatusCode int
	Message    string
}

func newHTTPError(status int, body []byte) *httpError {
	var envelope struct {
		Message string `json:"message"`
	}
	message := ""
	if err := sonic.Unmarshal(body, &envelope); err == nil {
		message = envelope.Message
	}
	return &httpError{StatusCode: status, Message: message}
}

func (e *httpError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}
