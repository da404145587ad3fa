package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/aliskhannn/delivery-orchestrator/internal/model"
)

// Client talks to the delivery system's status and acknowledgment endpoints.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a client for the service at baseURL, e.g. "http://orchestrator:8080".
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

type ackRequest struct {
	Recipient string `json:"recipient"`
}

// Status returns the domain delivery status of a message or event id.
func (c *Client) Status(ctx context.Context, id string) (model.DeliveryStatus, error) {
	var status model.DeliveryStatus
	if err := c.doJSON(ctx, http.MethodGet, "/api/notifications/"+url.PathEscape(id)+"/status", nil, &status); err != nil {
		return model.DeliveryStatus{}, err
	}

	return status, nil
}

// Ack records that the message reached this device.
func (c *Client) Ack(ctx context.Context, id, recipient string) error {
	return c.doJSON(ctx, http.MethodPost, "/api/notifications/"+url.PathEscape(id)+"/ack", ackRequest{Recipient: recipient}, nil)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response body: %w", err)
		}
	}

	return nil
}
