package notify

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// Client delivers alert notifications to an external receiver.
type Client interface {
	Send(ctx context.Context, payload Payload) error
}

// Payload is the JSON body posted to the webhook.
type Payload struct {
	Event   string `json:"event"`
	Message string `json:"message"`
	Items   []Item `json:"items,omitempty"`
}

// Item is one affected record in an alert.
type Item struct {
	FeedType string  `json:"feedType"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Supplier string  `json:"supplier"`
}

// WebhookClient is a resty-backed implementation of Client posting to a
// fixed URL.
type WebhookClient struct {
	httpClient *resty.Client
	url        string
}

// NewClient builds a webhook client for the provided target URL.
func NewClient(url string) *WebhookClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Content-Type", "application/json").
		SetTimeout(15 * time.Second)

	return &WebhookClient{
		httpClient: restyClient,
		url:        url,
	}
}

// Send posts the payload to the webhook.
func (c *WebhookClient) Send(ctx context.Context, payload Payload) error {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		return fmt.Errorf("send webhook notification: %w", err)
	}

	if resp.StatusCode() >= http.StatusBadRequest {
		return fmt.Errorf("webhook error: code=%d, body=%s", resp.StatusCode(), resp.String())
	}

	return nil
}
