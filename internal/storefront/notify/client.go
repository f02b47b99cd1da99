package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	errx "github.com/somascents/storefront/internal/core/error"
	"github.com/somascents/storefront/internal/storefront/model"
	logx "github.com/somascents/storefront/pkg/logger"
)

// Client calls a remote notification boundary over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient targets baseURL + Route.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		endpoint: strings.TrimRight(baseURL, "/") + Route,
		http:     &http.Client{Timeout: timeout},
	}
}

func (c *Client) Notify(ctx context.Context, req model.NotificationRequest) (*model.NotificationResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, errx.Internal(fmt.Errorf("marshal notification: %w", err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errx.Internal(fmt.Errorf("build notification request: %w", err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(httpReq)
	if err != nil {
		logx.Error().Err(err).Str("endpoint", c.endpoint).Msg("notification request failed")
		return nil, errx.New(err, http.StatusBadGateway, errx.NotificationFailMessage)
	}
	defer res.Body.Close()

	var out model.NotificationResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, errx.New(fmt.Errorf("decode notification response (status %d): %w", res.StatusCode, err), http.StatusBadGateway, errx.NotificationFailMessage)
	}
	if res.StatusCode != http.StatusOK || !out.Success {
		status := res.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		msg := out.Error
		if msg == "" {
			msg = errx.NotificationFailMessage
		}
		return nil, errx.New(nil, status, msg)
	}
	return &out, nil
}

var _ model.Notifier = (*Client)(nil)
