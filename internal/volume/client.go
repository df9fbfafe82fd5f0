// Package volume talks to the external store that tracks cumulative
// sales volume per sales rep. The tier a new sale falls into is decided
// by the volume accumulated before it, so the figure is fetched fresh
// for every entry.
package volume

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"resty.dev/v3"
)

// Client fetches cumulative volume figures over HTTP.
type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

// NewClient creates a Client against the volume tracker at baseURL.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger, _ = zap.NewProduction()
	}
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(5 * time.Second),
		logger: logger,
	}
}

// Close releases the underlying HTTP resources.
func (c *Client) Close() error {
	return c.http.Close()
}

// CurrentVolume returns the total sales volume recorded for a rep
// before the current sale. A rep the tracker has never seen reports 0.
func (c *Client) CurrentVolume(ctx context.Context, repID string) (float64, error) {
	var out struct {
		RepID  string  `json:"rep_id"`
		Volume float64 `json:"volume"`
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("rep_id", repID).
		SetResult(&out).
		Get("/reps/{rep_id}/volume")
	if err != nil {
		return 0, fmt.Errorf("requesting volume for rep %s: %w", repID, err)
	}

	switch {
	case resp.IsSuccess():
		return out.Volume, nil
	case resp.StatusCode() == http.StatusNotFound:
		c.logger.Info("rep has no recorded volume", zap.String("rep_id", repID))
		return 0, nil
	default:
		return 0, fmt.Errorf("volume tracker returned unexpected status: %d", resp.StatusCode())
	}
}
