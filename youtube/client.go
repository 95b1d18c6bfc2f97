// Package youtube retrieves channel video catalogs through the
// YouTube Data API v3.
package youtube

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client wraps the YouTube Data API v3 service with request pacing.
// All calls are synchronous and strictly sequential; the pacer is the
// single serialization point for outbound requests.
type Client struct {
	service *youtube.Service
	pacer   *Pacer
}

// Options configures Client construction.
type Options struct {
	// RequestInterval is the minimum spacing between API calls.
	// Zero means DefaultRequestInterval.
	RequestInterval time.Duration
	// RateCooldown is the wait after a quota or rate limit response.
	// Zero means DefaultRateCooldown.
	RateCooldown time.Duration
	// MaxRateRetries bounds rate limit retries per call. 0 retries
	// until the quota recovers.
	MaxRateRetries int
	// ClientOptions are passed through to the underlying service.
	// Tests use this to point the client at a fake endpoint.
	ClientOptions []option.ClientOption
}

// NewClient builds a Data API client authenticated with apiKey.
func NewClient(ctx context.Context, apiKey string, opts Options) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("youtube: api key required")
	}

	clientOpts := append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts.ClientOptions...)
	service, err := youtube.NewService(ctx, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("youtube: create service: %w", err)
	}

	return &Client{
		service: service,
		pacer:   NewPacer(opts.RequestInterval, opts.RateCooldown, opts.MaxRateRetries),
	}, nil
}

// VideoCategories fetches the category ID to name assignment for a region.
func (c *Client) VideoCategories(ctx context.Context, regionCode string) (map[string]string, error) {
	names := make(map[string]string)
	err := c.pacer.Call(ctx, func() error {
		resp, err := c.service.VideoCategories.List([]string{"snippet"}).
			RegionCode(regionCode).
			Context(ctx).
			Do()
		if err != nil {
			return err
		}
		for _, item := range resp.Items {
			if item.Snippet != nil {
				names[item.Id] = item.Snippet.Title
			}
		}
		return nil
	})
	if err != nil {
		return nil, &APIError{Op: "categories", Target: regionCode, Err: err}
	}
	return names, nil
}
