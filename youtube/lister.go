package youtube

import (
	"context"
	"log"

	"google.golang.org/api/youtube/v3"
)

// pageSize is the maximum listing page size the API allows.
const pageSize = 50

// ListOptions bounds a channel listing.
type ListOptions struct {
	// MaxResults caps the number of IDs returned. 0 means no cap.
	MaxResults int
	// PublishedAfter restricts the listing to videos published at or
	// after this RFC 3339 timestamp. Empty means unbounded.
	PublishedAfter string
	// PublishedBefore restricts the listing to videos published at or
	// before this RFC 3339 timestamp. Empty means unbounded.
	PublishedBefore string
}

// ListVideoIDs walks the channel's video listing newest-first and returns
// the video IDs found, following the continuation cursor until the
// upstream runs out of pages or MaxResults is reached. A page without an
// item collection ends pagination without error. Every page fetch goes
// through the pacer; any non-rate-limit failure aborts the listing.
func (c *Client) ListVideoIDs(ctx context.Context, channelID string, opts ListOptions) ([]string, error) {
	var ids []string
	pageToken := ""

	for {
		var page *youtube.SearchListResponse
		err := c.pacer.Call(ctx, func() error {
			call := c.service.Search.List([]string{"id"}).
				ChannelId(channelID).
				Type("video").
				Order("date").
				MaxResults(pageSize).
				Context(ctx)
			if pageToken != "" {
				call = call.PageToken(pageToken)
			}
			if opts.PublishedAfter != "" {
				call = call.PublishedAfter(opts.PublishedAfter)
			}
			if opts.PublishedBefore != "" {
				call = call.PublishedBefore(opts.PublishedBefore)
			}

			resp, err := call.Do()
			if err != nil {
				return err
			}
			page = resp
			return nil
		})
		if err != nil {
			return nil, &APIError{Op: "list", Target: channelID, Err: err}
		}

		// A response without the item collection means the upstream has
		// nothing more to say. Soft end of pagination, not an error.
		if page.Items == nil {
			log.Printf("youtube: listing page missing items, stopping pagination")
			break
		}

		for _, item := range page.Items {
			if item.Id == nil || item.Id.VideoId == "" {
				continue
			}
			ids = append(ids, item.Id.VideoId)
			if opts.MaxResults > 0 && len(ids) >= opts.MaxResults {
				return ids[:opts.MaxResults], nil
			}
		}

		pageToken = page.NextPageToken
		if pageToken == "" {
			break
		}
	}

	return ids, nil
}
