package youtube

import "context"

// descriptionPreviewLen is how much of a channel description survives
// into search results.
const descriptionPreviewLen = 100

// ChannelSearchResult is one hit from a channel search, best match first.
type ChannelSearchResult struct {
	// Rank is the 1-based position in the search results.
	Rank int `json:"rank"`
	// Title is the channel's display name.
	Title string `json:"title"`
	// ChannelID is the canonical channel ID.
	ChannelID string `json:"channel_id"`
	// Description is the channel description, truncated for display.
	Description string `json:"description"`
	// URL is the canonical channel URL.
	URL string `json:"url"`
}

// SearchChannels looks up channels matching query. maxResults defaults
// to 10 when non-positive.
func (c *Client) SearchChannels(ctx context.Context, query string, maxResults int) ([]ChannelSearchResult, error) {
	if maxResults <= 0 {
		maxResults = 10
	}

	var results []ChannelSearchResult
	err := c.pacer.Call(ctx, func() error {
		resp, err := c.service.Search.List([]string{"snippet"}).
			Q(query).
			Type("channel").
			MaxResults(int64(maxResults)).
			Context(ctx).
			Do()
		if err != nil {
			return err
		}

		results = results[:0]
		for i, item := range resp.Items {
			r := ChannelSearchResult{Rank: i + 1}
			if item.Snippet != nil {
				r.Title = item.Snippet.Title
				r.ChannelID = item.Snippet.ChannelId
				r.Description = truncate(item.Snippet.Description, descriptionPreviewLen)
			}
			r.URL = ChannelURL(r.ChannelID)
			results = append(results, r)
		}
		return nil
	})
	if err != nil {
		return nil, &APIError{Op: "search", Target: query, Err: err}
	}
	return results, nil
}

// truncate shortens s to max bytes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
