package youtube

import (
	"context"
	"log"

	"google.golang.org/api/youtube/v3"
)

// batchSize is the maximum number of IDs one videos.list call accepts.
const batchSize = 50

// FetchResult carries the records assembled from a metadata fetch plus
// the batch ranges that could not be fetched. A result is complete when
// Failed is empty; a partial result still holds every record that was
// successfully retrieved.
type FetchResult struct {
	// Videos are the fetched records in upstream response order.
	Videos []Video
	// Failed lists the batches skipped after non-rate-limit failures.
	Failed []*BatchError
}

// Complete reports whether every batch was fetched.
func (r *FetchResult) Complete() bool { return len(r.Failed) == 0 }

// FetchVideos retrieves full metadata for ids in batches of up to 50,
// requesting snippet, statistics, and content details for each group.
// Record order follows the upstream response order within each batch,
// which is not guaranteed to match the input order. A batch that fails
// for a reason other than rate limiting is skipped and recorded in the
// result; processing continues with the next batch.
func (c *Client) FetchVideos(ctx context.Context, ids []string) (*FetchResult, error) {
	result := &FetchResult{}

	for start := 0; start < len(ids); start += batchSize {
		end := min(start+batchSize, len(ids))
		batch := ids[start:end]

		var items []*youtube.Video
		err := c.pacer.Call(ctx, func() error {
			resp, err := c.service.Videos.List([]string{"snippet", "statistics", "contentDetails"}).
				Id(batch...).
				Context(ctx).
				Do()
			if err != nil {
				return err
			}
			items = resp.Items
			return nil
		})
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			be := &BatchError{Start: start, End: end, Err: err}
			log.Printf("youtube: skipping failed batch: %v", be)
			result.Failed = append(result.Failed, be)
			continue
		}

		for _, item := range items {
			result.Videos = append(result.Videos, newVideo(item))
		}
	}

	return result, nil
}
