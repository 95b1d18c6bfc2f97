package youtube

import (
	"context"
	"log"
	"time"
)

// Scraper runs the full channel scrape: resolve the channel, list its
// video IDs, fetch metadata in batches.
type Scraper struct {
	client *Client
	log    *log.Logger
}

// NewScraper creates a scraper around an API client. A nil logger falls
// back to the standard logger.
func NewScraper(client *Client, logger *log.Logger) *Scraper {
	if logger == nil {
		logger = log.Default()
	}
	return &Scraper{client: client, log: logger}
}

// ScrapeOptions bounds a scrape run.
type ScrapeOptions struct {
	// MaxVideos caps the number of videos scraped. 0 means all.
	MaxVideos int
	// PublishedAfter and PublishedBefore bound the publish-date window,
	// RFC 3339. Empty means unbounded on that side.
	PublishedAfter  string
	PublishedBefore string
	// BufferDays widens the date window symmetrically: after moves
	// back, before moves forward, each by this many days.
	BufferDays int
}

// ScrapeResult is the outcome of a channel scrape.
type ScrapeResult struct {
	// Channel is the resolved channel.
	Channel *ChannelRef
	// Videos are the fetched records, in batch-response order.
	Videos []Video
	// Failed lists metadata batches that could not be fetched.
	Failed []*BatchError
}

// Complete reports whether every metadata batch was fetched.
func (r *ScrapeResult) Complete() bool { return len(r.Failed) == 0 }

// Scrape collects metadata for the channel's videos, newest first.
// Resolution and listing failures abort the run; metadata batch failures
// degrade the result per FetchVideos. An empty listing returns an empty
// result without fetching.
func (s *Scraper) Scrape(ctx context.Context, identifier string, opts ScrapeOptions) (*ScrapeResult, error) {
	after, before := opts.PublishedAfter, opts.PublishedBefore
	if opts.BufferDays > 0 {
		after = s.bufferDate(after, -opts.BufferDays)
		before = s.bufferDate(before, opts.BufferDays)
	}

	ref, err := s.client.ResolveChannel(ctx, identifier)
	if err != nil {
		return nil, err
	}
	s.log.Printf("scrape: resolved %s to channel %s", identifier, ref.ID)

	ids, err := s.client.ListVideoIDs(ctx, ref.ID, ListOptions{
		MaxResults:      opts.MaxVideos,
		PublishedAfter:  after,
		PublishedBefore: before,
	})
	if err != nil {
		return nil, err
	}
	s.log.Printf("scrape: found %d videos", len(ids))

	if len(ids) == 0 {
		return &ScrapeResult{Channel: ref}, nil
	}

	fetched, err := s.client.FetchVideos(ctx, ids)
	if err != nil {
		return nil, err
	}
	if !fetched.Complete() {
		s.log.Printf("scrape: %d of %d videos fetched, %d batches failed",
			len(fetched.Videos), len(ids), len(fetched.Failed))
	}

	return &ScrapeResult{Channel: ref, Videos: fetched.Videos, Failed: fetched.Failed}, nil
}

// bufferDate shifts an RFC 3339 timestamp by the given number of days.
// An unparsable value is returned unchanged with a warning, leaving that
// side of the window unbuffered rather than failing the run.
func (s *Scraper) bufferDate(value string, days int) string {
	if value == "" || days == 0 {
		return value
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		s.log.Printf("scrape: cannot parse date %q, buffer not applied", value)
		return value
	}
	return t.AddDate(0, 0, days).UTC().Format("2006-01-02T15:04:05Z")
}
