package youtube

import (
	"context"
	"errors"
	"io"
	"log"
	"net/url"
	"testing"
)

func discardLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func TestBufferDate(t *testing.T) {
	s := NewScraper(nil, discardLogger())

	tests := []struct {
		name  string
		value string
		days  int
		want  string
	}{
		{"after moves back", "2022-01-01T00:00:00Z", -5, "2021-12-27T00:00:00Z"},
		{"before moves forward", "2022-12-31T23:59:59Z", 5, "2023-01-05T23:59:59Z"},
		{"across year boundary", "2023-01-02T10:30:00Z", -3, "2022-12-30T10:30:00Z"},
		{"zero days", "2022-01-01T00:00:00Z", 0, "2022-01-01T00:00:00Z"},
		{"empty value", "", -5, ""},
		{"unparsable left unchanged", "not-a-date", -5, "not-a-date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.bufferDate(tt.value, tt.days); got != tt.want {
				t.Errorf("bufferDate(%q, %d) = %q, want %q", tt.value, tt.days, got, tt.want)
			}
		})
	}
}

func TestScrapeEndToEnd(t *testing.T) {
	api := newFakeAPI()
	api.handle("channels", channelsHandler(testChannelID, nil))
	api.handle("search", searchPages(map[string]string{
		"":      `{"items":[{"id":{"videoId":"vid1"}},{"id":{"videoId":"vid2"}}],"nextPageToken":"page2"}`,
		"page2": `{"items":[{"id":{"videoId":"vid3"}}]}`,
	}))
	api.handle("videos", echoVideos)
	client := newTestClient(t, api)

	s := NewScraper(client, discardLogger())
	result, err := s.Scrape(context.Background(), testChannelID, ScrapeOptions{})
	if err != nil {
		t.Fatalf("Scrape failed: %v", err)
	}

	if len(result.Videos) != 3 {
		t.Fatalf("len(Videos) = %d, want 3", len(result.Videos))
	}
	if !result.Complete() {
		t.Error("Complete() = false, want true")
	}
	if result.Channel == nil || result.Channel.ID != testChannelID {
		t.Errorf("Channel = %+v, want resolved ref for %s", result.Channel, testChannelID)
	}

	// Records come back in batch-response order with derived fields set.
	for i, want := range []string{"vid1", "vid2", "vid3"} {
		v := result.Videos[i]
		if v.ID != want {
			t.Errorf("Videos[%d].ID = %q, want %q", i, v.ID, want)
		}
		if v.Duration != "1:30" {
			t.Errorf("Videos[%d].Duration = %q, want 1:30", i, v.Duration)
		}
		if v.URL != WatchURL(want) {
			t.Errorf("Videos[%d].URL = %q", i, v.URL)
		}
	}
}

func TestScrapeAppliesBufferedWindow(t *testing.T) {
	api := newFakeAPI()
	api.handle("channels", channelsHandler(testChannelID, nil))
	api.handle("search", searchPages(map[string]string{
		"": `{"items":[{"id":{"videoId":"vid1"}}]}`,
	}))
	api.handle("videos", echoVideos)
	client := newTestClient(t, api)

	s := NewScraper(client, discardLogger())
	_, err := s.Scrape(context.Background(), testChannelID, ScrapeOptions{
		PublishedAfter:  "2022-01-01T00:00:00Z",
		PublishedBefore: "2022-12-31T00:00:00Z",
		BufferDays:      5,
	})
	if err != nil {
		t.Fatalf("Scrape failed: %v", err)
	}

	q := api.call("search", 0)
	if got := q.Get("publishedAfter"); got != "2021-12-27T00:00:00Z" {
		t.Errorf("publishedAfter = %q, want 2021-12-27T00:00:00Z", got)
	}
	if got := q.Get("publishedBefore"); got != "2023-01-05T00:00:00Z" {
		t.Errorf("publishedBefore = %q, want 2023-01-05T00:00:00Z", got)
	}
}

func TestScrapeEmptyListing(t *testing.T) {
	api := newFakeAPI()
	api.handle("channels", channelsHandler(testChannelID, nil))
	api.handle("search", searchPages(map[string]string{
		"": `{"items":[]}`,
	}))
	client := newTestClient(t, api)

	s := NewScraper(client, discardLogger())
	result, err := s.Scrape(context.Background(), testChannelID, ScrapeOptions{})
	if err != nil {
		t.Fatalf("Scrape failed: %v", err)
	}

	if len(result.Videos) != 0 {
		t.Errorf("len(Videos) = %d, want 0", len(result.Videos))
	}
	if got := api.callCount("videos"); got != 0 {
		t.Errorf("videos calls = %d, want 0 (no fetch for an empty listing)", got)
	}
}

func TestScrapeResolveFailureIsFatal(t *testing.T) {
	api := newFakeAPI()
	api.handle("channels", channelsHandler(testChannelID, nil))
	client := newTestClient(t, api)

	s := NewScraper(client, discardLogger())
	_, err := s.Scrape(context.Background(), "nosuchchannel", ScrapeOptions{})
	if !errors.Is(err, ErrChannelNotFound) {
		t.Errorf("err = %v, want ErrChannelNotFound", err)
	}
	if got := api.callCount("search"); got != 0 {
		t.Errorf("search calls = %d, want 0 after failed resolution", got)
	}
}

func TestScrapeSearchFailureIsFatal(t *testing.T) {
	api := newFakeAPI()
	api.handle("channels", channelsHandler(testChannelID, nil))
	api.handle("search", func(q url.Values) (int, string) {
		return 500, apiErrorBody(500, "backendError")
	})
	client := newTestClient(t, api)

	s := NewScraper(client, discardLogger())
	_, err := s.Scrape(context.Background(), testChannelID, ScrapeOptions{})
	if err == nil {
		t.Fatal("expected listing failure to abort the run")
	}
	if got := api.callCount("videos"); got != 0 {
		t.Errorf("videos calls = %d, want 0 after failed listing", got)
	}
}
