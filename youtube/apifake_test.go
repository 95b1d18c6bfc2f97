package youtube

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"google.golang.org/api/option"
)

// fakeAPI is an in-process stand-in for the Data API. Handlers are keyed
// by endpoint name ("channels", "search", "videos", "videoCategories")
// and receive the request query; they return a status code and a JSON
// body. Calls are recorded per endpoint for assertions.
type fakeAPI struct {
	mu       sync.Mutex
	calls    map[string][]url.Values
	handlers map[string]func(q url.Values) (int, string)
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		calls:    make(map[string][]url.Values),
		handlers: make(map[string]func(q url.Values) (int, string)),
	}
}

func (f *fakeAPI) handle(endpoint string, fn func(q url.Values) (int, string)) {
	f.handlers[endpoint] = fn
}

func (f *fakeAPI) callCount(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls[endpoint])
}

func (f *fakeAPI) call(endpoint string, n int) url.Values {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[endpoint][n]
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	parts := strings.Split(r.URL.Path, "/")
	endpoint := parts[len(parts)-1]
	q := r.URL.Query()

	f.mu.Lock()
	f.calls[endpoint] = append(f.calls[endpoint], q)
	handler := f.handlers[endpoint]
	f.mu.Unlock()

	if handler == nil {
		http.Error(w, `{"error":{"code":404,"message":"no handler"}}`, http.StatusNotFound)
		return
	}

	status, body := handler(q)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// newTestClient wires a Client against a fake API server with fast pacing.
func newTestClient(t *testing.T, api *fakeAPI) *Client {
	t.Helper()

	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), "test-api-key", Options{
		RequestInterval: time.Millisecond,
		RateCooldown:    time.Millisecond,
		MaxRateRetries:  1,
		ClientOptions:   []option.ClientOption{option.WithEndpoint(srv.URL)},
	})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}
	return client
}

// apiErrorBody renders a Data API error response.
func apiErrorBody(code int, reason string) string {
	return `{"error":{"code":` + jsonInt(code) + `,"message":"` + reason + `","errors":[{"reason":"` + reason + `"}]}}`
}

func jsonInt(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

// videoItem builds one videos.list response item.
type videoItem struct {
	id        string
	title     string
	channel   string
	published string
	duration  string
	views     string
	likes     string
	comments  string
	tags      []string
	category  string
	language  string
	thumbs    map[string]string // quality -> url
	noStats   bool
}

func videosResponse(items ...videoItem) string {
	type m = map[string]any
	resp := m{"items": []m{}}
	list := resp["items"].([]m)
	for _, it := range items {
		thumbs := m{}
		for quality, u := range it.thumbs {
			thumbs[quality] = m{"url": u}
		}
		item := m{
			"id": it.id,
			"snippet": m{
				"title":           it.title,
				"description":     "description of " + it.id,
				"channelTitle":    it.channel,
				"publishedAt":     it.published,
				"thumbnails":      thumbs,
				"tags":            it.tags,
				"categoryId":      it.category,
				"defaultLanguage": it.language,
			},
			"contentDetails": m{"duration": it.duration},
		}
		if !it.noStats {
			item["statistics"] = m{
				"viewCount":    it.views,
				"likeCount":    it.likes,
				"commentCount": it.comments,
			}
		}
		list = append(list, item)
	}
	resp["items"] = list
	data, _ := json.Marshal(resp)
	return string(data)
}
