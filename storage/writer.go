package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"ytscrape/youtube"
)

// timestampLayout stamps export filenames.
const timestampLayout = "20060102_150405"

// csvHeader is the column order of the tabular export.
var csvHeader = []string{
	"video_id", "url", "title", "description", "channel_title",
	"published_at", "duration", "view_count", "like_count",
	"comment_count", "thumbnail_url", "tags", "category_id",
	"category_name", "language",
}

// CategoryLookup resolves a category ID to a display name for export rows.
type CategoryLookup func(categoryID string) string

// Writer exports video records under a results directory. Filenames are
// derived from the channel name, a date-range label, and a timestamp.
type Writer struct {
	// Dir is the results directory. Created on first write.
	Dir string
	// Categories resolves category names for export rows. Nil leaves
	// category_name empty.
	Categories CategoryLookup

	now func() time.Time
}

// NewWriter creates a writer targeting dir. An empty dir means "result".
func NewWriter(dir string, categories CategoryLookup) *Writer {
	if dir == "" {
		dir = "result"
	}
	return &Writer{Dir: dir, Categories: categories, now: time.Now}
}

// exportRecord is one row of the document export.
type exportRecord struct {
	VideoID      string   `json:"video_id"`
	URL          string   `json:"url"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ChannelTitle string   `json:"channel_title"`
	PublishedAt  string   `json:"published_at"`
	Duration     string   `json:"duration"`
	ViewCount    uint64   `json:"view_count"`
	LikeCount    uint64   `json:"like_count"`
	CommentCount uint64   `json:"comment_count"`
	ThumbnailURL string   `json:"thumbnail_url"`
	Tags         []string `json:"tags"`
	CategoryID   string   `json:"category_id"`
	CategoryName string   `json:"category_name"`
	Language     string   `json:"language"`
}

func (w *Writer) record(v youtube.Video) exportRecord {
	r := exportRecord{
		VideoID:      v.ID,
		URL:          v.URL,
		Title:        v.Title,
		Description:  v.Description,
		ChannelTitle: v.ChannelTitle,
		PublishedAt:  v.PublishedAt,
		Duration:     v.Duration,
		ViewCount:    v.ViewCount,
		LikeCount:    v.LikeCount,
		CommentCount: v.CommentCount,
		ThumbnailURL: v.ThumbnailURL,
		Tags:         v.Tags,
		CategoryID:   v.CategoryID,
		Language:     v.Language,
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	if w.Categories != nil {
		r.CategoryName = w.Categories(v.CategoryID)
	}
	return r
}

// SaveCSV writes the records as a delimited tabular file and returns the
// path written.
func (w *Writer) SaveCSV(videos []youtube.Video, channelName, dateRange string) (string, error) {
	if len(videos) == 0 {
		return "", &StorageError{Op: "csv", Err: ErrNoVideos}
	}

	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(csvHeader); err != nil {
		return "", &StorageError{Op: "csv", Err: err}
	}
	for _, v := range videos {
		r := w.record(v)
		row := []string{
			r.VideoID, r.URL, r.Title, r.Description, r.ChannelTitle,
			r.PublishedAt, r.Duration,
			formatUint(r.ViewCount), formatUint(r.LikeCount), formatUint(r.CommentCount),
			r.ThumbnailURL, strings.Join(r.Tags, ", "),
			r.CategoryID, r.CategoryName, r.Language,
		}
		if err := cw.Write(row); err != nil {
			return "", &StorageError{Op: "csv", Err: err}
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", &StorageError{Op: "csv", Err: err}
	}

	path := filepath.Join(w.Dir, w.fileName(channelName, dateRange, "csv"))
	if err := writeFileAtomic(path, buf.Bytes()); err != nil {
		return "", &StorageError{Op: "csv", Path: path, Err: err}
	}
	return path, nil
}

// SaveJSON writes the records as an indented JSON array and returns the
// path written.
func (w *Writer) SaveJSON(videos []youtube.Video, channelName, dateRange string) (string, error) {
	if len(videos) == 0 {
		return "", &StorageError{Op: "json", Err: ErrNoVideos}
	}

	records := make([]exportRecord, 0, len(videos))
	for _, v := range videos {
		records = append(records, w.record(v))
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return "", &StorageError{Op: "json", Err: err}
	}

	path := filepath.Join(w.Dir, w.fileName(channelName, dateRange, "json"))
	if err := writeFileAtomic(path, data); err != nil {
		return "", &StorageError{Op: "json", Path: path, Err: err}
	}
	return path, nil
}

// channelSearchExport is the envelope written by SaveChannelSearch.
type channelSearchExport struct {
	RunID        string                        `json:"run_id"`
	SearchTerm   string                        `json:"search_term"`
	Timestamp    string                        `json:"timestamp"`
	TotalResults int                           `json:"total_results"`
	Results      []youtube.ChannelSearchResult `json:"results"`
}

// SaveChannelSearch writes channel search results as a JSON document and
// returns the path written.
func (w *Writer) SaveChannelSearch(query string, results []youtube.ChannelSearchResult) (string, error) {
	stamp := w.now().Format(timestampLayout)
	export := channelSearchExport{
		RunID:        uuid.New().String(),
		SearchTerm:   query,
		Timestamp:    stamp,
		TotalResults: len(results),
		Results:      results,
	}
	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return "", &StorageError{Op: "search", Err: err}
	}

	name := "channel_search_" + CleanName(query) + "_" + stamp + ".json"
	path := filepath.Join(w.Dir, name)
	if err := writeFileAtomic(path, data); err != nil {
		return "", &StorageError{Op: "search", Path: path, Err: err}
	}
	return path, nil
}

// fileName derives an export filename from channel name and date range.
// Missing components fall back to a generic stamped name.
func (w *Writer) fileName(channelName, dateRange, ext string) string {
	stamp := w.now().Format(timestampLayout)
	if channelName == "" || dateRange == "" {
		return "youtube_videos_" + stamp + "." + ext
	}
	return CleanName(channelName) + "_" + dateRange + "_" + stamp + "." + ext
}

// CleanName makes a channel name or query safe for filenames.
func CleanName(name string) string {
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "@", "")
	name = strings.ReplaceAll(name, "/", "_")
	return name
}

// DateRangeLabel derives the filename label for a publish-date window:
// "startYear-endYear", a single year when both bounds share one, and
// "all_dates" when either bound is missing.
func DateRangeLabel(publishedAfter, publishedBefore string) string {
	if len(publishedAfter) < 4 || len(publishedBefore) < 4 {
		return "all_dates"
	}
	start, end := publishedAfter[:4], publishedBefore[:4]
	if start == end {
		return start
	}
	return start + "-" + end
}

func formatUint(n uint64) string {
	return strconv.FormatUint(n, 10)
}
