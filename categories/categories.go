// Package categories maps YouTube video category IDs to display names
// and computes per-category statistics over scraped records.
package categories

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"

	"ytscrape/youtube"
)

// DefaultRegion is the region whose category assignment ships built in.
const DefaultRegion = "US"

// defaultNames is the built-in US category assignment, used until a
// refresh succeeds and as the fallback when one fails.
var defaultNames = map[string]string{
	"1":  "Film & Animation",
	"2":  "Autos & Vehicles",
	"10": "Music",
	"15": "Pets & Animals",
	"17": "Sports",
	"18": "Short Movies",
	"19": "Travel & Events",
	"20": "Gaming",
	"21": "Videoblogging",
	"22": "People & Blogs",
	"23": "Comedy",
	"24": "Entertainment",
	"25": "News & Politics",
	"26": "Howto & Style",
	"27": "Education",
	"28": "Science & Technology",
	"29": "Nonprofits & Activism",
	"30": "Movies",
	"31": "Anime/Animation",
	"32": "Action/Adventure",
	"33": "Classics",
	"34": "Comedy",
	"35": "Documentary",
	"36": "Drama",
	"37": "Family",
	"38": "Foreign",
	"39": "Horror",
	"40": "Sci-Fi/Fantasy",
	"41": "Thriller",
	"42": "Shorts",
	"43": "Shows",
	"44": "Trailers",
}

// Source fetches a region's category assignment. *youtube.Client
// satisfies this.
type Source interface {
	VideoCategories(ctx context.Context, regionCode string) (map[string]string, error)
}

// Table resolves category IDs to display names for one region.
type Table struct {
	region string
	names  map[string]string
}

// New returns a Table for region seeded with the built-in assignment.
// An empty region means DefaultRegion.
func New(region string) *Table {
	if region == "" {
		region = DefaultRegion
	}
	names := make(map[string]string, len(defaultNames))
	for id, name := range defaultNames {
		names[id] = name
	}
	return &Table{region: region, names: names}
}

// Region returns the table's region code.
func (t *Table) Region() string { return t.region }

// Refresh replaces the table with the upstream assignment for the
// table's region. On failure or an empty response the current
// assignment stays in place and the error is returned so the caller
// can log it.
func (t *Table) Refresh(ctx context.Context, src Source) error {
	names, err := src.VideoCategories(ctx, t.region)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("categories: empty assignment for region %s", t.region)
	}
	t.names = names
	return nil
}

// Name resolves a category ID to its display name. Non-numeric IDs and
// IDs absent from the table resolve to marker strings rather than
// erroring, so export rows always have a value.
func (t *Table) Name(id string) string {
	if _, err := strconv.Atoi(id); err != nil {
		return "Invalid ID: " + id
	}
	if name, ok := t.names[id]; ok {
		return name
	}
	return "Unknown (ID: " + id + ")"
}

// All returns the table's ID to name assignment, sorted by numeric ID.
func (t *Table) All() []Category {
	out := make([]Category, 0, len(t.names))
	for id, name := range t.names {
		out = append(out, Category{ID: id, Name: name})
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i].ID)
		b, _ := strconv.Atoi(out[j].ID)
		return a < b
	})
	return out
}

// Category is one ID to name pairing.
type Category struct {
	ID   string
	Name string
}

// Stats counts videos per resolved category name.
func (t *Table) Stats(videos []youtube.Video) map[string]int {
	stats := make(map[string]int)
	for _, v := range videos {
		stats[t.Name(v.CategoryID)]++
	}
	return stats
}

// WriteStats prints per-category counts and percentages to w, most
// common category first, with an aggregate total line.
func (t *Table) WriteStats(w io.Writer, videos []youtube.Video) {
	stats := t.Stats(videos)
	if len(stats) == 0 {
		fmt.Fprintln(w, "No category data available")
		return
	}

	type entry struct {
		name  string
		count int
	}
	entries := make([]entry, 0, len(stats))
	for name, count := range stats {
		entries = append(entries, entry{name, count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return entries[i].name < entries[j].name
	})

	total := len(videos)
	fmt.Fprintln(w, "Video category statistics:")
	fmt.Fprintln(w, "========================================")
	for _, e := range entries {
		pct := float64(e.count) / float64(total) * 100
		fmt.Fprintf(w, "%-25s: %3d videos (%5.1f%%)\n", e.name, e.count, pct)
	}
	fmt.Fprintf(w, "%-25s: %3d videos\n", "Total", total)
}
