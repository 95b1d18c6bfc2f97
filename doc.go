// Package ytscrape provides a library for bulk retrieval of YouTube
// channel video metadata through the Data API v3.
//
// # Overview
//
// ytscrape walks a channel's video listing newest-first, collects every
// video ID (optionally bounded by a count cap and a publish-date
// window), then fetches full metadata records in batches of 50. All
// requests are paced and quota failures are retried with a cooldown.
//
// # Quick Start
//
// Scrape a channel:
//
//	ctx := context.Background()
//	client, err := youtube.NewClient(ctx, apiKey, youtube.Options{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	scraper := youtube.NewScraper(client, nil)
//	result, err := scraper.Scrape(ctx, "UCxxxxxxxxxxxxxxxxxxxxxx", youtube.ScrapeOptions{})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, v := range result.Videos {
//		fmt.Println(v.Title, v.ViewCount)
//	}
//
// Export the results:
//
//	writer := storage.NewWriter("result", table.Name)
//	path, err := writer.SaveCSV(result.Videos, channelName, "all_dates")
//
// # Configuration
//
// The CLI loads settings from multiple sources, highest priority first:
//
//  1. Environment variables (including a .env file)
//  2. Config file (ytscrape.json or ~/.config/ytscrape/ytscrape.json)
//  3. Default values
//
// Environment variables:
//
//   - YOUTUBE_API_KEY: Data API v3 key (required)
//   - CHANNEL_ID / CHANNEL_USERNAME: channel to scrape
//   - MAX_VIDEOS: cap on videos scraped (0 = all)
//   - PUBLISHED_AFTER / PUBLISHED_BEFORE: RFC 3339 date window
//   - BUFFER_DAYS: days to widen the window on both sides
//   - REGION_CODE: region for category names (default US)
//   - YTSCRAPE_RESULT_DIR: export directory (default result)
//   - YTSCRAPE_SQLITE_PATH: optional SQLite archive
//   - YTSCRAPE_REQUEST_INTERVAL: minimum spacing between API calls
//   - YTSCRAPE_RATE_COOLDOWN: wait after a quota response
//   - YTSCRAPE_MAX_RATE_RETRIES: rate limit retry bound (0 = unbounded)
package ytscrape
