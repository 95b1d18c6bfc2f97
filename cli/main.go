package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"ytscrape/categories"
	"ytscrape/config"
	"ytscrape/storage"
	"ytscrape/youtube"
)

func main() {
	command := "scrape"
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "scrape", "find-channel", "categories":
			command = args[0]
			args = args[1:]
		case "help", "-h", "--help":
			printUsage()
			return
		}
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Println("interrupt received, cancelling")
		cancel()
	}()

	switch command {
	case "scrape":
		cmdScrape(ctx, cfg, logger, args)
	case "find-channel":
		cmdFindChannel(ctx, cfg, logger, args)
	case "categories":
		cmdCategories(ctx, cfg, logger, args)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `ytscrape - YouTube channel metadata scraper

Usage:
  ytscrape [scrape] [flags] [channel]     Scrape a channel's video catalog
  ytscrape find-channel [flags] <query>   Search for a channel ID by name
  ytscrape categories [flags]             Print the video category table
  ytscrape help                           Show this help message

The channel may be a channel ID (UC...) or a legacy username; it can also
come from CHANNEL_ID or CHANNEL_USERNAME in the environment or .env file.
YOUTUBE_API_KEY is always required.

Examples:
  ytscrape UCxxxxxxxxxxxxxxxxxxxxxx
  ytscrape scrape --max 100 --after 2022-01-01T00:00:00Z somechannel
  ytscrape find-channel "channel name"
  ytscrape categories --region GB

For help on a specific command: ytscrape <command> -h
`)
}

func newClient(ctx context.Context, cfg *config.Config) (*youtube.Client, error) {
	return youtube.NewClient(ctx, cfg.APIKey, youtube.Options{
		RequestInterval: cfg.RequestInterval,
		RateCooldown:    cfg.RateCooldown,
		MaxRateRetries:  cfg.MaxRateRetries,
	})
}

func cmdScrape(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string) {
	fs := flag.NewFlagSet("scrape", flag.ExitOnError)
	maxVideos := fs.Int("max", cfg.MaxVideos, "Maximum videos to scrape (0 = all)")
	after := fs.String("after", cfg.PublishedAfter, "Only videos published after this date (RFC3339)")
	before := fs.String("before", cfg.PublishedBefore, "Only videos published before this date (RFC3339)")
	bufferDays := fs.Int("buffer-days", cfg.BufferDays, "Days to widen the date window on both sides")
	resultDir := fs.String("dir", cfg.ResultDir, "Directory for result files")
	sqlitePath := fs.String("sqlite", cfg.SQLitePath, "SQLite archive path (empty = disabled)")
	region := fs.String("region", cfg.RegionCode, "Region code for category names")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytscrape scrape [flags] [channel]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	channel := cfg.Channel
	if fs.NArg() > 0 {
		channel = fs.Arg(0)
	}
	if channel == "" {
		logger.Fatal("scrape: channel required (set CHANNEL_ID or CHANNEL_USERNAME, or pass it as an argument)")
	}

	client, err := newClient(ctx, cfg)
	if err != nil {
		logger.Fatalf("scrape: %v", err)
	}

	table := categories.New(*region)
	if err := table.Refresh(ctx, client); err != nil {
		logger.Printf("categories: refresh failed, using built-in table: %v", err)
	}

	scraper := youtube.NewScraper(client, logger)
	result, err := scraper.Scrape(ctx, channel, youtube.ScrapeOptions{
		MaxVideos:       *maxVideos,
		PublishedAfter:  *after,
		PublishedBefore: *before,
		BufferDays:      *bufferDays,
	})
	if err != nil {
		logger.Fatalf("scrape: %v", err)
	}

	if len(result.Videos) == 0 {
		fmt.Println("No videos found")
		return
	}
	for _, be := range result.Failed {
		logger.Printf("scrape: warning: %v", be)
	}

	channelName := result.Videos[0].ChannelTitle
	if channelName == "" {
		channelName = result.Channel.Title
	}
	dateRange := storage.DateRangeLabel(*after, *before)

	writer := storage.NewWriter(*resultDir, table.Name)
	csvPath, err := writer.SaveCSV(result.Videos, channelName, dateRange)
	if err != nil {
		logger.Fatalf("save csv: %v", err)
	}
	fmt.Printf("Data saved to %s\n", csvPath)

	jsonPath, err := writer.SaveJSON(result.Videos, channelName, dateRange)
	if err != nil {
		logger.Fatalf("save json: %v", err)
	}
	fmt.Printf("Data saved to %s\n", jsonPath)

	if *sqlitePath != "" {
		archive(ctx, logger, *sqlitePath, result, table)
	}

	fmt.Println()
	table.WriteStats(os.Stdout, result.Videos)
	printSummary(result)
}

func archive(ctx context.Context, logger *log.Logger, path string, result *youtube.ScrapeResult, table *categories.Table) {
	store, err := storage.OpenSQLite(path)
	if err != nil {
		logger.Printf("sqlite: %v", err)
		return
	}
	defer store.Close()

	if err := store.SaveVideos(ctx, result.Channel.ID, result.Videos, table.Name); err != nil {
		logger.Printf("sqlite: %v", err)
		return
	}
	if n, err := store.CountVideos(ctx, result.Channel.ID); err == nil {
		fmt.Printf("Archived to %s (%d videos for channel)\n", path, n)
	}
}

func printSummary(result *youtube.ScrapeResult) {
	var views, likes, comments uint64
	for _, v := range result.Videos {
		views += v.ViewCount
		likes += v.LikeCount
		comments += v.CommentCount
	}

	fmt.Println("\nScraping completed!")
	fmt.Printf("Total videos: %d\n", len(result.Videos))
	fmt.Printf("Total views: %d\n", views)
	fmt.Printf("Total likes: %d\n", likes)
	fmt.Printf("Total comments: %d\n", comments)
	if !result.Complete() {
		fmt.Printf("Warning: %d metadata batches failed; results are partial\n", len(result.Failed))
	}
}

func cmdFindChannel(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string) {
	fs := flag.NewFlagSet("find-channel", flag.ExitOnError)
	maxResults := fs.Int("max", 10, "Maximum search results")
	resultDir := fs.String("dir", cfg.ResultDir, "Directory for the results file")
	noSave := fs.Bool("no-save", false, "Print results without writing a file")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytscrape find-channel [flags] <query>\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	if fs.NArg() < 1 {
		fs.Usage()
		os.Exit(1)
	}
	query := fs.Arg(0)

	client, err := newClient(ctx, cfg)
	if err != nil {
		logger.Fatalf("find-channel: %v", err)
	}

	results, err := client.SearchChannels(ctx, query, *maxResults)
	if err != nil {
		logger.Fatalf("find-channel: %v", err)
	}
	if len(results) == 0 {
		fmt.Printf("No channels found for %q\n", query)
		return
	}

	fmt.Printf("Search results for %q:\n", query)
	fmt.Println("==================================================")
	for _, r := range results {
		fmt.Printf("%d. Title: %s\n", r.Rank, r.Title)
		fmt.Printf("   Channel ID: %s\n", r.ChannelID)
		fmt.Printf("   Description: %s\n", r.Description)
		fmt.Printf("   URL: %s\n", r.URL)
		fmt.Println("------------------------------")
	}

	if !*noSave {
		writer := storage.NewWriter(*resultDir, nil)
		path, err := writer.SaveChannelSearch(query, results)
		if err != nil {
			logger.Fatalf("find-channel: %v", err)
		}
		fmt.Printf("\nResults saved to %s\n", path)
	}
}

func cmdCategories(ctx context.Context, cfg *config.Config, logger *log.Logger, args []string) {
	fs := flag.NewFlagSet("categories", flag.ExitOnError)
	region := fs.String("region", cfg.RegionCode, "Region code for the category table")
	offline := fs.Bool("offline", false, "Print the built-in table without querying the API")
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: ytscrape categories [flags]\n\nFlags:\n")
		fs.PrintDefaults()
	}
	fs.Parse(args)

	table := categories.New(*region)
	if !*offline {
		client, err := newClient(ctx, cfg)
		if err != nil {
			logger.Fatalf("categories: %v", err)
		}
		if err := table.Refresh(ctx, client); err != nil {
			logger.Printf("categories: refresh failed, using built-in table: %v", err)
		}
	}

	fmt.Printf("YouTube video categories (region: %s):\n", table.Region())
	fmt.Println("==================================================")
	for _, c := range table.All() {
		fmt.Printf("ID %3s: %s\n", c.ID, c.Name)
	}
}
