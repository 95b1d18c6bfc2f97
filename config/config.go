// Package config manages application configuration.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration for channel scraping runs.
type Config struct {
	// APIKey is the YouTube Data API v3 key. Required.
	APIKey string `json:"api_key"`
	// Channel is the channel ID or legacy username to scrape.
	// Required for scrape runs.
	Channel string `json:"channel"`

	// MaxVideos limits how many videos to scrape (0 = all).
	MaxVideos int `json:"max_videos"`
	// PublishedAfter filters for videos published at or after this
	// RFC 3339 timestamp.
	PublishedAfter string `json:"published_after"`
	// PublishedBefore filters for videos published at or before this
	// RFC 3339 timestamp.
	PublishedBefore string `json:"published_before"`
	// BufferDays widens the date window symmetrically by this many days.
	BufferDays int `json:"buffer_days"`

	// RegionCode selects the category table region.
	RegionCode string `json:"region_code"`
	// ResultDir is where export files are written.
	ResultDir string `json:"result_dir"`
	// SQLitePath, when set, enables the SQLite archive.
	SQLitePath string `json:"sqlite_path"`

	// RequestInterval is the minimum spacing between API calls.
	RequestInterval time.Duration `json:"request_interval"`
	// RateCooldown is the wait after a quota or rate limit response.
	RateCooldown time.Duration `json:"rate_cooldown"`
	// MaxRateRetries bounds rate limit retries per call (0 = unbounded).
	MaxRateRetries int `json:"max_rate_retries"`
}

// DefaultConfig returns configuration with safe defaults.
func DefaultConfig() *Config {
	return &Config{
		RegionCode:      "US",
		ResultDir:       "result",
		RequestInterval: 100 * time.Millisecond,
		RateCooldown:    60 * time.Second,
		MaxRateRetries:  0,
	}
}

// Load loads configuration from a .env file, an optional config file,
// and environment variables. Priority: env vars > config file > defaults.
func Load() (*Config, error) {
	// A missing .env is fine; variables may be set in the environment.
	_ = godotenv.Load()

	cfg := DefaultConfig()

	if err := cfg.loadFromFile(); err != nil {
		// Config file is optional
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile attempts to load config from ytscrape.json in the current
// directory or the user config directory.
func (c *Config) loadFromFile() error {
	paths := []string{
		"ytscrape.json",
		filepath.Join(os.Getenv("HOME"), ".config", "ytscrape", "ytscrape.json"),
	}

	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return err
		}

		if err := json.Unmarshal(data, c); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		return nil
	}

	return os.ErrNotExist
}

// loadFromEnv overrides config with environment variables.
func (c *Config) loadFromEnv() {
	if v := os.Getenv("YOUTUBE_API_KEY"); v != "" {
		c.APIKey = v
	}
	if v := os.Getenv("CHANNEL_ID"); v != "" {
		c.Channel = v
	} else if v := os.Getenv("CHANNEL_USERNAME"); v != "" {
		c.Channel = v
	}
	if v := os.Getenv("MAX_VIDEOS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxVideos = n
		}
	}
	if v := os.Getenv("PUBLISHED_AFTER"); v != "" {
		c.PublishedAfter = v
	}
	if v := os.Getenv("PUBLISHED_BEFORE"); v != "" {
		c.PublishedBefore = v
	}
	if v := os.Getenv("BUFFER_DAYS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.BufferDays = n
		}
	}
	if v := os.Getenv("REGION_CODE"); v != "" {
		c.RegionCode = v
	}
	if v := os.Getenv("YTSCRAPE_RESULT_DIR"); v != "" {
		c.ResultDir = v
	}
	if v := os.Getenv("YTSCRAPE_SQLITE_PATH"); v != "" {
		c.SQLitePath = v
	}
	if v := os.Getenv("YTSCRAPE_REQUEST_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RequestInterval = d
		}
	}
	if v := os.Getenv("YTSCRAPE_RATE_COOLDOWN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.RateCooldown = d
		}
	}
	if v := os.Getenv("YTSCRAPE_MAX_RATE_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRateRetries = n
		}
	}
}

// Validate checks that configuration values are valid and consistent.
// The API key is required; the channel identifier is checked by the
// commands that need one.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("config: YOUTUBE_API_KEY is required")
	}
	if c.MaxVideos < 0 {
		return errors.New("config: max_videos must be non-negative")
	}
	if c.BufferDays < 0 {
		return errors.New("config: buffer_days must be non-negative")
	}
	if c.RequestInterval <= 0 {
		return errors.New("config: request_interval must be positive")
	}
	if c.RateCooldown <= 0 {
		return errors.New("config: rate_cooldown must be positive")
	}
	if c.MaxRateRetries < 0 {
		return errors.New("config: max_rate_retries must be non-negative")
	}
	return nil
}
