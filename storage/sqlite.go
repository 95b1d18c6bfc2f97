package storage

import (
	"context"
	"database/sql"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"ytscrape/youtube"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS videos (
	video_id      TEXT PRIMARY KEY,
	url           TEXT NOT NULL,
	title         TEXT NOT NULL,
	description   TEXT,
	channel_id    TEXT NOT NULL,
	channel_title TEXT,
	published_at  TEXT,
	duration      TEXT,
	view_count    INTEGER NOT NULL DEFAULT 0,
	like_count    INTEGER NOT NULL DEFAULT 0,
	comment_count INTEGER NOT NULL DEFAULT 0,
	thumbnail_url TEXT,
	tags          TEXT,
	category_id   TEXT,
	category_name TEXT,
	language      TEXT,
	scraped_at    DATETIME NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_videos_channel ON videos (channel_id);
`

// SQLiteStore archives scraped records in a local SQLite database,
// keyed by video ID with upsert semantics so repeated runs refresh
// counts in place.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the archive database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, &StorageError{Op: "sqlite", Path: path, Err: err}
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, &StorageError{Op: "sqlite", Path: path, Err: err}
	}
	return &SQLiteStore{db: db}, nil
}

// SaveVideos upserts the records for one channel in a single transaction.
func (s *SQLiteStore) SaveVideos(ctx context.Context, channelID string, videos []youtube.Video, categories CategoryLookup) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &StorageError{Op: "sqlite", Err: err}
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO videos (
			video_id, url, title, description, channel_id, channel_title,
			published_at, duration, view_count, like_count, comment_count,
			thumbnail_url, tags, category_id, category_name, language, scraped_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(video_id) DO UPDATE SET
			title = excluded.title,
			description = excluded.description,
			channel_title = excluded.channel_title,
			published_at = excluded.published_at,
			duration = excluded.duration,
			view_count = excluded.view_count,
			like_count = excluded.like_count,
			comment_count = excluded.comment_count,
			thumbnail_url = excluded.thumbnail_url,
			tags = excluded.tags,
			category_id = excluded.category_id,
			category_name = excluded.category_name,
			language = excluded.language,
			scraped_at = excluded.scraped_at`)
	if err != nil {
		return &StorageError{Op: "sqlite", Err: err}
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, v := range videos {
		categoryName := ""
		if categories != nil {
			categoryName = categories(v.CategoryID)
		}
		tags := strings.Join(v.Tags, ", ")
		if _, err := stmt.ExecContext(ctx,
			v.ID, v.URL, v.Title, v.Description, channelID, v.ChannelTitle,
			v.PublishedAt, v.Duration, v.ViewCount, v.LikeCount, v.CommentCount,
			v.ThumbnailURL, tags, v.CategoryID, categoryName, v.Language, now,
		); err != nil {
			return &StorageError{Op: "sqlite", Err: err}
		}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Op: "sqlite", Err: err}
	}
	return nil
}

// CountVideos returns the number of archived records for a channel.
func (s *SQLiteStore) CountVideos(ctx context.Context, channelID string) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM videos WHERE channel_id = ?`, channelID).Scan(&n)
	if err != nil {
		return 0, &StorageError{Op: "sqlite", Err: err}
	}
	return n, nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
