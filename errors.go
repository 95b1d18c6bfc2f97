package ytscrape

import (
	"ytscrape/storage"
	"ytscrape/youtube"
)

// Error handling types exported for library users.
//
// All error types support the standard error handling patterns:
//
// Using errors.Is() for sentinel errors:
//
//	if errors.Is(err, ytscrape.ErrChannelNotFound) {
//		fmt.Println("Channel not found")
//	}
//
// Using errors.As() for wrapped errors:
//
//	var apiErr *ytscrape.APIError
//	if errors.As(err, &apiErr) {
//		fmt.Printf("%s failed for %s: %v\n", apiErr.Op, apiErr.Target, apiErr.Err)
//	}

// Type aliases for convenient error handling.
type (
	// APIError wraps upstream API failures with operation context.
	APIError = youtube.APIError
	// BatchError records a metadata batch that could not be fetched.
	BatchError = youtube.BatchError
	// StorageError wraps errors during export operations.
	StorageError = storage.StorageError
)

// Sentinel errors exported from sub-packages.
var (
	// ErrChannelNotFound indicates the channel does not exist upstream.
	ErrChannelNotFound = youtube.ErrChannelNotFound
	// ErrNoUploadsPlaylist indicates the channel has no uploads playlist.
	ErrNoUploadsPlaylist = youtube.ErrNoUploadsPlaylist
	// ErrRateLimited indicates the API reported quota or rate exhaustion.
	ErrRateLimited = youtube.ErrRateLimited
	// ErrNoVideos indicates an export was requested for an empty record set.
	ErrNoVideos = storage.ErrNoVideos
)
