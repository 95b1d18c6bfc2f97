package youtube

import (
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"
)

// Sentinel errors for channel scraping operations.
var (
	// ErrChannelNotFound indicates the channel does not exist upstream.
	ErrChannelNotFound = errors.New("youtube: channel not found")
	// ErrNoUploadsPlaylist indicates the channel has no uploads playlist.
	ErrNoUploadsPlaylist = errors.New("youtube: uploads playlist not found")
	// ErrRateLimited indicates the API reported quota or rate exhaustion.
	ErrRateLimited = errors.New("youtube: rate limited")
)

// APIError wraps upstream API failures with context about what was
// being fetched. Use errors.As() to extract it:
//
//	var apiErr *youtube.APIError
//	if errors.As(err, &apiErr) {
//		fmt.Printf("%s failed for %s: %v\n", apiErr.Op, apiErr.Target, apiErr.Err)
//	}
type APIError struct {
	// Op is the operation that failed ("resolve", "list", "videos", "search", "categories").
	Op string
	// Target is the channel, query, or region the operation was acting on.
	Target string
	// Err is the underlying error.
	Err error
}

// Error returns a string representation of the API error.
func (e *APIError) Error() string {
	return fmt.Sprintf("youtube: %s %s: %v", e.Op, e.Target, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *APIError) Unwrap() error { return e.Err }

// BatchError records a metadata batch that could not be fetched.
// Start and End are the half-open index range of the input IDs the
// batch covered.
type BatchError struct {
	Start int
	End   int
	Err   error
}

// Error returns a string representation of the batch error.
func (e *BatchError) Error() string {
	return fmt.Sprintf("youtube: batch [%d:%d): %v", e.Start, e.End, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is() and errors.As().
func (e *BatchError) Unwrap() error { return e.Err }

// Reasons the Data API attaches to 403 responses when a key runs out
// of quota or requests come in too fast.
var rateLimitReasons = map[string]bool{
	"rateLimitExceeded":     true,
	"userRateLimitExceeded": true,
	"quotaExceeded":         true,
	"dailyLimitExceeded":    true,
}

// isRateLimited reports whether err is a quota or rate limit signal.
func isRateLimited(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrRateLimited) {
		return true
	}
	var gerr *googleapi.Error
	if !errors.As(err, &gerr) {
		return false
	}
	if gerr.Code == 429 {
		return true
	}
	if gerr.Code != 403 {
		return false
	}
	for _, item := range gerr.Errors {
		if rateLimitReasons[item.Reason] {
			return true
		}
	}
	return false
}
