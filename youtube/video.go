package youtube

import "google.golang.org/api/youtube/v3"

// Video is one normalized video metadata record.
type Video struct {
	// ID is the YouTube video ID (e.g., "dQw4w9WgXcQ").
	ID string `json:"video_id"`
	// URL is the canonical watch URL derived from ID.
	URL string `json:"url"`
	// Title is the video title.
	Title string `json:"title"`
	// Description is the full video description.
	Description string `json:"description"`
	// ChannelTitle is the display name of the publishing channel.
	ChannelTitle string `json:"channel_title"`
	// PublishedAt is the upstream publish timestamp, ISO 8601, unparsed.
	PublishedAt string `json:"published_at"`
	// Duration is the video length in "H:MM:SS" or "M:SS" clock form.
	Duration string `json:"duration"`
	// ViewCount is the total number of views.
	ViewCount uint64 `json:"view_count"`
	// LikeCount is the total number of likes.
	LikeCount uint64 `json:"like_count"`
	// CommentCount is the total number of comments.
	CommentCount uint64 `json:"comment_count"`
	// ThumbnailURL is the highest quality thumbnail available.
	ThumbnailURL string `json:"thumbnail_url"`
	// Tags are the video's tags in upstream order. May be empty.
	Tags []string `json:"tags"`
	// CategoryID is the video's category ID. May be empty.
	CategoryID string `json:"category_id"`
	// Language is the video's default language code. May be empty.
	Language string `json:"language"`
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// ChannelURL returns the canonical URL for a channel ID.
func ChannelURL(channelID string) string {
	return "https://www.youtube.com/channel/" + channelID
}

// newVideo maps one videos.list item to a Video record. Absent statistics
// coerce to zero; the thumbnail is the highest quality available.
func newVideo(item *youtube.Video) Video {
	v := Video{
		ID:  item.Id,
		URL: WatchURL(item.Id),
	}

	if sn := item.Snippet; sn != nil {
		v.Title = sn.Title
		v.Description = sn.Description
		v.ChannelTitle = sn.ChannelTitle
		v.PublishedAt = sn.PublishedAt
		v.ThumbnailURL = bestThumbnail(sn.Thumbnails)
		v.Tags = sn.Tags
		v.CategoryID = sn.CategoryId
		v.Language = sn.DefaultLanguage
	}
	if st := item.Statistics; st != nil {
		v.ViewCount = st.ViewCount
		v.LikeCount = st.LikeCount
		v.CommentCount = st.CommentCount
	}

	var raw string
	if cd := item.ContentDetails; cd != nil {
		raw = cd.Duration
	}
	v.Duration = FormatDuration(raw)

	return v
}

// bestThumbnail picks the thumbnail URL by quality preference,
// highest first.
func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*youtube.Thumbnail{t.Maxres, t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}
