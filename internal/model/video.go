package model

import "time"

// Video is the normalized record built from one YouTube video detail item.
// All numeric fields default to 0 and the tag list to empty when the
// upstream item omits them; instances are never mutated after construction.
type Video struct {
	VideoID      string    `json:"videoId"`
	Title        string    `json:"title"`
	ChannelID    string    `json:"channelId"`
	ChannelTitle string    `json:"channelTitle"`
	ViewCount    uint64    `json:"viewCount"`
	LikeCount    uint64    `json:"likeCount"`
	PublishedAt  time.Time `json:"uploadDate"`
	Duration     string    `json:"duration"`
	DurationSec  uint64    `json:"durationSec"`
	Tags         []string  `json:"tags"`
	Description  string    `json:"description"`
	Thumbnail    string    `json:"thumbnail,omitempty"`
}

// VideoSummary is the slim video shape used in channel analysis lists
// (top videos, outliers).
type VideoSummary struct {
	VideoID     string    `json:"videoId"`
	Title       string    `json:"title"`
	Views       uint64    `json:"views"`
	PublishedAt time.Time `json:"publishedAt"`
	Duration    string    `json:"duration"`
}

// VideoInfoRequest is the body of POST /api/video-info.
type VideoInfoRequest struct {
	URL    string `json:"url"`
	Format string `json:"format,omitempty"`
}
