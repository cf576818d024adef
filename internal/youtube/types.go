package youtube

import (
	"strconv"
	"time"

	"github.com/sahilphantom/youtube-research-tool/internal/model"
)

// Raw Data API response shapes. Statistics arrive as JSON strings and are
// parsed with a 0 default at this boundary, never deeper in the pipelines.

type apiThumbnail struct {
	URL string `json:"url"`
}

type apiThumbnails struct {
	Default apiThumbnail `json:"default"`
	Medium  apiThumbnail `json:"medium"`
	High    apiThumbnail `json:"high"`
}

type apiSnippet struct {
	PublishedAt  string        `json:"publishedAt"`
	ChannelID    string        `json:"channelId"`
	Title        string        `json:"title"`
	Description  string        `json:"description"`
	ChannelTitle string        `json:"channelTitle"`
	Tags         []string      `json:"tags"`
	Thumbnails   apiThumbnails `json:"thumbnails"`
	ResourceID   struct {
		VideoID string `json:"videoId"`
	} `json:"resourceId"`
}

type apiStatistics struct {
	ViewCount       string `json:"viewCount"`
	LikeCount       string `json:"likeCount"`
	SubscriberCount string `json:"subscriberCount"`
	VideoCount      string `json:"videoCount"`
}

type apiContentDetails struct {
	Duration         string `json:"duration"`
	RelatedPlaylists struct {
		Uploads string `json:"uploads"`
	} `json:"relatedPlaylists"`
}

type apiPageInfo struct {
	TotalResults   int64 `json:"totalResults"`
	ResultsPerPage int64 `json:"resultsPerPage"`
}

type videoItem struct {
	ID             string            `json:"id"`
	Snippet        apiSnippet        `json:"snippet"`
	Statistics     apiStatistics     `json:"statistics"`
	ContentDetails apiContentDetails `json:"contentDetails"`
}

type videoListResponse struct {
	Items    []videoItem `json:"items"`
	PageInfo apiPageInfo `json:"pageInfo"`
}

type channelListResponse struct {
	Items []videoItem `json:"items"`
}

type playlistItemsResponse struct {
	Items []struct {
		Snippet apiSnippet `json:"snippet"`
	} `json:"items"`
	NextPageToken string `json:"nextPageToken"`
}

type searchListResponse struct {
	Items []struct {
		ID struct {
			VideoID   string `json:"videoId"`
			ChannelID string `json:"channelId"`
		} `json:"id"`
		Snippet apiSnippet `json:"snippet"`
	} `json:"items"`
	NextPageToken string      `json:"nextPageToken"`
	PageInfo      apiPageInfo `json:"pageInfo"`
}

type errorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// parseCount parses a text numeric field, defaulting to 0 on absence or
// non-numeric content.
func parseCount(s string) uint64 {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func toVideo(item videoItem) model.Video {
	tags := item.Snippet.Tags
	if tags == nil {
		tags = []string{}
	}
	thumb := item.Snippet.Thumbnails.Medium.URL
	if thumb == "" {
		thumb = item.Snippet.Thumbnails.Default.URL
	}
	return model.Video{
		VideoID:      item.ID,
		Title:        item.Snippet.Title,
		ChannelID:    item.Snippet.ChannelID,
		ChannelTitle: item.Snippet.ChannelTitle,
		ViewCount:    parseCount(item.Statistics.ViewCount),
		LikeCount:    parseCount(item.Statistics.LikeCount),
		PublishedAt:  parseTime(item.Snippet.PublishedAt),
		Duration:     item.ContentDetails.Duration,
		DurationSec:  ParseDuration(item.ContentDetails.Duration),
		Tags:         tags,
		Description:  item.Snippet.Description,
		Thumbnail:    thumb,
	}
}
