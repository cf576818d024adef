package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sahilphantom/youtube-research-tool/internal/model"
)

const (
	// DefaultBaseURL is the Data API v3 root.
	DefaultBaseURL = "https://www.googleapis.com/youtube/v3"

	// MaxBatchSize is the per-call ID limit of the videos and channels
	// endpoints.
	MaxBatchSize = 50

	// MaxPageSize is the per-call item limit of listing endpoints.
	MaxPageSize = 50
)

var (
	// ErrNoResults signals an empty item list where exactly one item was
	// required (channel lookups, disambiguation).
	ErrNoResults = errors.New("youtube: no results")

	// ErrAPIKeyMissing signals that no API key was configured.
	ErrAPIKeyMissing = errors.New("youtube: API key not configured")
)

var (
	apiCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytresearch_youtube_api_calls_total",
			Help: "Total YouTube Data API calls, by endpoint.",
		},
		[]string{"endpoint"},
	)
	apiErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ytresearch_youtube_api_errors_total",
			Help: "Total failed YouTube Data API calls, by endpoint.",
		},
		[]string{"endpoint"},
	)
)

// Client is a thin HTTP client for the YouTube Data API v3. The API key is
// injected at construction time; no call reads the environment.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// ChannelInfo is the subset of a channel resource the pipelines need.
type ChannelInfo struct {
	ID                string
	Title             string
	Subscribers       uint64
	VideoCount        uint64
	UploadsPlaylistID string
}

// PlaylistPage is one page of an uploads listing.
type PlaylistPage struct {
	VideoIDs      []string
	NextPageToken string
}

// SearchParams are the upstream search call parameters. Date bounds must be
// RFC3339; empty fields are omitted from the call.
type SearchParams struct {
	Query           string
	Order           string
	VideoType       string
	PublishedAfter  string
	PublishedBefore string
	MaxResults      int
}

// SearchPage is one page of video search results, in upstream ranking order.
type SearchPage struct {
	VideoIDs       []string
	TotalResults   uint64
	ResultsPerPage uint64
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if c.apiKey == "" {
		return ErrAPIKeyMissing
	}
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("youtube %s: %w", endpoint, err)
	}

	apiCalls.WithLabelValues(endpoint).Inc()
	resp, err := c.http.Do(req)
	if err != nil {
		apiErrors.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("youtube %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		apiErrors.WithLabelValues(endpoint).Inc()
		var apiErr errorResponse
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("youtube %s: status %d: %s", endpoint, resp.StatusCode, apiErr.Error.Message)
		}
		return fmt.Errorf("youtube %s: status %d", endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		apiErrors.WithLabelValues(endpoint).Inc()
		return fmt.Errorf("youtube %s: decode response: %w", endpoint, err)
	}
	return nil
}

// VideosByID fetches detail records for up to MaxBatchSize video IDs in one
// call. Records come back in arbitrary upstream order; IDs with no record are
// simply absent from the result.
func (c *Client) VideosByID(ctx context.Context, ids []string) ([]model.Video, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", strings.Join(ids, ","))

	var resp videoListResponse
	if err := c.get(ctx, "videos", params, &resp); err != nil {
		return nil, err
	}

	videos := make([]model.Video, 0, len(resp.Items))
	for _, item := range resp.Items {
		videos = append(videos, toVideo(item))
	}
	return videos, nil
}

// Channel fetches one channel's title, statistics and uploads playlist ID.
func (c *Client) Channel(ctx context.Context, channelID string) (*ChannelInfo, error) {
	params := url.Values{}
	params.Set("part", "snippet,statistics,contentDetails")
	params.Set("id", channelID)

	var resp channelListResponse
	if err := c.get(ctx, "channels", params, &resp); err != nil {
		return nil, err
	}
	if len(resp.Items) == 0 {
		return nil, fmt.Errorf("channel %s: %w", channelID, ErrNoResults)
	}

	item := resp.Items[0]
	return &ChannelInfo{
		ID:                item.ID,
		Title:             item.Snippet.Title,
		Subscribers:       parseCount(item.Statistics.SubscriberCount),
		VideoCount:        parseCount(item.Statistics.VideoCount),
		UploadsPlaylistID: item.ContentDetails.RelatedPlaylists.Uploads,
	}, nil
}

// FindChannelID resolves a display name, handle or custom URL segment to a
// canonical channel ID via a single search call, taking the first match.
func (c *Client) FindChannelID(ctx context.Context, query string) (string, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "channel")
	params.Set("q", query)
	params.Set("maxResults", "1")

	var resp searchListResponse
	if err := c.get(ctx, "search", params, &resp); err != nil {
		return "", err
	}
	if len(resp.Items) == 0 {
		return "", fmt.Errorf("channel query %q: %w", query, ErrNoResults)
	}
	return resp.Items[0].ID.ChannelID, nil
}

// UploadsPage fetches one page of an uploads playlist. An empty returned
// NextPageToken means the listing is exhausted.
func (c *Client) UploadsPage(ctx context.Context, playlistID, pageToken string, maxResults int) (*PlaylistPage, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("playlistId", playlistID)
	params.Set("maxResults", strconv.Itoa(maxResults))
	if pageToken != "" {
		params.Set("pageToken", pageToken)
	}

	var resp playlistItemsResponse
	if err := c.get(ctx, "playlistItems", params, &resp); err != nil {
		return nil, err
	}

	page := &PlaylistPage{NextPageToken: resp.NextPageToken}
	for _, item := range resp.Items {
		if id := item.Snippet.ResourceID.VideoID; id != "" {
			page.VideoIDs = append(page.VideoIDs, id)
		}
	}
	return page, nil
}

// SearchVideos runs one video search call and returns the ranked video IDs
// plus the upstream result counts.
func (c *Client) SearchVideos(ctx context.Context, p SearchParams) (*SearchPage, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("type", "video")
	params.Set("q", p.Query)
	params.Set("maxResults", strconv.Itoa(p.MaxResults))
	if p.Order != "" {
		params.Set("order", p.Order)
	}
	if p.VideoType != "" {
		params.Set("videoType", p.VideoType)
	}
	if p.PublishedAfter != "" {
		params.Set("publishedAfter", p.PublishedAfter)
	}
	if p.PublishedBefore != "" {
		params.Set("publishedBefore", p.PublishedBefore)
	}

	var resp searchListResponse
	if err := c.get(ctx, "search", params, &resp); err != nil {
		return nil, err
	}

	page := &SearchPage{
		TotalResults:   clampCount(resp.PageInfo.TotalResults),
		ResultsPerPage: clampCount(resp.PageInfo.ResultsPerPage),
	}
	for _, item := range resp.Items {
		if item.ID.VideoID != "" {
			page.VideoIDs = append(page.VideoIDs, item.ID.VideoID)
		}
	}
	return page, nil
}

// SubscriberCounts fetches subscriber counts for up to MaxBatchSize channels
// in one call. Channels with no returned statistics are absent from the map.
func (c *Client) SubscriberCounts(ctx context.Context, channelIDs []string) (map[string]uint64, error) {
	if len(channelIDs) == 0 {
		return map[string]uint64{}, nil
	}

	params := url.Values{}
	params.Set("part", "statistics")
	params.Set("id", strings.Join(channelIDs, ","))
	params.Set("maxResults", strconv.Itoa(MaxBatchSize))

	var resp channelListResponse
	if err := c.get(ctx, "channels", params, &resp); err != nil {
		return nil, err
	}

	counts := make(map[string]uint64, len(resp.Items))
	for _, item := range resp.Items {
		counts[item.ID] = parseCount(item.Statistics.SubscriberCount)
	}
	return counts, nil
}

func clampCount(n int64) uint64 {
	if n < 0 {
		return 0
	}
	return uint64(n)
}
