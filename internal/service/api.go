package service

import (
	"context"

	"github.com/sahilphantom/youtube-research-tool/internal/model"
	"github.com/sahilphantom/youtube-research-tool/internal/youtube"
)

// YouTubeAPI is the slice of the Data API client the pipelines depend on.
// *youtube.Client satisfies it; tests substitute fakes.
type YouTubeAPI interface {
	VideosByID(ctx context.Context, ids []string) ([]model.Video, error)
	Channel(ctx context.Context, channelID string) (*youtube.ChannelInfo, error)
	FindChannelID(ctx context.Context, query string) (string, error)
	UploadsPage(ctx context.Context, playlistID, pageToken string, maxResults int) (*youtube.PlaylistPage, error)
	SearchVideos(ctx context.Context, p youtube.SearchParams) (*youtube.SearchPage, error)
	SubscriberCounts(ctx context.Context, channelIDs []string) (map[string]uint64, error)
}
