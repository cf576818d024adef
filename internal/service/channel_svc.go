package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilphantom/youtube-research-tool/internal/model"
	"github.com/sahilphantom/youtube-research-tool/internal/youtube"
)

// uploadSampleSize bounds how many of a channel's most recent uploads the
// analysis samples. Coverage beyond this prefix is an explicit non-goal.
const uploadSampleSize = 100

type ChannelService struct {
	api YouTubeAPI
}

func NewChannelService(api YouTubeAPI) *ChannelService {
	return &ChannelService{api: api}
}

// Analyze runs the channel analysis pipeline: resolve the channel identity,
// collect a bounded sample of upload IDs, batch-fetch their details, and
// compute the aggregate metrics. External calls are issued strictly
// sequentially; the first failure aborts the pipeline.
func (s *ChannelService) Analyze(ctx context.Context, rawURL string) (*model.ChannelAnalysis, error) {
	input := strings.TrimSpace(rawURL)
	if input == "" {
		return nil, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	channelID, err := s.resolveChannelID(ctx, input)
	if err != nil {
		return nil, err
	}

	ch, err := s.api.Channel(ctx, channelID)
	if err != nil {
		return nil, classify("fetch channel", err)
	}

	var videos []model.Video
	if ch.UploadsPlaylistID != "" {
		ids, err := collectUploadIDs(ctx, s.api, ch.UploadsPlaylistID, uploadSampleSize)
		if err != nil {
			return nil, err
		}
		videos, err = fetchVideoDetails(ctx, s.api, ids)
		if err != nil {
			return nil, err
		}
	}

	m := ComputeChannelMetrics(videos)
	return &model.ChannelAnalysis{
		ChannelID:        ch.ID,
		ChannelTitle:     ch.Title,
		TotalSubscribers: ch.Subscribers,
		TotalVideos:      len(videos),
		AvgViews:         m.AvgViews,
		AvgDurationSec:   m.AvgDurationSec,
		UploadHourDist:   m.UploadHourDist,
		TopTags:          m.TopTags,
		TopVideos:        m.TopVideos,
		OutlierVideos:    m.OutlierVideos,
	}, nil
}

// resolveChannelID maps the user's input to a canonical channel ID: a
// literal ID when the URL carries one, otherwise a single disambiguation
// lookup taking the first matching channel.
func (s *ChannelService) resolveChannelID(ctx context.Context, input string) (string, error) {
	if id, ok := youtube.ExtractChannelID(input); ok {
		return id, nil
	}
	id, err := s.api.FindChannelID(ctx, youtube.ChannelQuery(input))
	if err != nil {
		return "", classify("resolve channel", err)
	}
	return id, nil
}
