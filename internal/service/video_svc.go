package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/sahilphantom/youtube-research-tool/internal/model"
	"github.com/sahilphantom/youtube-research-tool/internal/youtube"
)

type VideoService struct {
	api YouTubeAPI
}

func NewVideoService(api YouTubeAPI) *VideoService {
	return &VideoService{api: api}
}

// Lookup resolves a video URL to its normalized detail record.
func (s *VideoService) Lookup(ctx context.Context, rawURL string) (*model.Video, error) {
	input := strings.TrimSpace(rawURL)
	if input == "" {
		return nil, fmt.Errorf("%w: url is required", ErrInvalidInput)
	}

	videoID, ok := youtube.ExtractVideoID(input)
	if !ok {
		return nil, fmt.Errorf("%w: not a recognized YouTube video URL", ErrInvalidInput)
	}

	videos, err := s.api.VideosByID(ctx, []string{videoID})
	if err != nil {
		return nil, classify("fetch video", err)
	}
	if len(videos) == 0 {
		return nil, fmt.Errorf("%w: video %s", ErrNotFound, videoID)
	}

	v := videos[0]
	return &v, nil
}
