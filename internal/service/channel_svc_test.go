package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/sahilphantom/youtube-research-tool/internal/model"
	"github.com/sahilphantom/youtube-research-tool/internal/youtube"
)

func analysisFake(t *testing.T) *fakeAPI {
	t.Helper()
	return &fakeAPI{
		channel: func(ctx context.Context, channelID string) (*youtube.ChannelInfo, error) {
			if channelID != "UC123" {
				return nil, fmt.Errorf("channel %s: %w", channelID, youtube.ErrNoResults)
			}
			return &youtube.ChannelInfo{
				ID:                "UC123",
				Title:             "Test Channel",
				Subscribers:       50000,
				VideoCount:        200,
				UploadsPlaylistID: "UU123",
			}, nil
		},
		uploadsPage: pagedUploads(30, youtube.MaxPageSize),
		videosByID: func(ctx context.Context, ids []string) ([]model.Video, error) {
			videos := make([]model.Video, 0, len(ids))
			for _, id := range ids {
				videos = append(videos, model.Video{VideoID: id, ViewCount: 100, Tags: []string{"go"}})
			}
			return videos, nil
		},
	}
}

func TestChannelAnalyze_DirectChannelURL(t *testing.T) {
	svc := NewChannelService(analysisFake(t))

	a, err := svc.Analyze(context.Background(), "https://www.youtube.com/channel/UC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if a.ChannelID != "UC123" {
		t.Errorf("ChannelID = %q, want UC123", a.ChannelID)
	}
	if a.ChannelTitle != "Test Channel" {
		t.Errorf("ChannelTitle = %q, want Test Channel", a.ChannelTitle)
	}
	if a.TotalSubscribers != 50000 {
		t.Errorf("TotalSubscribers = %d, want 50000", a.TotalSubscribers)
	}
	if a.TotalVideos != 30 {
		t.Errorf("TotalVideos = %d, want the 30 sampled videos", a.TotalVideos)
	}
	if a.AvgViews != 100 {
		t.Errorf("AvgViews = %d, want 100", a.AvgViews)
	}
	if len(a.TopTags) != 1 || a.TopTags[0].Tag != "go" || a.TopTags[0].Count != 30 {
		t.Errorf("TopTags = %v, want [{go 30}]", a.TopTags)
	}
	if len(a.TopVideos) != 10 {
		t.Errorf("got %d top videos, want 10", len(a.TopVideos))
	}
}

func TestChannelAnalyze_HandleResolvedByLookup(t *testing.T) {
	api := analysisFake(t)
	var gotQuery string
	api.findChannelID = func(ctx context.Context, query string) (string, error) {
		gotQuery = query
		return "UC123", nil
	}

	svc := NewChannelService(api)
	a, err := svc.Analyze(context.Background(), "https://www.youtube.com/@testchannel")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotQuery != "@testchannel" {
		t.Errorf("lookup query = %q, want @testchannel", gotQuery)
	}
	if a.ChannelID != "UC123" {
		t.Errorf("ChannelID = %q, want UC123", a.ChannelID)
	}
}

func TestChannelAnalyze_EmptyInput(t *testing.T) {
	svc := NewChannelService(&fakeAPI{})
	_, err := svc.Analyze(context.Background(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestChannelAnalyze_UnknownChannel(t *testing.T) {
	svc := NewChannelService(analysisFake(t))
	_, err := svc.Analyze(context.Background(), "https://www.youtube.com/channel/UCnope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestChannelAnalyze_LookupMiss(t *testing.T) {
	api := analysisFake(t)
	api.findChannelID = func(ctx context.Context, query string) (string, error) {
		return "", fmt.Errorf("channel query %q: %w", query, youtube.ErrNoResults)
	}

	svc := NewChannelService(api)
	_, err := svc.Analyze(context.Background(), "no such channel")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestChannelAnalyze_NoUploadsPlaylist(t *testing.T) {
	api := &fakeAPI{
		channel: func(ctx context.Context, channelID string) (*youtube.ChannelInfo, error) {
			return &youtube.ChannelInfo{ID: "UC123", Title: "Empty Channel"}, nil
		},
	}

	svc := NewChannelService(api)
	a, err := svc.Analyze(context.Background(), "https://www.youtube.com/channel/UC123")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.TotalVideos != 0 {
		t.Errorf("TotalVideos = %d, want 0", a.TotalVideos)
	}
	if len(a.UploadHourDist) != 24 {
		t.Errorf("got %d hour buckets, want 24", len(a.UploadHourDist))
	}
	if a.TopVideos == nil || a.OutlierVideos == nil || a.TopTags == nil {
		t.Error("ranked slices must be empty, not nil")
	}
}

func TestChannelAnalyze_UploadListingFailureAborts(t *testing.T) {
	api := analysisFake(t)
	api.uploadsPage = func(ctx context.Context, playlistID, pageToken string, maxResults int) (*youtube.PlaylistPage, error) {
		return nil, errors.New("quota exceeded")
	}

	svc := NewChannelService(api)
	_, err := svc.Analyze(context.Background(), "https://www.youtube.com/channel/UC123")
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("got %v, want ErrUpstream", err)
	}
}

func TestChannelAnalyze_MissingAPIKey(t *testing.T) {
	api := &fakeAPI{
		channel: func(ctx context.Context, channelID string) (*youtube.ChannelInfo, error) {
			return nil, youtube.ErrAPIKeyMissing
		},
	}

	svc := NewChannelService(api)
	_, err := svc.Analyze(context.Background(), "https://www.youtube.com/channel/UC123")
	if !errors.Is(err, ErrConfiguration) {
		t.Errorf("got %v, want ErrConfiguration", err)
	}
}

func TestVideoLookup(t *testing.T) {
	api := &fakeAPI{
		videosByID: func(ctx context.Context, ids []string) ([]model.Video, error) {
			if len(ids) == 1 && ids[0] == "dQw4w9WgXcQ" {
				return []model.Video{{VideoID: "dQw4w9WgXcQ", Title: "Found"}}, nil
			}
			return nil, nil
		},
	}
	svc := NewVideoService(api)

	t.Run("watch URL", func(t *testing.T) {
		v, err := svc.Lookup(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.Title != "Found" {
			t.Errorf("Title = %q, want Found", v.Title)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		_, err := svc.Lookup(context.Background(), "")
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("got %v, want ErrInvalidInput", err)
		}
	})

	t.Run("unrecognized URL", func(t *testing.T) {
		_, err := svc.Lookup(context.Background(), "https://example.com/video")
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("got %v, want ErrInvalidInput", err)
		}
	})

	t.Run("deleted video", func(t *testing.T) {
		_, err := svc.Lookup(context.Background(), "https://youtu.be/aaaaaaaaaaa")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("got %v, want ErrNotFound", err)
		}
	})
}
