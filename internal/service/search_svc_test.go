package service

import (
	"context"
	"errors"
	"testing"

	"github.com/sahilphantom/youtube-research-tool/internal/model"
	"github.com/sahilphantom/youtube-research-tool/internal/youtube"
)

// searchFake serves a fixed ranked result set with per-channel subscriber
// counts. Videos c1..c4 belong to channels UC1..UC4.
func searchFake(subs map[string]uint64) *fakeAPI {
	return &fakeAPI{
		searchVideos: func(ctx context.Context, p youtube.SearchParams) (*youtube.SearchPage, error) {
			return &youtube.SearchPage{
				VideoIDs:       []string{"c1", "c2", "c3", "c4"},
				TotalResults:   1200,
				ResultsPerPage: 4,
			}, nil
		},
		videosByID: func(ctx context.Context, ids []string) ([]model.Video, error) {
			byID := map[string]model.Video{
				"c1": {VideoID: "c1", ChannelID: "UC1", ViewCount: 1000},
				"c2": {VideoID: "c2", ChannelID: "UC2", ViewCount: 5000},
				"c3": {VideoID: "c3", ChannelID: "UC3", ViewCount: 200},
				"c4": {VideoID: "c4", ChannelID: "UC4", ViewCount: 90000},
			}
			var videos []model.Video
			for _, id := range ids {
				if v, ok := byID[id]; ok {
					videos = append(videos, v)
				}
			}
			return videos, nil
		},
		subscriberCounts: func(ctx context.Context, channelIDs []string) (map[string]uint64, error) {
			counts := make(map[string]uint64)
			for _, id := range channelIDs {
				if n, ok := subs[id]; ok {
					counts[id] = n
				}
			}
			return counts, nil
		},
	}
}

func TestSearch_NoFilters(t *testing.T) {
	api := searchFake(nil)
	api.subscriberCounts = func(ctx context.Context, channelIDs []string) (map[string]uint64, error) {
		t.Error("subscriber counts must not be fetched when no filter is set")
		return nil, nil
	}
	svc := NewSearchService(api)

	res, err := svc.Search(context.Background(), model.SearchRequest{Query: "golang"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Videos) != 4 {
		t.Errorf("got %d videos, want 4", len(res.Videos))
	}
	if res.TotalResults != 1200 {
		t.Errorf("TotalResults = %d, want 1200", res.TotalResults)
	}
	if res.ResultsPerPage != 4 {
		t.Errorf("ResultsPerPage = %d, want 4", res.ResultsPerPage)
	}
}

func TestSearch_EmptyQuery(t *testing.T) {
	svc := NewSearchService(&fakeAPI{})
	_, err := svc.Search(context.Background(), model.SearchRequest{Query: "  "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestSearch_SubscriberRangeInclusive(t *testing.T) {
	// UC1=100, UC2=1000, UC3=5000, UC4 missing (counts as 0)
	svc := NewSearchService(searchFake(map[string]uint64{
		"UC1": 100, "UC2": 1000, "UC3": 5000,
	}))

	res, err := svc.Search(context.Background(), model.SearchRequest{
		Query:                  "golang",
		ChannelSubscriberRange: &model.SubscriberRange{Min: 100, Max: 1000},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Both boundary values survive; UC3 is above, UC4's missing count (0) below.
	want := []string{"c1", "c2"}
	if len(res.Videos) != len(want) {
		t.Fatalf("got %d videos, want %d", len(res.Videos), len(want))
	}
	for i, id := range want {
		if res.Videos[i].VideoID != id {
			t.Errorf("videos[%d] = %s, want %s", i, res.Videos[i].VideoID, id)
		}
	}
}

func TestSearch_MissingSubscribersPassZeroMin(t *testing.T) {
	svc := NewSearchService(searchFake(map[string]uint64{
		"UC1": 100, "UC2": 1000, "UC3": 5000,
	}))

	res, err := svc.Search(context.Background(), model.SearchRequest{
		Query:                  "golang",
		ChannelSubscriberRange: &model.SubscriberRange{Min: 0, Max: 500},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// UC4 has no returned count, treated as 0, which is inside [0, 500].
	want := []string{"c1", "c4"}
	if len(res.Videos) != len(want) {
		t.Fatalf("got %d videos, want %d", len(res.Videos), len(want))
	}
	for i, id := range want {
		if res.Videos[i].VideoID != id {
			t.Errorf("videos[%d] = %s, want %s", i, res.Videos[i].VideoID, id)
		}
	}
}

func TestSearch_ViewToSubRatio(t *testing.T) {
	// Ratios: c1 1000/100=10, c2 5000/1000=5, c3 200/5000=0.04,
	// c4 90000/1 (missing subs → denominator 1) = 90000.
	svc := NewSearchService(searchFake(map[string]uint64{
		"UC1": 100, "UC2": 1000, "UC3": 5000,
	}))

	ratio := 5.0
	res, err := svc.Search(context.Background(), model.SearchRequest{
		Query:          "golang",
		ViewToSubRatio: &ratio,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The threshold is inclusive: c2 at exactly 5.0 survives.
	want := []string{"c1", "c2", "c4"}
	if len(res.Videos) != len(want) {
		t.Fatalf("got %d videos, want %d", len(res.Videos), len(want))
	}
	for i, id := range want {
		if res.Videos[i].VideoID != id {
			t.Errorf("videos[%d] = %s, want %s", i, res.Videos[i].VideoID, id)
		}
	}
}

func TestSearch_BothFiltersAND(t *testing.T) {
	svc := NewSearchService(searchFake(map[string]uint64{
		"UC1": 100, "UC2": 1000, "UC3": 5000,
	}))

	ratio := 6.0
	res, err := svc.Search(context.Background(), model.SearchRequest{
		Query:                  "golang",
		ChannelSubscriberRange: &model.SubscriberRange{Min: 100, Max: 1000},
		ViewToSubRatio:         &ratio,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Range keeps c1, c2; ratio >= 6 then drops c2 (ratio 5).
	if len(res.Videos) != 1 || res.Videos[0].VideoID != "c1" {
		t.Errorf("got %v, want only c1", videoIDs(res.Videos))
	}
}

func TestSearch_SubscriberFetchFailureAborts(t *testing.T) {
	api := searchFake(nil)
	api.subscriberCounts = func(ctx context.Context, channelIDs []string) (map[string]uint64, error) {
		return nil, errors.New("backend error")
	}
	svc := NewSearchService(api)

	_, err := svc.Search(context.Background(), model.SearchRequest{
		Query:                  "golang",
		ChannelSubscriberRange: &model.SubscriberRange{Min: 0, Max: 100},
	})
	if !errors.Is(err, ErrUpstream) {
		t.Errorf("got %v, want ErrUpstream (filters must never be skipped silently)", err)
	}
}

func TestSearch_DateValidation(t *testing.T) {
	svc := NewSearchService(searchFake(nil))

	t.Run("plain date widened", func(t *testing.T) {
		api := searchFake(nil)
		var got youtube.SearchParams
		inner := api.searchVideos
		api.searchVideos = func(ctx context.Context, p youtube.SearchParams) (*youtube.SearchPage, error) {
			got = p
			return inner(ctx, p)
		}
		_, err := NewSearchService(api).Search(context.Background(), model.SearchRequest{
			Query:           "golang",
			UploadDateAfter: "2024-03-01",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.PublishedAfter != "2024-03-01T00:00:00Z" {
			t.Errorf("PublishedAfter = %q, want 2024-03-01T00:00:00Z", got.PublishedAfter)
		}
	})

	t.Run("rfc3339 passes through", func(t *testing.T) {
		_, err := svc.Search(context.Background(), model.SearchRequest{
			Query:            "golang",
			UploadDateBefore: "2024-03-01T12:00:00Z",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("malformed date rejected", func(t *testing.T) {
		_, err := svc.Search(context.Background(), model.SearchRequest{
			Query:           "golang",
			UploadDateAfter: "03/01/2024",
		})
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("got %v, want ErrInvalidInput", err)
		}
	})
}

func TestSearch_MaxResultsClamped(t *testing.T) {
	var got youtube.SearchParams
	api := searchFake(nil)
	inner := api.searchVideos
	api.searchVideos = func(ctx context.Context, p youtube.SearchParams) (*youtube.SearchPage, error) {
		got = p
		return inner(ctx, p)
	}
	svc := NewSearchService(api)

	tests := []struct {
		name      string
		requested int
		want      int
	}{
		{"default", 0, defaultSearchResults},
		{"negative", -5, defaultSearchResults},
		{"within range", 40, 40},
		{"above cap", 500, maxSearchResults},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Search(context.Background(), model.SearchRequest{Query: "golang", MaxResults: tt.requested})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.MaxResults != tt.want {
				t.Errorf("MaxResults = %d, want %d", got.MaxResults, tt.want)
			}
		})
	}
}

func TestSearchOrder(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", "relevance"},
		{"relevance-typo", "relevance"},
		{"views", "viewCount"},
		{"viewCount", "viewCount"},
		{"date", "date"},
		{"rating", "rating"},
		{"title", "title"},
	}
	for _, tt := range tests {
		if got := searchOrder(tt.input); got != tt.want {
			t.Errorf("searchOrder(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func videoIDs(videos []model.Video) []string {
	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.VideoID)
	}
	return ids
}
