package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sahilphantom/youtube-research-tool/internal/model"
	"github.com/sahilphantom/youtube-research-tool/internal/youtube"
)

const (
	defaultSearchResults = 25
	maxSearchResults     = 50
)

type SearchService struct {
	api YouTubeAPI
}

func NewSearchService(api YouTubeAPI) *SearchService {
	return &SearchService{api: api}
}

// Search runs the search pipeline: one upstream search call, a batched
// detail fetch for the ranked result IDs, then the optional subscriber-based
// post-filters. Survivor order always matches the upstream ranking.
func (s *SearchService) Search(ctx context.Context, req model.SearchRequest) (*model.SearchResults, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return nil, fmt.Errorf("%w: query is required", ErrInvalidInput)
	}

	after, err := normalizeDate(req.UploadDateAfter)
	if err != nil {
		return nil, fmt.Errorf("%w: uploadDateAfter: %v", ErrInvalidInput, err)
	}
	before, err := normalizeDate(req.UploadDateBefore)
	if err != nil {
		return nil, fmt.Errorf("%w: uploadDateBefore: %v", ErrInvalidInput, err)
	}

	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = defaultSearchResults
	}
	if maxResults > maxSearchResults {
		maxResults = maxSearchResults
	}

	page, err := s.api.SearchVideos(ctx, youtube.SearchParams{
		Query:           query,
		Order:           searchOrder(req.SortBy),
		VideoType:       videoType(req.VideoType),
		PublishedAfter:  after,
		PublishedBefore: before,
		MaxResults:      maxResults,
	})
	if err != nil {
		return nil, classify("search videos", err)
	}

	videos, err := fetchVideoDetails(ctx, s.api, page.VideoIDs)
	if err != nil {
		return nil, err
	}

	videos, err = s.applyFilters(ctx, videos, req.ChannelSubscriberRange, req.ViewToSubRatio)
	if err != nil {
		return nil, err
	}

	if videos == nil {
		videos = []model.Video{}
	}
	return &model.SearchResults{
		Videos:         videos,
		TotalResults:   page.TotalResults,
		ResultsPerPage: page.ResultsPerPage,
	}, nil
}

// applyFilters evaluates the subscriber-range and view-to-subscriber-ratio
// filters. Both need subscriber counts, fetched once for the distinct
// channels in the candidate list. A channel with no returned statistics
// counts as 0 subscribers for the range filter and as denominator 1 for the
// ratio filter. When both filters are supplied, both must pass. A failed
// subscriber fetch aborts the search; filtering is never silently skipped.
func (s *SearchService) applyFilters(ctx context.Context, videos []model.Video, rng *model.SubscriberRange, ratio *float64) ([]model.Video, error) {
	if rng == nil && ratio == nil {
		return videos, nil
	}

	seen := make(map[string]bool)
	var channelIDs []string
	for _, v := range videos {
		if !seen[v.ChannelID] {
			seen[v.ChannelID] = true
			channelIDs = append(channelIDs, v.ChannelID)
		}
	}

	counts, err := s.api.SubscriberCounts(ctx, channelIDs)
	if err != nil {
		return nil, classify("fetch subscriber counts", err)
	}

	kept := make([]model.Video, 0, len(videos))
	for _, v := range videos {
		subs := counts[v.ChannelID]
		if rng != nil && (subs < rng.Min || subs > rng.Max) {
			continue
		}
		if ratio != nil {
			denom := subs
			if denom == 0 {
				denom = 1
			}
			if float64(v.ViewCount)/float64(denom) < *ratio {
				continue
			}
		}
		kept = append(kept, v)
	}
	return kept, nil
}

// searchOrder maps the request's sortBy to the upstream order parameter.
// Unknown values fall back to relevance, the upstream default.
func searchOrder(sortBy string) string {
	switch sortBy {
	case "date", "rating", "title", "viewCount":
		return sortBy
	case "views":
		return "viewCount"
	default:
		return "relevance"
	}
}

func videoType(t string) string {
	if t == "" || t == "any" {
		return ""
	}
	return t
}

// normalizeDate widens the web client's YYYY-MM-DD date inputs to the
// RFC3339 timestamps the upstream call requires. Full RFC3339 passes
// through unchanged.
func normalizeDate(s string) (string, error) {
	if s == "" {
		return "", nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t.UTC().Format(time.RFC3339), nil
	}
	if _, err := time.Parse(time.RFC3339, s); err == nil {
		return s, nil
	}
	return "", fmt.Errorf("expected YYYY-MM-DD or RFC3339, got %q", s)
}
