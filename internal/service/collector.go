package service

import (
	"context"

	"github.com/sahilphantom/youtube-research-tool/internal/middleware"
	"github.com/sahilphantom/youtube-research-tool/internal/model"
	"github.com/sahilphantom/youtube-research-tool/internal/youtube"
)

// collectUploadIDs pages through an uploads playlist, following the
// continuation token until target IDs are accumulated or the token comes
// back empty, then truncates to exactly target. Any page failure aborts the
// whole collection; no partial result is returned.
func collectUploadIDs(ctx context.Context, api YouTubeAPI, playlistID string, target int) ([]string, error) {
	var ids []string
	pageToken := ""
	for {
		page, err := api.UploadsPage(ctx, playlistID, pageToken, youtube.MaxPageSize)
		if err != nil {
			return nil, classify("list channel uploads", err)
		}
		ids = append(ids, page.VideoIDs...)
		if len(ids) >= target || page.NextPageToken == "" {
			break
		}
		pageToken = page.NextPageToken
	}
	if len(ids) > target {
		ids = ids[:target]
	}
	return ids, nil
}

// fetchVideoDetails resolves video IDs to detail records in consecutive
// chunks of at most MaxBatchSize, preserving input order. The detail
// endpoint returns records in arbitrary order, so each chunk is re-indexed
// to its request order. IDs that yield no record (deleted or private videos)
// are dropped silently; a failed chunk call fails the whole fetch.
func fetchVideoDetails(ctx context.Context, api YouTubeAPI, ids []string) ([]model.Video, error) {
	videos := make([]model.Video, 0, len(ids))
	for start := 0; start < len(ids); start += youtube.MaxBatchSize {
		end := min(start+youtube.MaxBatchSize, len(ids))
		chunk := ids[start:end]

		records, err := api.VideosByID(ctx, chunk)
		if err != nil {
			return nil, classify("fetch video details", err)
		}

		byID := make(map[string]model.Video, len(records))
		for _, v := range records {
			byID[v.VideoID] = v
		}
		for _, id := range chunk {
			if v, ok := byID[id]; ok {
				videos = append(videos, v)
			}
		}

		if len(records) < len(chunk) {
			middleware.Logger.Debug().
				Int("requested", len(chunk)).
				Int("returned", len(records)).
				Msg("detail batch returned fewer records than requested")
		}
	}
	return videos, nil
}
