package service

import (
	"math"
	"sort"

	"github.com/sahilphantom/youtube-research-tool/internal/model"
)

const (
	maxTopVideos = 10
	maxTopTags   = 10

	// A video is an outlier when its views strictly exceed this multiple of
	// the sample's average views.
	outlierMultiplier = 5
)

// ChannelMetrics holds the derived metrics of one sampled video set.
type ChannelMetrics struct {
	AvgViews       uint64
	AvgDurationSec uint64
	UploadHourDist map[int]int
	TopTags        []model.TagCount
	TopVideos      []model.VideoSummary
	OutlierVideos  []model.VideoSummary
}

// ComputeChannelMetrics derives all channel metrics from a sampled video
// set. Pure and deterministic: no external calls, identical input always
// yields identical output.
func ComputeChannelMetrics(videos []model.Video) ChannelMetrics {
	m := ChannelMetrics{
		UploadHourDist: make(map[int]int, 24),
		TopTags:        []model.TagCount{},
		TopVideos:      []model.VideoSummary{},
		OutlierVideos:  []model.VideoSummary{},
	}

	// Zero-count buckets are rendered, not omitted.
	for hour := 0; hour < 24; hour++ {
		m.UploadHourDist[hour] = 0
	}

	n := uint64(len(videos))
	if n == 0 {
		return m
	}

	var totalViews, totalDuration uint64
	for _, v := range videos {
		totalViews += v.ViewCount
		totalDuration += v.DurationSec
		m.UploadHourDist[v.PublishedAt.UTC().Hour()]++
	}

	// Averages are rounded for presentation only; the outlier boundary below
	// uses the exact quotient.
	m.AvgViews = uint64(math.Round(float64(totalViews) / float64(n)))
	m.AvgDurationSec = uint64(math.Round(float64(totalDuration) / float64(n)))

	m.TopTags = rankTags(videos)
	m.TopVideos = rankByViews(videos)

	// views > outlierMultiplier * totalViews/n, strict. Cross-multiplying
	// keeps the comparison exact at the boundary.
	for _, v := range videos {
		if v.ViewCount*n > outlierMultiplier*totalViews {
			m.OutlierVideos = append(m.OutlierVideos, summarize(v))
		}
	}

	return m
}

// rankTags counts tag occurrences across all videos (repeats within one
// video count once per occurrence) and returns the top entries ranked by
// count descending, ties keeping first-seen order.
func rankTags(videos []model.Video) []model.TagCount {
	counts := []model.TagCount{}
	index := make(map[string]int)
	for _, v := range videos {
		for _, tag := range v.Tags {
			if i, ok := index[tag]; ok {
				counts[i].Count++
				continue
			}
			index[tag] = len(counts)
			counts = append(counts, model.TagCount{Tag: tag, Count: 1})
		}
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	if len(counts) > maxTopTags {
		counts = counts[:maxTopTags]
	}
	return counts
}

// rankByViews returns the top videos by view count descending, ties keeping
// first-seen order.
func rankByViews(videos []model.Video) []model.VideoSummary {
	ranked := make([]model.Video, len(videos))
	copy(ranked, videos)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ViewCount > ranked[j].ViewCount
	})
	if len(ranked) > maxTopVideos {
		ranked = ranked[:maxTopVideos]
	}

	summaries := make([]model.VideoSummary, 0, len(ranked))
	for _, v := range ranked {
		summaries = append(summaries, summarize(v))
	}
	return summaries
}

func summarize(v model.Video) model.VideoSummary {
	return model.VideoSummary{
		VideoID:     v.VideoID,
		Title:       v.Title,
		Views:       v.ViewCount,
		PublishedAt: v.PublishedAt,
		Duration:    v.Duration,
	}
}
