// Package export renders typed pipeline results as delimited tabular text
// for offline analysis.
package export

import (
	"encoding/csv"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/sahilphantom/youtube-research-tool/internal/model"
)

// Shape tags accepted by Render.
const (
	ShapeVideoInfo       = "video-info"
	ShapeChannelAnalysis = "channel-analysis"
	ShapeSearchResults   = "search-results"
	ShapeTopVideos       = "top-videos"
	ShapeOutlierVideos   = "outlier-videos"
)

// Render maps a typed result plus a shape tag to a flat CSV rendering with
// that shape's fixed column header. Fields containing the delimiter, a quote
// or a newline are quoted with internal quotes doubled. Unknown tags and
// mismatched payloads yield an empty string; Render never fails.
func Render(shape string, data any) string {
	switch shape {
	case ShapeVideoInfo:
		if v, ok := asVideo(data); ok {
			return table(videoHeaders, [][]string{videoRow(v)})
		}
	case ShapeChannelAnalysis:
		if a, ok := asAnalysis(data); ok {
			return table(
				[]string{"Channel ID", "Channel Title", "Subscribers", "Total Videos", "Avg Views", "Avg Duration (sec)"},
				[][]string{{
					a.ChannelID,
					a.ChannelTitle,
					strconv.FormatUint(a.TotalSubscribers, 10),
					strconv.Itoa(a.TotalVideos),
					strconv.FormatUint(a.AvgViews, 10),
					strconv.FormatUint(a.AvgDurationSec, 10),
				}},
			)
		}
	case ShapeSearchResults:
		if r, ok := data.(model.SearchResults); ok {
			rows := make([][]string, 0, len(r.Videos))
			for _, v := range r.Videos {
				rows = append(rows, videoRow(v))
			}
			return table(videoHeaders, rows)
		}
		if r, ok := data.(*model.SearchResults); ok && r != nil {
			return Render(shape, *r)
		}
	case ShapeTopVideos:
		if a, ok := asAnalysis(data); ok {
			rows := make([][]string, 0, len(a.TopVideos))
			for i, v := range a.TopVideos {
				rows = append(rows, []string{
					strconv.Itoa(i + 1),
					v.VideoID,
					v.Title,
					strconv.FormatUint(v.Views, 10),
					timestamp(v.PublishedAt),
					v.Duration,
				})
			}
			return table([]string{"Rank", "Video ID", "Title", "Views", "Upload Date", "Duration"}, rows)
		}
	case ShapeOutlierVideos:
		if a, ok := asAnalysis(data); ok {
			rows := make([][]string, 0, len(a.OutlierVideos))
			for _, v := range a.OutlierVideos {
				rows = append(rows, []string{
					v.VideoID,
					v.Title,
					strconv.FormatUint(v.Views, 10),
					strconv.FormatUint(a.AvgViews, 10),
					viewRatio(v.Views, a.AvgViews),
					timestamp(v.PublishedAt),
				})
			}
			return table([]string{"Video ID", "Title", "Views", "Avg Views", "Ratio", "Upload Date"}, rows)
		}
	}
	return ""
}

var nonAlnumRe = regexp.MustCompile(`[^a-zA-Z0-9]`)

// Filename builds the timestamped download filename for a rendering,
// replacing non-alphanumeric query characters with underscores.
func Filename(shape, query string) string {
	ts := time.Now().UTC().Format("2006-01-02T15-04-05")
	prefix := nonAlnumRe.ReplaceAllString(query, "_")
	return shape + "_" + prefix + "_" + ts + ".csv"
}

var videoHeaders = []string{"Video ID", "Title", "Channel", "Views", "Likes", "Upload Date", "Duration", "Description"}

func videoRow(v model.Video) []string {
	return []string{
		v.VideoID,
		v.Title,
		v.ChannelTitle,
		strconv.FormatUint(v.ViewCount, 10),
		strconv.FormatUint(v.LikeCount, 10),
		timestamp(v.PublishedAt),
		v.Duration,
		v.Description,
	}
}

func asVideo(data any) (model.Video, bool) {
	switch v := data.(type) {
	case model.Video:
		return v, true
	case *model.Video:
		if v != nil {
			return *v, true
		}
	}
	return model.Video{}, false
}

func asAnalysis(data any) (model.ChannelAnalysis, bool) {
	switch a := data.(type) {
	case model.ChannelAnalysis:
		return a, true
	case *model.ChannelAnalysis:
		if a != nil {
			return *a, true
		}
	}
	return model.ChannelAnalysis{}, false
}

func table(headers []string, rows [][]string) string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	_ = w.Write(headers)
	for _, row := range rows {
		_ = w.Write(row)
	}
	w.Flush()
	return b.String()
}

// timestamp renders absent dates as empty cells.
func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func viewRatio(views, avg uint64) string {
	if avg == 0 {
		return "0.00"
	}
	return strconv.FormatFloat(float64(views)/float64(avg), 'f', 2, 64)
}
