package model

import (
	"encoding/json"
	"fmt"
)

// ChannelAnalysis is the aggregate result of the channel analysis pipeline,
// computed fresh per request from a bounded sample of the channel's uploads.
type ChannelAnalysis struct {
	ChannelID        string         `json:"channelId"`
	ChannelTitle     string         `json:"channelTitle"`
	TotalSubscribers uint64         `json:"totalSubscribers"`
	TotalVideos      int            `json:"totalVideos"`
	AvgViews         uint64         `json:"avgViews"`
	AvgDurationSec   uint64         `json:"avgDurationSec"`
	UploadHourDist   map[int]int    `json:"uploadHourDist"`
	TopTags          []TagCount     `json:"topTags"`
	TopVideos        []VideoSummary `json:"topVideos"`
	OutlierVideos    []VideoSummary `json:"outlierVideos"`
}

// TagCount is one entry of the tag frequency ranking. It marshals as a
// two-element ["tag", count] array, the shape the web client consumes.
type TagCount struct {
	Tag   string
	Count int
}

func (t TagCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{t.Tag, t.Count})
}

func (t *TagCount) UnmarshalJSON(data []byte) error {
	var pair []json.RawMessage
	if err := json.Unmarshal(data, &pair); err != nil {
		return err
	}
	if len(pair) != 2 {
		return fmt.Errorf("tag count: expected [tag, count], got %d elements", len(pair))
	}
	if err := json.Unmarshal(pair[0], &t.Tag); err != nil {
		return err
	}
	return json.Unmarshal(pair[1], &t.Count)
}

// ChannelAnalysisRequest is the body of POST /api/channel-analysis.
// ExportType selects which CSV shape to render when Format is "csv":
// "channel-analysis" (default), "top-videos", or "outlier-videos".
type ChannelAnalysisRequest struct {
	URL        string `json:"url"`
	Format     string `json:"format,omitempty"`
	ExportType string `json:"exportType,omitempty"`
}
