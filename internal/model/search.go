package model

// SubscriberRange filters search results by channel subscriber count,
// inclusive on both ends.
type SubscriberRange struct {
	Min uint64 `json:"min"`
	Max uint64 `json:"max"`
}

// SearchRequest is the body of POST /api/search-videos. Date bounds accept
// either YYYY-MM-DD (the web client's date inputs) or full RFC3339.
type SearchRequest struct {
	Query                  string           `json:"query"`
	UploadDateAfter        string           `json:"uploadDateAfter,omitempty"`
	UploadDateBefore       string           `json:"uploadDateBefore,omitempty"`
	SortBy                 string           `json:"sortBy,omitempty"`
	VideoType              string           `json:"videoType,omitempty"`
	ChannelSubscriberRange *SubscriberRange `json:"channelSubscriberRange,omitempty"`
	ViewToSubRatio         *float64         `json:"viewToSubRatio,omitempty"`
	MaxResults             int              `json:"maxResults,omitempty"`
	Format                 string           `json:"format,omitempty"`
}

// SearchResults preserves the upstream ranking order; post-filters may remove
// videos but never reorder the survivors.
type SearchResults struct {
	Videos         []Video `json:"videos"`
	TotalResults   uint64  `json:"totalResults"`
	ResultsPerPage uint64  `json:"resultsPerPage"`
}
