package youtube

import (
	"regexp"
	"strings"
)

var (
	// videoIDRe matches the 11-character video ID in watch, short-link and
	// embed URLs.
	videoIDRe = regexp.MustCompile(`(?:v=|youtu\.be/|youtube\.com/embed/)([A-Za-z0-9_-]{11})`)

	// channelIDRe matches a literal channel ID in /channel/ URLs.
	channelIDRe = regexp.MustCompile(`/channel/([A-Za-z0-9_-]+)`)

	handleRe    = regexp.MustCompile(`/@([A-Za-z0-9_.-]+)`)
	customURLRe = regexp.MustCompile(`/(?:c|user)/([^/?#]+)`)
)

// ExtractVideoID pulls a video ID out of a YouTube video URL. Returns false
// when the input carries no direct video identifier.
func ExtractVideoID(raw string) (string, bool) {
	m := videoIDRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ExtractChannelID pulls a canonical channel ID out of a /channel/ URL.
// Handle, /c/ and /user/ forms carry no direct ID and return false; those
// need a lookup call (see ChannelQuery).
func ExtractChannelID(raw string) (string, bool) {
	m := channelIDRe.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ChannelQuery derives the disambiguation query for inputs without a direct
// channel ID: the handle for /@ URLs, the path segment for /c/ and /user/
// URLs, and the trimmed input itself for free text.
func ChannelQuery(raw string) string {
	if m := handleRe.FindStringSubmatch(raw); m != nil {
		return "@" + m[1]
	}
	if m := customURLRe.FindStringSubmatch(raw); m != nil {
		return m[1]
	}
	return strings.TrimSpace(raw)
}
