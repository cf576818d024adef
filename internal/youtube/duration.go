package youtube

import (
	"regexp"
	"strconv"
)

// durationRe matches the compact ISO-8601 durations the Data API returns
// for videos (PT#H#M#S with any component absent).
var durationRe = regexp.MustCompile(`^PT(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?$`)

// ParseDuration converts a PT#H#M#S duration string to total seconds.
// Absent components count as 0; malformed input yields 0.
func ParseDuration(s string) uint64 {
	m := durationRe.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	return component(m[1])*3600 + component(m[2])*60 + component(m[3])
}

func component(s string) uint64 {
	if s == "" {
		return 0
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
