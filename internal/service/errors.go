package service

import (
	"errors"
	"fmt"

	"github.com/sahilphantom/youtube-research-tool/internal/youtube"
)

// Error taxonomy surfaced to the HTTP layer. Every pipeline failure wraps
// exactly one of these sentinels; handlers map them to status codes with
// errors.Is.
var (
	// ErrInvalidInput marks a missing or unparseable URL/query (user-correctable).
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound marks an identity that resolves to nothing.
	ErrNotFound = errors.New("not found")

	// ErrUpstream marks a failed YouTube API call or an API error body.
	ErrUpstream = errors.New("upstream error")

	// ErrConfiguration marks a missing upstream API credential.
	ErrConfiguration = errors.New("configuration error")
)

// classify translates a youtube client error into the service taxonomy,
// keeping the client's detail message.
func classify(op string, err error) error {
	switch {
	case errors.Is(err, youtube.ErrAPIKeyMissing):
		return fmt.Errorf("%w: %s: %v", ErrConfiguration, op, err)
	case errors.Is(err, youtube.ErrNoResults):
		return fmt.Errorf("%w: %s", ErrNotFound, op)
	default:
		return fmt.Errorf("%w: %s: %v", ErrUpstream, op, err)
	}
}
