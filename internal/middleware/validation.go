package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// Input length limits for request fields.
const (
	MaxURLLen   = 512
	MaxQueryLen = 200
)

// ErrorResponse is a helper that returns a standard API error response.
func ErrorResponse(c fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    code,
			"message": message,
		},
	})
}

// ValidateLookupInput checks a video/channel URL or lookup string.
func ValidateLookupInput(raw string) (string, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "url is required"
	}
	if len(raw) > MaxURLLen {
		return "", "url must be at most 512 characters"
	}
	return raw, ""
}

// ValidateQuery checks a search query string.
func ValidateQuery(q string) (string, string) {
	q = strings.TrimSpace(q)
	if q == "" {
		return "", "query is required"
	}
	if len(q) > MaxQueryLen {
		return "", "query must be at most 200 characters"
	}
	return q, ""
}

// ValidateFormat normalizes the response format field. Empty defaults to
// the structured JSON response.
func ValidateFormat(f string) (string, string) {
	f = strings.ToLower(strings.TrimSpace(f))
	switch f {
	case "":
		return "json", ""
	case "json", "csv":
		return f, ""
	}
	return "", "format must be \"json\" or \"csv\""
}
