package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/sahilphantom/youtube-research-tool/internal/export"
	"github.com/sahilphantom/youtube-research-tool/internal/middleware"
	"github.com/sahilphantom/youtube-research-tool/internal/service"
)

// serviceError maps a pipeline error to the API error envelope.
func serviceError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, service.ErrNotFound):
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "NOT_FOUND", err.Error())
	case errors.Is(err, service.ErrConfiguration):
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "CONFIGURATION_ERROR", err.Error())
	case errors.Is(err, service.ErrUpstream):
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "UPSTREAM_ERROR", err.Error())
	default:
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "Unexpected error")
	}
}

// sendCSV serves the tabular rendering of a result as a file download.
func sendCSV(c fiber.Ctx, shape, query string, payload any) error {
	Metrics.CSVExports.WithLabelValues(shape).Inc()
	c.Set("Content-Type", "text/csv; charset=utf-8")
	c.Set("Content-Disposition", "attachment; filename="+export.Filename(shape, query))
	return c.SendString(export.Render(shape, payload))
}
