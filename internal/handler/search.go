package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sahilphantom/youtube-research-tool/internal/export"
	"github.com/sahilphantom/youtube-research-tool/internal/middleware"
	"github.com/sahilphantom/youtube-research-tool/internal/model"
	"github.com/sahilphantom/youtube-research-tool/internal/service"
)

type SearchHandler struct {
	svc *service.SearchService
}

func NewSearchHandler(svc *service.SearchService) *SearchHandler {
	return &SearchHandler{svc: svc}
}

// Search handles POST /api/search-videos
func (h *SearchHandler) Search(c fiber.Ctx) error {
	var req model.SearchRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	query, errMsg := middleware.ValidateQuery(req.Query)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_INPUT", errMsg)
	}
	req.Query = query

	format, errMsg := middleware.ValidateFormat(req.Format)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_INPUT", errMsg)
	}

	results, err := h.svc.Search(c.Context(), req)
	if err != nil {
		return serviceError(c, err)
	}

	if format == "csv" {
		return sendCSV(c, export.ShapeSearchResults, req.Query, results)
	}
	return c.JSON(results)
}
