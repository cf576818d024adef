package handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/sahilphantom/youtube-research-tool/internal/export"
	"github.com/sahilphantom/youtube-research-tool/internal/middleware"
	"github.com/sahilphantom/youtube-research-tool/internal/model"
	"github.com/sahilphantom/youtube-research-tool/internal/service"
)

type VideoHandler struct {
	svc *service.VideoService
}

func NewVideoHandler(svc *service.VideoService) *VideoHandler {
	return &VideoHandler{svc: svc}
}

// Info handles POST /api/video-info
func (h *VideoHandler) Info(c fiber.Ctx) error {
	var req model.VideoInfoRequest
	if err := c.Bind().JSON(&req); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_BODY", "Invalid request body")
	}

	rawURL, errMsg := middleware.ValidateLookupInput(req.URL)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_INPUT", errMsg)
	}

	format, errMsg := middleware.ValidateFormat(req.Format)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_INPUT", errMsg)
	}

	video, err := h.svc.Lookup(c.Context(), rawURL)
	if err != nil {
		return serviceError(c, err)
	}

	if format == "csv" {
		return sendCSV(c, export.ShapeVideoInfo, video.VideoID, video)
	}
	return c.JSON(video)
}
