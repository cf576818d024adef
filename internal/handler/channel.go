package handler

import (
	"strings"

	"github.com/gofiber/fiber/v3"

	"github.com/sahilphantom/youtube-research-tool/internal/export"
	"github.com/sahilphantom/youtube-research-tool/internal/middleware"
	"github.com/sahilphantom/youtube-research-tool/internal/model"
	"github.com/sahilphantom/youtube-research-tool/internal/service"
)

type ChannelHandler struct {
	svc *service.ChannelService
}

func NewChannelHandler(svc *service.ChannelService) *ChannelHandler {
	return &ChannelHandler{svc: svc}
}

// Analyze handles POST /api/channel-analysis
func (h *ChannelHandler) Analyze(c fiber.Ctx) error {
	var req model.ChannelAnalysisRequest
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

	shape, errMsg := exportShape(req.ExportType)
	if errMsg != "" {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "INVALID_INPUT", errMsg)
	}

	analysis, err := h.svc.Analyze(c.Context(), rawURL)
	if err != nil {
		return serviceError(c, err)
	}

	if format == "csv" {
		return sendCSV(c, shape, analysis.ChannelID, analysis)
	}
	return c.JSON(analysis)
}

// exportShape maps the optional exportType field to a CSV shape tag. Only the
// derived channel views are selectable; the default is the summary row.
func exportShape(exportType string) (string, string) {
	switch strings.ToLower(strings.TrimSpace(exportType)) {
	case "", export.ShapeChannelAnalysis:
		return export.ShapeChannelAnalysis, ""
	case export.ShapeTopVideos:
		return export.ShapeTopVideos, ""
	case export.ShapeOutlierVideos:
		return export.ShapeOutlierVideos, ""
	}
	return "", "exportType must be \"channel-analysis\", \"top-videos\" or \"outlier-videos\""
}
