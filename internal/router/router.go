package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/sahilphantom/youtube-research-tool/internal/handler"
	"github.com/sahilphantom/youtube-research-tool/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Video   *handler.VideoHandler
	Channel *handler.ChannelHandler
	Search  *handler.SearchHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
// rdb may be nil; rate limiters then count in-memory.
func Setup(app *fiber.App, h *Handlers, corsOrigins string, rdb *redis.Client) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Probes and metrics (before API group, not rate limited)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)
	app.Get("/metrics", handler.MetricsHandler())

	// API routes
	api := app.Group("/api")

	api.Get("/health", h.Health.Status)

	api.Post("/video-info", h.Video.Info, middleware.NewVideoInfoRateLimiter(rdb).Handler())
	api.Post("/channel-analysis", h.Channel.Analyze, middleware.NewChannelAnalysisRateLimiter(rdb).Handler())
	api.Post("/search-videos", h.Search.Search, middleware.NewSearchRateLimiter(rdb).Handler())
}
