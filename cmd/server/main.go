package main

import (
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/sahilphantom/youtube-research-tool/internal/config"
	"github.com/sahilphantom/youtube-research-tool/internal/handler"
	"github.com/sahilphantom/youtube-research-tool/internal/middleware"
	"github.com/sahilphantom/youtube-research-tool/internal/router"
	"github.com/sahilphantom/youtube-research-tool/internal/service"
	"github.com/sahilphantom/youtube-research-tool/internal/youtube"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "youtube-research-tool")
	if cfg.YouTubeAPIKey == "" {
		middleware.Logger.Warn().Msg("YOUTUBE_API_KEY is not set, all lookups will fail")
	}

	rdb := middleware.NewRedisClient(cfg.RedisURL)
	handler.InitMetrics()

	yt := youtube.NewClient(cfg.YouTubeAPIKey)

	videoSvc := service.NewVideoService(yt)
	channelSvc := service.NewChannelService(yt)
	searchSvc := service.NewSearchService(yt)

	app := fiber.New(fiber.Config{
		AppName:      "YouTube Research Tool API",
		ServerHeader: "youtube-research-tool",
	})

	h := &router.Handlers{
		Video:   handler.NewVideoHandler(videoSvc),
		Channel: handler.NewChannelHandler(channelSvc),
		Search:  handler.NewSearchHandler(searchSvc),
		Health:  handler.NewHealthHandler(cfg.YouTubeAPIKey != "", rdb),
	}
	router.Setup(app, h, cfg.CORSOrigins, rdb)

	log.Printf("YouTube research backend starting on :%s (env=%s)", cfg.Port, cfg.Environment)
	log.Fatal(app.Listen(":" + cfg.Port))
}
