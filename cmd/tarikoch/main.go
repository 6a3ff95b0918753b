package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eyoab/tarikoch/internal/api/rest"
	"github.com/eyoab/tarikoch/internal/app"
	"github.com/eyoab/tarikoch/internal/cache"
	"github.com/eyoab/tarikoch/internal/config"
	"github.com/eyoab/tarikoch/internal/content"
	"github.com/eyoab/tarikoch/internal/feed"
	"github.com/eyoab/tarikoch/internal/newsletter"
)

func main() {
	logger := app.Logger()
	slog.SetDefault(logger)

	// Create a cancellable context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info("Received first shutdown signal, starting graceful shutdown...")
		cancel()

		// If we receive a second signal, exit immediately
		<-sigChan
		logger.Info("Received second shutdown signal, exiting immediately...")
		os.Exit(1)
	}()

	cfg, err := config.Load()

	if err != nil {
		logger.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	registry, err := config.LoadRegistry(cfg.RegistryPath)

	if err != nil {
		logger.Error("Failed to load the category registry", "error", err)
		os.Exit(1)
	}

	posts, err := content.NewLoader(cfg.ContentDir).Load()

	if err != nil {
		logger.Error("Failed to load content", "error", err)
		os.Exit(1)
	}

	// One Redis connection backs both the feed cache and the
	// subscriber store
	redisCache, err := cache.NewRedisCache(ctx, cfg.RedisAddr)

	if err != nil {
		logger.Error("Failed to connect to Redis", "error", err)
		os.Exit(1)
	}

	defer redisCache.Close()

	store := newsletter.NewRedisStore(redisCache.Client())

	var mailer newsletter.Mailer = newsletter.NewLogMailer()

	if cfg.Mail.APIKey != "" {
		mailer = newsletter.NewHTTPMailer(cfg.Mail.Endpoint, cfg.Mail.APIKey, cfg.Mail.From)
	}

	generator := &feed.Generator{Site: feed.Site{
		URL:         cfg.Site.URL,
		Title:       cfg.Site.Title,
		Description: cfg.Site.Description,
	}}

	// Initialize and run the HTTP server
	server := rest.NewServer(rest.Options{
		Posts:      posts,
		Registry:   registry,
		Cache:      redisCache,
		Generator:  generator,
		Newsletter: newsletter.NewService(store, mailer),
		Port:       cfg.Port,
		PageSize:   cfg.Listing.PageSize,
		FeedTTL:    time.Duration(cfg.Feed.CacheTTLMinutes) * time.Minute,
		RatePerMin: cfg.RateLimit.PerMinute,
		RateBurst:  cfg.RateLimit.Burst,
	})

	if err := server.Run(ctx); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}

	logger.Info("Server exited gracefully")
}
