package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/eyoab/tarikoch/internal/app"
	"github.com/eyoab/tarikoch/internal/cache"
	"github.com/eyoab/tarikoch/internal/entity"
	"github.com/eyoab/tarikoch/internal/metrics"
)

// FeedGenerator renders syndication output over the post collection.
type FeedGenerator interface {
	Generate(posts []entity.Post, format string) ([]byte, error)
	Sitemap(posts []entity.Post) ([]byte, error)
}

// FeedsHandler serves the RSS/Atom feeds and the sitemap, cached in
// Redis.
type FeedsHandler struct {
	cache     cache.Cache
	generator FeedGenerator
	posts     []entity.Post
	ttl       time.Duration
	logger    *slog.Logger
}

// NewFeedsHandler creates the handler and sets up its routes on mux.
func NewFeedsHandler(mux *http.ServeMux, c cache.Cache, g FeedGenerator, posts []entity.Post, ttl time.Duration) *FeedsHandler {
	handler := &FeedsHandler{
		cache:     c,
		generator: g,
		posts:     posts,
		ttl:       ttl,
		logger:    app.Logger(),
	}

	mux.HandleFunc("GET /feed.xml", handler.GetRSS)
	mux.HandleFunc("GET /feed.atom", handler.GetAtom)
	mux.HandleFunc("GET /sitemap.xml", handler.GetSitemap)

	return handler
}

// GetRSS serves the RSS feed.
func (h *FeedsHandler) GetRSS(w http.ResponseWriter, r *http.Request) {
	h.serveGenerated(w, r, "feed:rss", "application/rss+xml", func() ([]byte, error) {
		return h.generator.Generate(h.posts, entity.FormatRSS)
	})
}

// GetAtom serves the Atom feed.
func (h *FeedsHandler) GetAtom(w http.ResponseWriter, r *http.Request) {
	h.serveGenerated(w, r, "feed:atom", "application/atom+xml", func() ([]byte, error) {
		return h.generator.Generate(h.posts, entity.FormatAtom)
	})
}

// GetSitemap serves the sitemap.
func (h *FeedsHandler) GetSitemap(w http.ResponseWriter, r *http.Request) {
	h.serveGenerated(w, r, "feed:sitemap", "application/xml", func() ([]byte, error) {
		return h.generator.Sitemap(h.posts)
	})
}

// serveGenerated tries the cache first and falls back to generating.
func (h *FeedsHandler) serveGenerated(w http.ResponseWriter, r *http.Request, cacheKey, contentType string, generate func() ([]byte, error)) {
	if h.ttl > 0 {
		cached, err := h.cache.Get(r.Context(), cacheKey)

		if err == nil {
			metrics.FeedCache.WithLabelValues("hit").Inc()
			w.Header().Set("X-CACHE-STATUS", "HIT")
			h.serveContent(w, cached, contentType)
			return
		} else if err != cache.ErrCacheMiss {
			// Real error, not just cache miss
			h.logger.Error("Cache error", "error", err)
		}
	}

	metrics.FeedCache.WithLabelValues("miss").Inc()

	content, err := generate()

	if err != nil {
		writeError(w, err, http.StatusInternalServerError)
		return
	}

	if h.ttl > 0 {
		// Use background context for caching to avoid cancellation
		cacheCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.cache.Set(cacheCtx, cacheKey, content, h.ttl); err != nil {
			h.logger.Error("Failed to cache content", "error", err)
		}
	}

	w.Header().Set("X-CACHE-STATUS", "MISS")
	h.serveContent(w, content, contentType)
}

func (h *FeedsHandler) serveContent(w http.ResponseWriter, content []byte, contentType string) {
	w.Header().Set("Content-Type", contentType+"; charset=utf-8")

	if h.ttl > 0 {
		w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(h.ttl.Seconds())))
	} else {
		w.Header().Set("Cache-Control", "no-cache")
	}

	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(content); err != nil {
		h.logger.Error("Failed to write the response", "error", err)
	}
}
