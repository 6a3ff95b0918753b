// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// HTTPRequests counts served requests by path pattern and status.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_http_requests_total",
		Help: "Number of HTTP requests served.",
	}, []string{"path", "status"})

	// FeedCache counts feed/sitemap cache hits and misses.
	FeedCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_feed_cache_total",
		Help: "Feed cache lookups by outcome.",
	}, []string{"status"})

	// NewsletterEvents counts newsletter subscribes and unsubscribes.
	NewsletterEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blog_newsletter_events_total",
		Help: "Newsletter events by type.",
	}, []string{"event"})
)

// Handler returns the /metrics endpoint handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
