package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/eyoab/tarikoch/internal/app"
	"github.com/eyoab/tarikoch/internal/metrics"
	"github.com/eyoab/tarikoch/internal/newsletter"
)

// Subscriber is the newsletter operation surface the handler needs.
type Subscriber interface {
	Subscribe(ctx context.Context, email string) error
	Unsubscribe(ctx context.Context, email string) error
}

// NewsletterHandler handles subscribe/unsubscribe routes.
type NewsletterHandler struct {
	service Subscriber
	logger  *slog.Logger
}

// NewNewsletterHandler creates the handler and sets up its routes on mux.
// Wrap selects the middleware (rate limiting) applied to both routes.
func NewNewsletterHandler(mux *http.ServeMux, service Subscriber, wrap func(http.Handler) http.Handler) *NewsletterHandler {
	handler := &NewsletterHandler{
		service: service,
		logger:  app.Logger(),
	}

	if wrap == nil {
		wrap = func(next http.Handler) http.Handler { return next }
	}

	mux.Handle("POST /api/newsletter/subscribe", wrap(http.HandlerFunc(handler.Subscribe)))
	mux.Handle("POST /api/newsletter/unsubscribe", wrap(http.HandlerFunc(handler.Unsubscribe)))

	return handler
}

type emailRequest struct {
	Email string `json:"email"`
}

// Subscribe records a new newsletter subscriber.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	email, ok := h.readEmail(w, r)

	if !ok {
		return
	}

	if err := h.service.Subscribe(r.Context(), email); err != nil {
		h.writeServiceError(w, err)
		return
	}

	metrics.NewsletterEvents.WithLabelValues("subscribe").Inc()

	writeJSON(w, http.StatusOK, map[string]string{"status": "subscribed"})
}

// Unsubscribe removes a subscriber. Unknown addresses succeed silently.
func (h *NewsletterHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	email, ok := h.readEmail(w, r)

	if !ok {
		return
	}

	if err := h.service.Unsubscribe(r.Context(), email); err != nil {
		h.writeServiceError(w, err)
		return
	}

	metrics.NewsletterEvents.WithLabelValues("unsubscribe").Inc()

	writeJSON(w, http.StatusOK, map[string]string{"status": "unsubscribed"})
}

func (h *NewsletterHandler) readEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	var req emailRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("invalid request body"), http.StatusBadRequest)
		return "", false
	}

	if req.Email == "" {
		writeError(w, fmt.Errorf("email is required"), http.StatusBadRequest)
		return "", false
	}

	return req.Email, true
}

func (h *NewsletterHandler) writeServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, newsletter.ErrInvalidEmail) {
		writeError(w, err, http.StatusBadRequest)
		return
	}

	writeError(w, err, http.StatusInternalServerError)
}
