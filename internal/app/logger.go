package app

import (
	"context"
	"log/slog"
	"os"
	"sync"
	"time"
)

// Logger returns the logger singleton. LOG_LEVEL=debug enables debug
// output.
var Logger = sync.OnceValue(func() *slog.Logger {
	level := slog.LevelInfo

	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	baseHandler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	handler := &loggerHandler{handler: baseHandler}

	return slog.New(handler)
})

type loggerHandler struct {
	handler slog.Handler
}

func (h *loggerHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

func (h *loggerHandler) Handle(ctx context.Context, r slog.Record) error {
	// Convert the time to UTC and truncate microseconds
	r.Time = r.Time.UTC().Truncate(time.Second)
	return h.handler.Handle(ctx, r)
}

func (h *loggerHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &loggerHandler{handler: h.handler.WithAttrs(attrs)}
}

func (h *loggerHandler) WithGroup(name string) slog.Handler {
	return &loggerHandler{handler: h.handler.WithGroup(name)}
}
