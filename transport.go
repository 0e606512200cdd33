package gpt3

import (
	"log/slog"
	"net/http"
	"time"
)

// loggingTransport is an [net/http.RoundTripper] that logs the outcome of
// every request it executes.
type loggingTransport struct {
	base   http.RoundTripper
	logger *slog.Logger
}

// withLoggingTransport returns a shallow copy of c whose transport logs to
// logger. The given client is left untouched, since it is often
// http.DefaultClient.
func withLoggingTransport(c *http.Client, logger *slog.Logger) *http.Client {
	base := c.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	clone := *c
	clone.Transport = &loggingTransport{base: base, logger: logger}
	return &clone
}

// RoundTrip implements the [net/http.RoundTripper] interface.
func (t *loggingTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	start := time.Now()

	attrs := []any{
		slog.String("method", r.Method),
		slog.String("url", r.URL.String()),
	}

	resp, err := t.base.RoundTrip(r)

	duration := time.Since(start)

	if err != nil {
		attrs = append(attrs,
			slog.String("error", err.Error()),
			slog.Duration("duration", duration),
		)
		t.logger.ErrorContext(r.Context(), "request failed", attrs...)
		return nil, err
	}

	attrs = append(attrs,
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", duration),
	)

	level := slog.LevelInfo
	if resp.StatusCode >= 400 {
		level = slog.LevelWarn
	}

	t.logger.Log(r.Context(), level, "request completed", attrs...)

	return resp, nil
}
