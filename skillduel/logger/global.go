package logger

import (
	"log/slog"
	"time"
)

// LogAPICall logs a gateway round trip.
func LogAPICall(endpoint string, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "api"),
		slog.String("endpoint", endpoint),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("API call failed", append(attrs, slog.Any("error", err))...)
	} else {
		slog.Debug("API call completed", attrs...)
	}
}

// LogSync logs a challenge sync run.
func LogSync(bindings int, duration time.Duration, err error) {
	attrs := []any{
		slog.String("type", "sync"),
		slog.Int("bindings", bindings),
		slog.Duration("took", duration),
	}

	if err != nil {
		slog.Error("Challenge sync failed", append(attrs, slog.Any("error", err))...)
	} else {
		slog.Info("Challenge sync completed", attrs...)
	}
}

// LogDivergence records an optimistic local mutation whose server write
// failed. These are intentional (local-truth, server-best-effort) but
// must stay visible in the logs.
func LogDivergence(operation string, subject string, err error) {
	slog.Warn("Local state diverged from server",
		slog.String("type", "store"),
		slog.String("operation", operation),
		slog.String("subject", subject),
		slog.Any("error", err))
}
