package logging

import (
	"log/slog"
	"os"
)

// Setup creates a configured *slog.Logger writing to stderr, sets it as the
// default, and returns it. verbose enables debug-level output.
func Setup(verbose bool) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: lvl,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
