// Package logging holds the process-wide slog logger. The default is a text
// handler at info level on stderr; Configure or InitFromEnv swap it.
package logging

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync/atomic"
)

var def atomic.Pointer[slog.Logger]

func init() {
	def.Store(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})))
}

// Configure replaces the default logger. level is one of debug/info/warn/error
// (anything else means info); json selects the JSON handler.
func Configure(level string, json bool) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	var h slog.Handler
	if json {
		h = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		h = slog.NewTextHandler(os.Stderr, opts)
	}
	def.Store(slog.New(h))
}

// InitFromEnv configures logging from SLUICE_LOG_LEVEL and SLUICE_LOG_JSON.
func InitFromEnv() {
	json, _ := strconv.ParseBool(strings.TrimSpace(os.Getenv("SLUICE_LOG_JSON")))
	Configure(os.Getenv("SLUICE_LOG_LEVEL"), json)
}

// L returns the current default logger.
func L() *slog.Logger { return def.Load() }

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
