package config

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/log"
)

// NewLogger returns an slog logger backed by a charm log handler.
// Unknown level names fall back to info.
func NewLogger(w io.Writer, level string) *slog.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	handler := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           lvl,
	})
	return slog.New(handler)
}
