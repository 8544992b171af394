// Package logging configures the process-wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/log"
)

// New returns a slog logger backed by charmbracelet/log. Production output is
// JSON; everything else is human readable text. Unknown levels fall back to info.
func New(w io.Writer, level string, production bool) *slog.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}

	formatter := log.TextFormatter
	if production {
		formatter = log.JSONFormatter
	}

	handler := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		TimeFormat:      time.RFC3339,
		ReportTimestamp: true,
		TimeFunction:    log.NowUTC,
		Formatter:       formatter,
	})

	return slog.New(handler)
}
