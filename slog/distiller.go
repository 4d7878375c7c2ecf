package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/distill"
)

// Ensure LoggingDistiller implements distill.Distiller.
var _ distill.Distiller = (*LoggingDistiller)(nil)

// LoggingDistiller wraps a Distiller with logging.
type LoggingDistiller struct {
	next   distill.Distiller
	logger *slog.Logger
}

// NewLoggingDistiller creates a new LoggingDistiller.
func NewLoggingDistiller(next distill.Distiller, logger *slog.Logger) *LoggingDistiller {
	return &LoggingDistiller{next: next, logger: logger}
}

// Distill delegates to the wrapped distiller and logs a summary of the result.
func (d *LoggingDistiller) Distill(baseURL string, rawHTML string) (result *distill.Result) {
	defer func(begin time.Time) {
		d.logger.Info("distill",
			"url", baseURL,
			"bytes", len(rawHTML),
			"article", result != nil && result.Article != nil,
			"image", result != nil && result.Image != "",
			"duration", time.Since(begin),
		)
	}(time.Now())
	return d.next.Distill(baseURL, rawHTML)
}
