package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes conversion events to an slog.Logger.
// Useful for development when you want to see conversions in the console.
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter creates a new SlogAdapter that writes to the given slog.Logger.
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	return &SlogAdapter{logger: logger}
}

// Log writes the event to the slog logger at Debug level.
func (a *SlogAdapter) Log(event Event) {
	attrs := []slog.Attr{
		slog.String("session_id", event.SessionID),
		slog.String("operation", event.Operation.String()),
	}
	if event.Elapsed > 0 {
		attrs = append(attrs, slog.Duration("elapsed", event.Elapsed))
	}

	switch {
	case event.Parse != nil:
		attrs = append(attrs,
			slog.String("input", event.Parse.Input),
			slog.Int("pairs", len(event.Parse.Pairs)),
			slog.Float64("total", event.Parse.Total),
		)
		if event.Parse.Normalized != event.Parse.Input {
			attrs = append(attrs, slog.String("normalized", event.Parse.Normalized))
		}
		if len(event.Parse.Skipped) > 0 {
			attrs = append(attrs, slog.Int("skipped", len(event.Parse.Skipped)))
		}
		if event.Parse.Integer {
			attrs = append(attrs, slog.Bool("integer", true))
		}
	case event.Format != nil:
		attrs = append(attrs,
			slog.Float64("seconds", event.Format.Seconds),
			slog.Int("components", len(event.Format.Components)),
			slog.String("text", event.Format.Text),
		)
		if event.Format.YearsMax {
			attrs = append(attrs, slog.Bool("years_max", true))
		}
	}

	if event.Error != nil {
		attrs = append(attrs,
			slog.String("error_kind", event.Error.Kind.String()),
			slog.String("error_msg", event.Error.Message),
		)
		if event.Error.Input != "" {
			attrs = append(attrs, slog.String("error_input", event.Error.Input))
		}
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "conversion", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
