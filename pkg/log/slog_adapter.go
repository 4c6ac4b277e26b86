package log

import (
	"context"
	"log/slog"
)

// SlogAdapter writes protocol events to an slog.Logger.
// Useful for development when you want to see exchanges in the console.
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
		slog.String("exchange_id", event.ExchangeID),
		slog.String("direction", event.Direction.String()),
		slog.String("layer", event.Layer.String()),
		slog.String("category", event.Category.String()),
	}

	if event.Host != "" {
		attrs = append(attrs, slog.String("host", event.Host))
	}

	switch {
	case event.Message != nil:
		m := event.Message
		attrs = append(attrs,
			slog.String("msg_type", m.Type.String()),
			slog.String("operation", m.Operation.String()),
			slog.String("resource", m.Resource),
		)
		if m.Item != "" {
			attrs = append(attrs, slog.String("item", m.Item))
		}
		for k, v := range m.Params {
			attrs = append(attrs, slog.String("param_"+k, v))
		}
		if m.HTTPStatus != 0 {
			attrs = append(attrs, slog.Int("http_status", m.HTTPStatus))
		}
		if m.Status != "" {
			attrs = append(attrs, slog.String("status", m.Status.String()))
		}
		if m.Duration != nil {
			attrs = append(attrs, slog.Duration("duration", *m.Duration))
		}
		if m.BodySize != 0 {
			attrs = append(attrs, slog.Int("body_size", m.BodySize))
		}
	case event.Error != nil:
		attrs = append(attrs,
			slog.String("error_layer", event.Error.Layer.String()),
			slog.String("error_msg", event.Error.Message),
			slog.String("error_context", event.Error.Context),
		)
	}

	a.logger.LogAttrs(context.Background(), slog.LevelDebug, "fsapi", attrs...)
}

// Compile-time interface satisfaction check.
var _ Logger = (*SlogAdapter)(nil)
