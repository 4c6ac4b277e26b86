// Package commands implements the fsapi-log CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/multiroom/fsapi-go/pkg/log"
)

// ViewOptions controls the view command.
type ViewOptions struct {
	Filter log.Filter

	// ShowBody prints captured response bodies.
	ShowBody bool
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event, showBody bool) {
	// Header line: timestamp [ex:id] DIRECTION LAYER Type
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z")
	exID := shortenID(event.ExchangeID)

	var typeLabel string
	switch {
	case event.Message != nil:
		typeLabel = event.Message.Type.String()
	case event.Error != nil:
		typeLabel = "ERROR"
	default:
		typeLabel = "UNKNOWN"
	}

	fmt.Fprintf(w, "%s [ex:%s] %-3s %s %s", ts, exID, event.Direction, event.Layer, typeLabel)
	if event.Host != "" {
		fmt.Fprintf(w, " %s", event.Host)
	}
	fmt.Fprintln(w)

	switch {
	case event.Message != nil:
		formatMessageDetails(w, event.Message, showBody)
	case event.Error != nil:
		formatErrorDetails(w, event.Error)
	}

	fmt.Fprintln(w)
}

// shortenID returns the first 8 characters of an exchange ID.
func shortenID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

func formatMessageDetails(w io.Writer, msg *log.MessageEvent, showBody bool) {
	target := msg.Resource
	if msg.Item != "" {
		target += "/" + msg.Item
	}
	fmt.Fprintf(w, "  %s %s\n", msg.Operation, target)

	if len(msg.Params) > 0 {
		keys := make([]string, 0, len(msg.Params))
		for k := range msg.Params {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = k + "=" + msg.Params[k]
		}
		fmt.Fprintf(w, "  Params: %s\n", strings.Join(parts, " "))
	}

	if msg.Type == log.MessageTypeResponse {
		fmt.Fprintf(w, "  Status: %s (HTTP %d)\n", msg.Status, msg.HTTPStatus)
		if msg.Duration != nil {
			fmt.Fprintf(w, "  Duration: %s\n", formatDuration(*msg.Duration))
		}
		fmt.Fprintf(w, "  Size: %d bytes\n", msg.BodySize)
		if showBody && len(msg.Body) > 0 {
			fmt.Fprintf(w, "  Body: %s", msg.Body)
			if msg.Truncated {
				fmt.Fprint(w, " (truncated)")
			}
			fmt.Fprintln(w)
		}
	}
}

func formatErrorDetails(w io.Writer, e *log.ErrorEventData) {
	fmt.Fprintf(w, "  Layer: %s\n", e.Layer)
	fmt.Fprintf(w, "  Message: %s\n", e.Message)
	if e.Context != "" {
		fmt.Fprintf(w, "  Context: %s\n", e.Context)
	}
}

// formatDuration formats a duration for display.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%.3fus", float64(d.Nanoseconds())/1000)
	}
	if d < time.Second {
		return fmt.Sprintf("%.3fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.3fs", d.Seconds())
}

// ParseLayerFlag parses a layer name (case-insensitive).
func ParseLayerFlag(s string) (log.Layer, error) {
	switch strings.ToLower(s) {
	case "transport":
		return log.LayerTransport, nil
	case "wire":
		return log.LayerWire, nil
	default:
		return 0, fmt.Errorf("invalid layer: %s (must be transport or wire)", s)
	}
}

// ParseDirectionFlag parses a direction name (case-insensitive).
func ParseDirectionFlag(s string) (log.Direction, error) {
	switch strings.ToLower(s) {
	case "in":
		return log.DirectionIn, nil
	case "out":
		return log.DirectionOut, nil
	default:
		return 0, fmt.Errorf("invalid direction: %s (must be in or out)", s)
	}
}

// ParseCategoryFlag parses a category name (case-insensitive).
func ParseCategoryFlag(s string) (log.Category, error) {
	switch strings.ToLower(s) {
	case "message":
		return log.CategoryMessage, nil
	case "error":
		return log.CategoryError, nil
	default:
		return 0, fmt.Errorf("invalid category: %s (must be message or error)", s)
	}
}

// RunView prints every event of the log file that matches the filter.
func RunView(path string, opts ViewOptions, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, opts.Filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		formatEvent(output, event, opts.ShowBody)
	}
}
