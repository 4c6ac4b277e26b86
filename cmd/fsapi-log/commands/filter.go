package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/multiroom/fsapi-go/pkg/log"
	"github.com/multiroom/fsapi-go/pkg/wire"
)

// FilterOptions holds the textual filter flags shared by all commands.
type FilterOptions struct {
	ExchangeID string
	Host       string
	Resource   string
	Operation  string
	TimeStart  string
	TimeEnd    string
	Layer      string
	Direction  string
	Category   string
}

// Build converts the options into a log.Filter.
func (o FilterOptions) Build() (log.Filter, error) {
	filter := log.Filter{
		ExchangeID: o.ExchangeID,
		Host:       o.Host,
		Resource:   o.Resource,
	}

	if o.Operation != "" {
		op := wire.Operation(strings.ToUpper(o.Operation))
		if !op.IsValid() {
			return log.Filter{}, fmt.Errorf("invalid operation: %s (must be GET, SET or LIST_GET_NEXT)", o.Operation)
		}
		filter.Operation = op
	}

	if o.TimeStart != "" {
		t, err := time.Parse(time.RFC3339, o.TimeStart)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-start format: %w", err)
		}
		filter.TimeStart = &t
	}

	if o.TimeEnd != "" {
		t, err := time.Parse(time.RFC3339, o.TimeEnd)
		if err != nil {
			return log.Filter{}, fmt.Errorf("invalid time-end format: %w", err)
		}
		filter.TimeEnd = &t
	}

	if o.Layer != "" {
		l, err := ParseLayerFlag(o.Layer)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Layer = &l
	}

	if o.Direction != "" {
		d, err := ParseDirectionFlag(o.Direction)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Direction = &d
	}

	if o.Category != "" {
		c, err := ParseCategoryFlag(o.Category)
		if err != nil {
			return log.Filter{}, err
		}
		filter.Category = &c
	}

	return filter, nil
}

// RunFilter copies matching events into a new log file and returns the count.
func RunFilter(path, output string, filter log.Filter) (int, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return 0, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	logger, err := log.NewFileLogger(output)
	if err != nil {
		return 0, fmt.Errorf("failed to create output logger: %w", err)
	}
	defer logger.Close()

	count := 0
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return count, nil
		}
		if err != nil {
			return count, fmt.Errorf("failed to read event: %w", err)
		}
		logger.Log(event)
		count++
	}
}
