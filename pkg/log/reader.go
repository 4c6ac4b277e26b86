package log

import (
	"errors"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/multiroom/fsapi-go/pkg/wire"
)

// Filter selects events from a log. Zero-valued criteria match everything.
type Filter struct {
	// ExchangeID matches a single request/response pair.
	ExchangeID string

	Direction *Direction
	Layer     *Layer
	Category  *Category

	// TimeStart matches events at or after this time.
	TimeStart *time.Time

	// TimeEnd matches events strictly before this time.
	TimeEnd *time.Time

	// Host matches the speaker address exactly.
	Host string

	// Resource matches message events whose resource path starts with
	// this prefix, case-insensitively. Error events never match.
	Resource string

	// Operation matches message events with this operation.
	Operation wire.Operation
}

// Matches reports whether the event satisfies every criterion.
func (f *Filter) Matches(event Event) bool {
	if f.ExchangeID != "" && event.ExchangeID != f.ExchangeID {
		return false
	}
	if f.Direction != nil && event.Direction != *f.Direction {
		return false
	}
	if f.Layer != nil && event.Layer != *f.Layer {
		return false
	}
	if f.Category != nil && event.Category != *f.Category {
		return false
	}
	if f.TimeStart != nil && event.Timestamp.Before(*f.TimeStart) {
		return false
	}
	if f.TimeEnd != nil && !event.Timestamp.Before(*f.TimeEnd) {
		return false
	}
	if f.Host != "" && event.Host != f.Host {
		return false
	}
	if f.Resource != "" {
		if event.Message == nil {
			return false
		}
		if !strings.HasPrefix(strings.ToLower(event.Message.Resource), strings.ToLower(f.Resource)) {
			return false
		}
	}
	if f.Operation != "" {
		if event.Message == nil || event.Message.Operation != f.Operation {
			return false
		}
	}
	return true
}

// Reader streams events from a protocol log file.
type Reader struct {
	file    *os.File
	decoder *cbor.Decoder
	filter  Filter
}

// NewReader opens a log file and reads every event.
func NewReader(path string) (*Reader, error) {
	return NewFilteredReader(path, Filter{})
}

// NewFilteredReader opens a log file and reads only events matching filter.
func NewFilteredReader(path string, filter Filter) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &Reader{
		file:    f,
		decoder: NewDecoder(f),
		filter:  filter,
	}, nil
}

// Next returns the next matching event, or io.EOF at the end of the file.
func (r *Reader) Next() (Event, error) {
	for {
		var event Event
		if err := r.decoder.Decode(&event); err != nil {
			if errors.Is(err, io.EOF) {
				return Event{}, io.EOF
			}
			return Event{}, err
		}
		if r.filter.Matches(event) {
			return event, nil
		}
	}
}

// ReadAll drains the reader.
func (r *Reader) ReadAll() ([]Event, error) {
	var events []Event
	for {
		event, err := r.Next()
		if errors.Is(err, io.EOF) {
			return events, nil
		}
		if err != nil {
			return events, err
		}
		events = append(events, event)
	}
}

// Close closes the underlying file.
func (r *Reader) Close() error {
	return r.file.Close()
}
