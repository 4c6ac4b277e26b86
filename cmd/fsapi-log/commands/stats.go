package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/multiroom/fsapi-go/pkg/log"
	"github.com/multiroom/fsapi-go/pkg/wire"
)

// Stats holds aggregate statistics about a log file.
type Stats struct {
	TotalEvents int
	Exchanges   int
	Errors      int

	EventsByOperation map[wire.Operation]int
	ResponsesByStatus map[wire.Status]int
	Resources         map[string]*ResourceStats
	Hosts             map[string]int

	TimeRange struct {
		Start time.Time
		End   time.Time
	}
}

// ResourceStats holds per-resource response statistics.
type ResourceStats struct {
	Responses     int
	TotalDuration time.Duration
	MaxDuration   time.Duration
}

// Average returns the mean response duration.
func (r *ResourceStats) Average() time.Duration {
	if r.Responses == 0 {
		return 0
	}
	return r.TotalDuration / time.Duration(r.Responses)
}

// Collect reads the log file and aggregates statistics.
func Collect(path string, filter log.Filter) (*Stats, error) {
	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByOperation: make(map[wire.Operation]int),
		ResponsesByStatus: make(map[wire.Status]int),
		Resources:         make(map[string]*ResourceStats),
		Hosts:             make(map[string]int),
	}
	exchanges := make(map[string]bool)

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		if event.ExchangeID != "" {
			exchanges[event.ExchangeID] = true
		}
		if event.Host != "" {
			stats.Hosts[event.Host]++
		}

		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		if event.Error != nil {
			stats.Errors++
		}

		m := event.Message
		if m == nil {
			continue
		}
		if m.Type == log.MessageTypeRequest {
			stats.EventsByOperation[m.Operation]++
			continue
		}

		stats.ResponsesByStatus[m.Status]++
		rs, ok := stats.Resources[m.Resource]
		if !ok {
			rs = &ResourceStats{}
			stats.Resources[m.Resource] = rs
		}
		rs.Responses++
		if m.Duration != nil {
			rs.TotalDuration += *m.Duration
			if *m.Duration > rs.MaxDuration {
				rs.MaxDuration = *m.Duration
			}
		}
	}

	stats.Exchanges = len(exchanges)
	return stats, nil
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, filter log.Filter, w io.Writer) error {
	stats, err := Collect(path, filter)
	if err != nil {
		return err
	}
	printStats(w, stats)
	return nil
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== FSAPI Protocol Log Statistics ===")
	fmt.Fprintln(w)

	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintf(w, "Exchanges:    %d\n", stats.Exchanges)
	fmt.Fprintln(w)

	fmt.Fprintln(w, "Requests by Operation:")
	for _, op := range []wire.Operation{wire.OpGet, wire.OpSet, wire.OpListGetNext} {
		if count := stats.EventsByOperation[op]; count > 0 {
			fmt.Fprintf(w, "  %-16s %d\n", op.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	if len(stats.ResponsesByStatus) > 0 {
		fmt.Fprintln(w, "Responses by Status:")
		statuses := make([]string, 0, len(stats.ResponsesByStatus))
		for s := range stats.ResponsesByStatus {
			statuses = append(statuses, string(s))
		}
		sort.Strings(statuses)
		for _, s := range statuses {
			st := wire.Status(s)
			fmt.Fprintf(w, "  %-24s %d\n", st.String()+":", stats.ResponsesByStatus[st])
		}
		fmt.Fprintln(w)
	}

	if len(stats.Resources) > 0 {
		fmt.Fprintln(w, "Resources:")
		names := make([]string, 0, len(stats.Resources))
		for name := range stats.Resources {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			rs := stats.Resources[name]
			fmt.Fprintf(w, "  %s: %d responses, avg %s, max %s\n",
				name, rs.Responses, formatDuration(rs.Average()), formatDuration(rs.MaxDuration))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Hosts: %d\n", len(stats.Hosts))

	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
