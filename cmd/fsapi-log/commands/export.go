package commands

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/multiroom/fsapi-go/pkg/log"
)

// RunExport exports matching events as jsonl or csv to output, or stdout
// when output is empty.
func RunExport(path, format, output string, filter log.Filter) error {
	if format != "jsonl" && format != "csv" {
		return fmt.Errorf("unknown format: %s (supported: jsonl, csv)", format)
	}

	reader, err := log.NewFilteredReader(path, filter)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	var w io.Writer = os.Stdout
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if format == "csv" {
		return exportCSV(reader, w)
	}
	return exportJSONL(reader, w)
}

func exportJSONL(reader *log.Reader, w io.Writer) error {
	encoder := json.NewEncoder(w)
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := encoder.Encode(event); err != nil {
			return fmt.Errorf("failed to encode event: %w", err)
		}
	}
}

var csvHeader = []string{
	"timestamp", "exchange_id", "direction", "layer", "category", "host",
	"type", "operation", "resource", "item", "status", "http_status", "duration_us", "error",
}

func exportCSV(reader *log.Reader, w io.Writer) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}
		if err := cw.Write(csvRow(event)); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(event log.Event) []string {
	row := []string{
		event.Timestamp.UTC().Format("2006-01-02T15:04:05.000000Z"),
		event.ExchangeID,
		event.Direction.String(),
		event.Layer.String(),
		event.Category.String(),
		event.Host,
		"", "", "", "", "", "", "", "",
	}
	switch {
	case event.Message != nil:
		m := event.Message
		row[6] = m.Type.String()
		row[7] = m.Operation.String()
		row[8] = m.Resource
		row[9] = m.Item
		if m.Status != "" {
			row[10] = m.Status.String()
		}
		if m.HTTPStatus != 0 {
			row[11] = strconv.Itoa(m.HTTPStatus)
		}
		if m.Duration != nil {
			row[12] = strconv.FormatInt(m.Duration.Microseconds(), 10)
		}
	case event.Error != nil:
		row[6] = "ERROR"
		row[13] = event.Error.Message
	}
	return row
}
