package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/multiroom/fsapi-go/pkg/wire"
)

func captureSlog(t *testing.T, event Event) map[string]any {
	t.Helper()
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	NewSlogAdapter(slog.New(handler)).Log(event)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse log output %q: %v", buf.String(), err)
	}
	return entry
}

func TestSlogAdapterLogsRequest(t *testing.T) {
	entry := captureSlog(t, Event{
		Timestamp:  time.Now(),
		ExchangeID: "ex-9",
		Direction:  DirectionOut,
		Category:   CategoryMessage,
		Host:       "10.0.0.5",
		Message: &MessageEvent{
			Type:      MessageTypeRequest,
			Operation: wire.OpSet,
			Resource:  "netremote.sys.audio.mute",
			Params:    map[string]string{"value": "1"},
		},
	})

	want := map[string]any{
		"msg":         "fsapi",
		"level":       "DEBUG",
		"exchange_id": "ex-9",
		"direction":   "OUT",
		"host":        "10.0.0.5",
		"msg_type":    "REQUEST",
		"operation":   "SET",
		"resource":    "netremote.sys.audio.mute",
		"param_value": "1",
	}
	for k, v := range want {
		if entry[k] != v {
			t.Errorf("%s: got %v, want %v", k, entry[k], v)
		}
	}
	if _, ok := entry["http_status"]; ok {
		t.Error("request should not carry http_status")
	}
}

func TestSlogAdapterLogsResponse(t *testing.T) {
	dur := 15 * time.Millisecond
	entry := captureSlog(t, Event{
		ExchangeID: "ex-9",
		Direction:  DirectionIn,
		Message: &MessageEvent{
			Type:       MessageTypeResponse,
			Operation:  wire.OpGet,
			Resource:   "netremote.sys.audio.volume",
			HTTPStatus: 200,
			Status:     wire.StatusOK,
			Duration:   &dur,
			BodySize:   90,
		},
	})

	if entry["status"] != "FS_OK" {
		t.Errorf("status: got %v", entry["status"])
	}
	if entry["http_status"] != float64(200) {
		t.Errorf("http_status: got %v", entry["http_status"])
	}
	if entry["body_size"] != float64(90) {
		t.Errorf("body_size: got %v", entry["body_size"])
	}
	if _, ok := entry["duration"]; !ok {
		t.Error("duration missing")
	}
}

func TestSlogAdapterLogsError(t *testing.T) {
	entry := captureSlog(t, Event{
		ExchangeID: "ex-10",
		Category:   CategoryError,
		Error: &ErrorEventData{
			Layer:   LayerTransport,
			Message: "connection refused",
			Context: "GET netremote.sys.power",
		},
	})

	if entry["category"] != "ERROR" {
		t.Errorf("category: got %v", entry["category"])
	}
	if entry["error_msg"] != "connection refused" {
		t.Errorf("error_msg: got %v", entry["error_msg"])
	}
	if entry["error_context"] != "GET netremote.sys.power" {
		t.Errorf("error_context: got %v", entry["error_context"])
	}
}

func TestSlogAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	NewSlogAdapter(slog.New(handler)).Log(Event{ExchangeID: "hidden"})
	if buf.Len() != 0 {
		t.Errorf("expected no output at info level, got %q", buf.String())
	}
}
