package commands

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/multiroom/fsapi-go/pkg/log"
	"github.com/multiroom/fsapi-go/pkg/wire"
)

var testBase = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func writeLog(t *testing.T, events []log.Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test"+log.FileExtension)

	logger, err := log.NewFileLogger(path)
	if err != nil {
		t.Fatalf("failed to create log: %v", err)
	}
	for _, e := range events {
		logger.Log(e)
	}
	if err := logger.Close(); err != nil {
		t.Fatalf("failed to close log: %v", err)
	}
	return path
}

func durationPtr(d time.Duration) *time.Duration {
	return &d
}

// fixtureEvents returns a GET volume exchange, a SET power exchange and a
// failed LIST exchange.
func fixtureEvents() []log.Event {
	return []log.Event{
		{
			Timestamp: testBase, ExchangeID: "aaaaaaaa-1111", Direction: log.DirectionOut, Host: "kitchen",
			Message: &log.MessageEvent{Type: log.MessageTypeRequest, Operation: wire.OpGet, Resource: "netremote.sys.audio.volume"},
		},
		{
			Timestamp: testBase.Add(20 * time.Millisecond), ExchangeID: "aaaaaaaa-1111", Direction: log.DirectionIn, Host: "kitchen",
			Message: &log.MessageEvent{
				Type: log.MessageTypeResponse, Operation: wire.OpGet, Resource: "netremote.sys.audio.volume",
				HTTPStatus: 200, Status: wire.StatusOK, Duration: durationPtr(20 * time.Millisecond),
				BodySize: 80, Body: []byte("<fsapiResponse><status>FS_OK</status></fsapiResponse>"),
			},
		},
		{
			Timestamp: testBase.Add(time.Second), ExchangeID: "bbbbbbbb-2222", Direction: log.DirectionOut, Host: "kitchen",
			Message: &log.MessageEvent{
				Type: log.MessageTypeRequest, Operation: wire.OpSet, Resource: "netremote.sys.power",
				Params: map[string]string{"value": "1"},
			},
		},
		{
			Timestamp: testBase.Add(time.Second + 40*time.Millisecond), ExchangeID: "bbbbbbbb-2222", Direction: log.DirectionIn, Host: "kitchen",
			Message: &log.MessageEvent{
				Type: log.MessageTypeResponse, Operation: wire.OpSet, Resource: "netremote.sys.power",
				HTTPStatus: 200, Status: wire.StatusFail, Duration: durationPtr(40 * time.Millisecond),
			},
		},
		{
			Timestamp: testBase.Add(2 * time.Second), ExchangeID: "cccccccc-3333", Direction: log.DirectionOut, Host: "lounge",
			Message: &log.MessageEvent{
				Type: log.MessageTypeRequest, Operation: wire.OpListGetNext, Resource: "netremote.nav.presets", Item: "-1",
				Params: map[string]string{"maxItems": "7"},
			},
		},
		{
			Timestamp: testBase.Add(3 * time.Second), ExchangeID: "cccccccc-3333", Direction: log.DirectionIn,
			Layer: log.LayerTransport, Category: log.CategoryError, Host: "lounge",
			Error: &log.ErrorEventData{Layer: log.LayerTransport, Message: "context deadline exceeded", Context: "LIST_GET_NEXT netremote.nav.presets/-1"},
		},
	}
}
