package commands

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/multiroom/fsapi-go/pkg/log"
	"github.com/multiroom/fsapi-go/pkg/wire"
)

func TestCollect(t *testing.T) {
	path := writeLog(t, fixtureEvents())

	stats, err := Collect(path, log.Filter{})
	if err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	if stats.TotalEvents != 6 {
		t.Errorf("TotalEvents = %d, want 6", stats.TotalEvents)
	}
	if stats.Exchanges != 3 {
		t.Errorf("Exchanges = %d, want 3", stats.Exchanges)
	}
	if stats.Errors != 1 {
		t.Errorf("Errors = %d, want 1", stats.Errors)
	}
	if stats.EventsByOperation[wire.OpGet] != 1 || stats.EventsByOperation[wire.OpSet] != 1 || stats.EventsByOperation[wire.OpListGetNext] != 1 {
		t.Errorf("EventsByOperation = %v", stats.EventsByOperation)
	}
	if stats.ResponsesByStatus[wire.StatusOK] != 1 || stats.ResponsesByStatus[wire.StatusFail] != 1 {
		t.Errorf("ResponsesByStatus = %v", stats.ResponsesByStatus)
	}
	if stats.Hosts["kitchen"] != 4 || stats.Hosts["lounge"] != 2 {
		t.Errorf("Hosts = %v", stats.Hosts)
	}

	volume := stats.Resources["netremote.sys.audio.volume"]
	if volume == nil || volume.Responses != 1 || volume.Average() != 20*time.Millisecond {
		t.Errorf("volume stats = %+v", volume)
	}
	if !stats.TimeRange.Start.Equal(testBase) || !stats.TimeRange.End.Equal(testBase.Add(3*time.Second)) {
		t.Errorf("TimeRange = %v .. %v", stats.TimeRange.Start, stats.TimeRange.End)
	}
}

func TestResourceStatsAverageEmpty(t *testing.T) {
	var rs ResourceStats
	if rs.Average() != 0 {
		t.Errorf("Average = %v", rs.Average())
	}
}

func TestRunStats(t *testing.T) {
	path := writeLog(t, fixtureEvents())

	var buf bytes.Buffer
	if err := RunStats(path, log.Filter{}, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	output := buf.String()

	for _, want := range []string{
		"Total Events: 6",
		"Exchanges:    3",
		"LIST_GET_NEXT:",
		"FS_FAIL:",
		"netremote.sys.power: 1 responses",
		"Hosts: 2",
		"Errors: 1",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output, got: %s", want, output)
		}
	}
}

func TestRunStatsEmptyLog(t *testing.T) {
	path := writeLog(t, nil)

	var buf bytes.Buffer
	if err := RunStats(path, log.Filter{}, &buf); err != nil {
		t.Fatalf("RunStats failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Total Events: 0") {
		t.Errorf("unexpected output: %s", buf.String())
	}
	if strings.Contains(buf.String(), "Time Range") {
		t.Errorf("empty log should not print a time range: %s", buf.String())
	}
}
