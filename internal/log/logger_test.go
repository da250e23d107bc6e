package log

import (
	"testing"
	"time"
)

func TestAppendAndReadAll(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger failed: %v", err)
	}

	events := []LogEvent{
		{Event: EventRunStarted, RunID: "run-1"},
		{Event: EventChamberPassed, Player: "Ada", Chamber: 2},
		{Event: EventEliminated, Player: "Ada", Reason: "wrong witness", Seconds: 42},
	}
	for _, e := range events {
		if err := logger.Append(e); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	read, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(read) != len(events) {
		t.Fatalf("read %d events, want %d", len(read), len(events))
	}
	if read[1].Chamber != 2 || read[1].Player != "Ada" {
		t.Errorf("event 1 = %+v, fields lost in round trip", read[1])
	}
	if read[2].Reason != "wrong witness" {
		t.Errorf("reason = %q, want %q", read[2].Reason, "wrong witness")
	}
	for i, e := range read {
		if e.Time.IsZero() {
			t.Errorf("event %d has no timestamp", i)
		}
	}
}

func TestAppendKeepsExplicitTime(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	stamp := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	if err := logger.Append(LogEvent{Time: stamp, Event: EventVictory}); err != nil {
		t.Fatal(err)
	}

	read, err := logger.ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if !read[0].Time.Equal(stamp) {
		t.Errorf("time = %v, want %v", read[0].Time, stamp)
	}
}

func TestReadAllMissingFile(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll on missing file failed: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("got %d events from missing file, want 0", len(events))
	}
}
