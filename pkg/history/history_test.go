package history

import (
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndLastN(t *testing.T) {
	s := openTestStore(t)

	first := Entry{
		At:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Operation: "encrypt",
		Mode:      "both",
		Input:     "in.png",
		Output:    "out.png",
		Width:     640,
		Height:    480,
		Digest:    0xAB,
	}
	second := Entry{
		At:        time.Date(2026, 3, 1, 12, 5, 0, 0, time.UTC),
		Operation: "decrypt",
		Mode:      "both",
		Input:     "out.png",
		Output:    "restored.png",
		Width:     640,
		Height:    480,
		Digest:    0xCD,
	}
	if err := s.Record(first); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := s.Record(second); err != nil {
		t.Fatalf("Record: %v", err)
	}

	entries, err := s.LastN(10)
	if err != nil {
		t.Fatalf("LastN: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	// Chronological order: oldest first.
	if entries[0].Operation != "encrypt" || entries[1].Operation != "decrypt" {
		t.Errorf("entries out of order: %q then %q", entries[0].Operation, entries[1].Operation)
	}
	got := entries[0]
	if got.Mode != first.Mode || got.Input != first.Input || got.Output != first.Output {
		t.Errorf("entry fields mangled: %+v", got)
	}
	if got.Width != 640 || got.Height != 480 || got.Digest != 0xAB {
		t.Errorf("numeric fields mangled: %+v", got)
	}
	if !got.At.Equal(first.At) {
		t.Errorf("timestamp round trip: got %v, want %v", got.At, first.At)
	}
}

func TestLastNLimit(t *testing.T) {
	s := openTestStore(t)
	for i := 0; i < 5; i++ {
		if err := s.Record(Entry{Operation: "encrypt", Mode: "swap", Input: "a", Output: "b"}); err != nil {
			t.Fatal(err)
		}
	}
	entries, err := s.LastN(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("got %d entries, want 3", len(entries))
	}
}

func TestLastNNonPositive(t *testing.T) {
	s := openTestStore(t)
	entries, err := s.LastN(0)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("LastN(0) returned %d entries", len(entries))
	}
}
