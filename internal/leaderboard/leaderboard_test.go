package leaderboard

import (
	"fmt"
	"testing"
	"time"

	"github.com/silenttrial-dev/silenttrial/internal/store"
)

func entry(name string, seconds int) Entry {
	return Entry{
		Name:        name,
		Time:        seconds,
		Date:        time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC),
		Performance: PerformanceLabel(seconds),
	}
}

func TestRecordSortsAscending(t *testing.T) {
	m := NewManager(store.NewMemory())

	for _, seconds := range []int{50, 200, 10, 999} {
		m.Record(entry("Ada", seconds))
	}

	got := m.TopTen()
	want := []int{10, 50, 200, 999}
	if len(got) != len(want) {
		t.Fatalf("TopTen returned %d entries, want %d", len(got), len(want))
	}
	for i, seconds := range want {
		if got[i].Time != seconds {
			t.Errorf("entry %d time = %d, want %d", i, got[i].Time, seconds)
		}
	}
}

func TestRecordTruncatesToTen(t *testing.T) {
	m := NewManager(store.NewMemory())

	for i := 1; i <= 10; i++ {
		m.Record(entry(fmt.Sprintf("runner%d", i), i*10))
	}

	// An 11th slower than all ten leaves the board unchanged.
	m.Record(entry("slow", 5000))
	got := m.TopTen()
	if len(got) != MaxEntries {
		t.Fatalf("board has %d entries, want %d", len(got), MaxEntries)
	}
	if got[MaxEntries-1].Time != 100 {
		t.Errorf("slowest kept time = %d, want 100", got[MaxEntries-1].Time)
	}

	// A faster run evicts the prior tenth.
	m.Record(entry("fast", 5))
	got = m.TopTen()
	if len(got) != MaxEntries {
		t.Fatalf("board has %d entries after eviction, want %d", len(got), MaxEntries)
	}
	if got[0].Time != 5 {
		t.Errorf("fastest time = %d, want 5", got[0].Time)
	}
	if got[MaxEntries-1].Time != 90 {
		t.Errorf("slowest kept time = %d, want 90 after eviction", got[MaxEntries-1].Time)
	}
}

func TestRecordSkipsUnqualifiedEntries(t *testing.T) {
	m := NewManager(store.NewMemory())

	m.Record(entry("", 100))
	m.Record(entry("Ada", 0))
	m.Record(entry("Ada", -3))

	if got := m.TopTen(); len(got) != 0 {
		t.Errorf("board has %d entries, want none", len(got))
	}
}

func TestRecordSwallowsStoreFailure(t *testing.T) {
	kv := store.NewMemory()
	kv.FailWrites = true

	m := NewManager(kv)
	m.Record(entry("Ada", 100)) // must not panic

	if got := m.TopTen(); len(got) != 0 {
		t.Errorf("board has %d entries, want none after failed write", len(got))
	}
}

func TestTopTenToleratesCorruptPayload(t *testing.T) {
	kv := store.NewMemory()
	if err := kv.Set("leaderboard", "{broken"); err != nil {
		t.Fatal(err)
	}

	m := NewManager(kv)
	if got := m.TopTen(); len(got) != 0 {
		t.Errorf("corrupt board yielded %d entries, want none", len(got))
	}
}

func TestPerformanceLabels(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{90, "Exceptional"},
		{179, "Exceptional"},
		{180, "Excellent"},
		{250, "Excellent"},
		{400, "Very Good"},
		{500, "Good"},
		{700, "Completed"},
	}
	for _, tt := range tests {
		if got := PerformanceLabel(tt.seconds); got != tt.want {
			t.Errorf("PerformanceLabel(%d) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}
