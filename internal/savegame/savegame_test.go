package savegame

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/silenttrial-dev/silenttrial/internal/game"
	"github.com/silenttrial-dev/silenttrial/internal/store"
)

func TestGenerateCodeFormat(t *testing.T) {
	for i := 0; i < 100; i++ {
		code := GenerateCode()
		if len(code) != CodeLength {
			t.Fatalf("code %q has length %d, want %d", code, len(code), CodeLength)
		}
		for _, c := range code {
			if !strings.ContainsRune(codeAlphabet, c) {
				t.Fatalf("code %q contains %q, outside the alphabet", code, c)
			}
		}
		for _, banned := range "0O1I" {
			if strings.ContainsRune(code, banned) {
				t.Fatalf("code %q contains confusable character %q", code, banned)
			}
		}
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	m := NewManager(store.NewMemory())
	started := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	code, err := m.Save("Ada", game.StageChamber3, started, 2)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if len(code) != CodeLength {
		t.Fatalf("code %q has length %d", code, len(code))
	}

	snapshot, err := m.Load(code)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if snapshot.PlayerName != "Ada" {
		t.Errorf("player = %q, want Ada", snapshot.PlayerName)
	}
	if snapshot.Stage != "chamber3" {
		t.Errorf("stage = %q, want chamber3", snapshot.Stage)
	}
	if !snapshot.StartTime.Equal(started) {
		t.Errorf("start time = %v, want %v", snapshot.StartTime, started)
	}
	if snapshot.ChambersPassed != 2 {
		t.Errorf("chambers passed = %d, want 2", snapshot.ChambersPassed)
	}
	if snapshot.SaveCode != code {
		t.Errorf("snapshot code = %q, want %q", snapshot.SaveCode, code)
	}
}

func TestLoadIsCaseInsensitive(t *testing.T) {
	m := NewManager(store.NewMemory())

	code, err := m.Save("Ada", game.StageChamber1, time.Time{}, 0)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := m.Load(strings.ToLower(code)); err != nil {
		t.Errorf("lowercase code should load: %v", err)
	}
	if _, err := m.Load("  " + code + "  "); err != nil {
		t.Errorf("padded code should load: %v", err)
	}
}

func TestLoadUnknownCode(t *testing.T) {
	m := NewManager(store.NewMemory())
	if _, err := m.Load("ZZZZZZZZ"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load on empty store = %v, want ErrNotFound", err)
	}
}

func TestLoadCorruptPayload(t *testing.T) {
	kv := store.NewMemory()
	if err := kv.Set("save:BADBADBA", "{not json"); err != nil {
		t.Fatal(err)
	}

	m := NewManager(kv)
	if _, err := m.Load("BADBADBA"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load of corrupt payload = %v, want ErrNotFound", err)
	}
}

func TestSaveRequiresChamberStage(t *testing.T) {
	m := NewManager(store.NewMemory())

	for _, stage := range []game.Stage{game.StageIntro, game.StageEliminated, game.StageVictory} {
		if _, err := m.Save("Ada", stage, time.Time{}, 0); !errors.Is(err, ErrNotSaveable) {
			t.Errorf("Save at %s = %v, want ErrNotSaveable", stage, err)
		}
	}

	if _, err := m.Save("", game.StageChamber2, time.Time{}, 1); !errors.Is(err, ErrNotSaveable) {
		t.Errorf("Save without a name = %v, want ErrNotSaveable", err)
	}
}

func TestSavePropagatesStoreFailure(t *testing.T) {
	kv := store.NewMemory()
	kv.FailWrites = true

	m := NewManager(kv)
	if _, err := m.Save("Ada", game.StageChamber1, time.Time{}, 0); err == nil {
		t.Error("Save over a failing store should error")
	}
}

func TestEachSaveGetsAFreshCode(t *testing.T) {
	m := NewManager(store.NewMemory())
	next := []string{"AAAAAAAA", "BBBBBBBB"}
	m.newCode = func() string {
		code := next[0]
		next = next[1:]
		return code
	}

	first, err := m.Save("Ada", game.StageChamber2, time.Time{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	second, err := m.Save("Ada", game.StageChamber2, time.Time{}, 1)
	if err != nil {
		t.Fatal(err)
	}
	if first == second {
		t.Fatal("saves should not share a code")
	}

	// Both snapshots remain readable; saving never overwrites.
	if _, err := m.Load(first); err != nil {
		t.Errorf("first snapshot lost: %v", err)
	}
	if _, err := m.Load(second); err != nil {
		t.Errorf("second snapshot lost: %v", err)
	}
}

func TestDeleteRemovesSnapshotAndIndexEntry(t *testing.T) {
	m := NewManager(store.NewMemory())

	code, err := m.Save("Ada", game.StageChamber1, time.Time{}, 0)
	if err != nil {
		t.Fatal(err)
	}
	if err := m.Delete(code); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Load(code); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load after delete = %v, want ErrNotFound", err)
	}
	if got := len(m.ListAll()); got != 0 {
		t.Errorf("ListAll after delete has %d entries, want 0", got)
	}
}

func TestListAllSortsNewestFirstAndSkipsCorrupt(t *testing.T) {
	kv := store.NewMemory()
	m := NewManager(kv)

	base := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	stamps := []time.Time{base, base.Add(2 * time.Minute), base.Add(time.Minute)}
	i := 0
	m.now = func() time.Time {
		ts := stamps[i]
		i++
		return ts
	}

	var codes []string
	for range stamps {
		code, err := m.Save("Ada", game.StageChamber2, base, 1)
		if err != nil {
			t.Fatal(err)
		}
		codes = append(codes, code)
	}

	// Corrupt the oldest snapshot in place; ListAll must drop it.
	if err := kv.Set("save:"+codes[0], "garbage"); err != nil {
		t.Fatal(err)
	}

	all := m.ListAll()
	if len(all) != 2 {
		t.Fatalf("ListAll returned %d snapshots, want 2", len(all))
	}
	if !all[0].SavedAt.After(all[1].SavedAt) {
		t.Error("snapshots should be sorted by SavedAt descending")
	}
}
