package store

import (
	"errors"
	"path/filepath"
	"testing"
)

// kvContract runs the shared KV behavior against any implementation.
func kvContract(t *testing.T, kv KV) {
	t.Helper()

	if _, err := kv.Get("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(missing) = %v, want ErrNotFound", err)
	}

	if err := kv.Set("save:AAAA", "one"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	got, err := kv.Get("save:AAAA")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != "one" {
		t.Errorf("Get = %q, want %q", got, "one")
	}

	// Set replaces.
	if err := kv.Set("save:AAAA", "two"); err != nil {
		t.Fatalf("second Set failed: %v", err)
	}
	if got, _ := kv.Get("save:AAAA"); got != "two" {
		t.Errorf("Get after replace = %q, want %q", got, "two")
	}

	if err := kv.Delete("save:AAAA"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := kv.Get("save:AAAA"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete = %v, want ErrNotFound", err)
	}

	// Deleting an absent key is fine.
	if err := kv.Delete("never-existed"); err != nil {
		t.Errorf("Delete(absent) = %v, want nil", err)
	}
}

func TestMemoryKV(t *testing.T) {
	kvContract(t, NewMemory())
}

func TestSQLiteKV(t *testing.T) {
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "trial.db"))
	if err != nil {
		t.Fatalf("OpenSQLite failed: %v", err)
	}
	defer db.Close()

	kvContract(t, db)
}

func TestSQLitePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trial.db")

	db, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := db.Set("leaderboard", "[]"); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	reopened, err := OpenSQLite(path)
	if err != nil {
		t.Fatal(err)
	}
	defer reopened.Close()

	got, err := reopened.Get("leaderboard")
	if err != nil {
		t.Fatalf("Get after reopen: %v", err)
	}
	if got != "[]" {
		t.Errorf("Get after reopen = %q, want %q", got, "[]")
	}
}

func TestMemoryFailWrites(t *testing.T) {
	kv := NewMemory()
	kv.FailWrites = true

	if err := kv.Set("k", "v"); !errors.Is(err, ErrWriteFailed) {
		t.Errorf("Set = %v, want ErrWriteFailed", err)
	}
	if _, err := kv.Get("k"); !errors.Is(err, ErrNotFound) {
		t.Errorf("failed write should not store a value, Get = %v", err)
	}
}
