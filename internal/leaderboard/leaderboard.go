// Package leaderboard maintains the local top-10 ranking of completed
// runs.
package leaderboard

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/silenttrial-dev/silenttrial/internal/store"
)

// storeKey holds the serialized ranking, ascending by time, length <= 10.
const storeKey = "leaderboard"

// MaxEntries bounds the persisted ranking.
const MaxEntries = 10

// Entry is one completed run.
type Entry struct {
	Name        string    `json:"name"`
	Time        int       `json:"time"` // completion duration, whole seconds
	Date        time.Time `json:"date"`
	Performance string    `json:"performance"`
}

// PerformanceLabel grades a completion time. Thresholds are evaluated
// in order; first match wins.
func PerformanceLabel(seconds int) string {
	switch {
	case seconds < 180:
		return "Exceptional"
	case seconds < 300:
		return "Excellent"
	case seconds < 420:
		return "Very Good"
	case seconds < 600:
		return "Good"
	default:
		return "Completed"
	}
}

// Manager reads and writes the ranking through a KV store.
type Manager struct {
	kv store.KV
}

// NewManager returns a Manager over kv.
func NewManager(kv store.KV) *Manager {
	return &Manager{kv: kv}
}

// Record inserts entry into the ranking, keeping it sorted ascending
// by time and truncated to the fastest ten. Entries without a name or
// a positive time never qualify. Store failures are swallowed: a
// victory still displays, just unranked.
func (m *Manager) Record(entry Entry) {
	if entry.Name == "" || entry.Time <= 0 {
		return
	}

	entries := append(m.TopTen(), entry)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time < entries[j].Time
	})
	if len(entries) > MaxEntries {
		entries = entries[:MaxEntries]
	}

	data, err := json.Marshal(entries)
	if err != nil {
		return
	}
	_ = m.kv.Set(storeKey, string(data))
}

// TopTen returns the persisted ranking, fastest first. A missing or
// unparsable payload yields an empty slice, never an error.
func (m *Manager) TopTen() []Entry {
	raw, err := m.kv.Get(storeKey)
	if err != nil {
		return nil
	}

	var entries []Entry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return nil
	}
	return entries
}
