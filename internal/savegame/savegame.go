// Package savegame persists mid-trial snapshots addressable by short
// save codes.
package savegame

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/silenttrial-dev/silenttrial/internal/game"
	"github.com/silenttrial-dev/silenttrial/internal/store"
)

// Store keys. Each snapshot lives under save:<CODE>; the index key
// holds the list of known codes.
const (
	keyPrefix = "save:"
	indexKey  = "save-index"
)

// Snapshot is the durable projection of a session. Snapshots are only
// created while the session is inside a chamber, so a loaded game is
// always mid-trial.
type Snapshot struct {
	PlayerName     string    `json:"player_name"`
	Stage          string    `json:"stage"`
	StartTime      time.Time `json:"start_time"`
	ChambersPassed int       `json:"chambers_passed"`
	SaveCode       string    `json:"save_code"`
	SavedAt        time.Time `json:"saved_at"`
}

// ErrNotFound is returned by Load for unknown codes and for payloads
// that no longer parse. The two cases are indistinguishable on purpose.
var ErrNotFound = errors.New("no saved game for code")

// ErrNotSaveable is returned by Save outside chamber stages or before
// a player name is set.
var ErrNotSaveable = errors.New("saving is only possible inside a chamber")

// Manager reads and writes snapshots through a KV store.
type Manager struct {
	kv      store.KV
	now     func() time.Time
	newCode func() string
}

// NewManager returns a Manager over kv.
func NewManager(kv store.KV) *Manager {
	return &Manager{kv: kv, now: time.Now, newCode: GenerateCode}
}

// Save writes a snapshot of the given session fields under a freshly
// generated code and returns the code. Snapshots are immutable: saving
// again creates a new code rather than overwriting an old one.
func (m *Manager) Save(playerName string, stage game.Stage, startTime time.Time, chambersPassed int) (string, error) {
	if playerName == "" || !stage.IsChamber() {
		return "", ErrNotSaveable
	}

	code := m.newCode()
	snapshot := Snapshot{
		PlayerName:     playerName,
		Stage:          stage.String(),
		StartTime:      startTime,
		ChambersPassed: chambersPassed,
		SaveCode:       code,
		SavedAt:        m.now(),
	}

	data, err := json.Marshal(snapshot)
	if err != nil {
		return "", fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := m.kv.Set(keyPrefix+code, string(data)); err != nil {
		return "", fmt.Errorf("write snapshot: %w", err)
	}

	if err := m.addToIndex(code); err != nil {
		return "", fmt.Errorf("update save index: %w", err)
	}

	return code, nil
}

// Load returns the snapshot for code, normalizing the code to
// uppercase first. Unknown codes and corrupt payloads both yield
// ErrNotFound; Load never fails any other way on bad input.
func (m *Manager) Load(code string) (Snapshot, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	raw, err := m.kv.Get(keyPrefix + normalized)
	if err != nil {
		return Snapshot{}, ErrNotFound
	}

	var snapshot Snapshot
	if err := json.Unmarshal([]byte(raw), &snapshot); err != nil {
		return Snapshot{}, ErrNotFound
	}
	return snapshot, nil
}

// Delete removes the snapshot for code and drops it from the index.
func (m *Manager) Delete(code string) error {
	normalized := strings.ToUpper(strings.TrimSpace(code))

	if err := m.kv.Delete(keyPrefix + normalized); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}

	codes := m.codes()
	kept := codes[:0]
	for _, c := range codes {
		if c != normalized {
			kept = append(kept, c)
		}
	}
	return m.writeIndex(kept)
}

// ListAll returns every readable snapshot, newest first. Indexed codes
// whose payload is missing or unparsable are silently skipped.
func (m *Manager) ListAll() []Snapshot {
	var snapshots []Snapshot
	for _, code := range m.codes() {
		snapshot, err := m.Load(code)
		if err != nil {
			continue
		}
		snapshots = append(snapshots, snapshot)
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].SavedAt.After(snapshots[j].SavedAt)
	})
	return snapshots
}

func (m *Manager) addToIndex(code string) error {
	codes := m.codes()
	for _, c := range codes {
		if c == code {
			return nil
		}
	}
	return m.writeIndex(append(codes, code))
}

// codes reads the index, treating a missing or corrupt index as empty.
func (m *Manager) codes() []string {
	raw, err := m.kv.Get(indexKey)
	if err != nil {
		return nil
	}

	var codes []string
	if err := json.Unmarshal([]byte(raw), &codes); err != nil {
		return nil
	}
	return codes
}

func (m *Manager) writeIndex(codes []string) error {
	data, err := json.Marshal(codes)
	if err != nil {
		return fmt.Errorf("marshal save index: %w", err)
	}
	if err := m.kv.Set(indexKey, string(data)); err != nil {
		return fmt.Errorf("write save index: %w", err)
	}
	return nil
}
