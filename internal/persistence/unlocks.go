package persistence

import (
	"go-fps-factory/internal/defs"
	"go-fps-factory/pkg/logger"
)

// UnlocksKey is the store key of the unlock flags.
const UnlocksKey = "fps_factory_unlocks"

type unlockRecord struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Unlocked    bool   `json:"unlocked"`
}

// UnlockManager owns the one-way unlock flags.
type UnlockManager struct {
	store   Store
	catalog map[defs.UnlockID]defs.UnlockDefinition
	state   map[defs.UnlockID]unlockRecord
	last    defs.UnlockID
	log     *logger.Logger
}

// NewUnlockManager loads flags from store. A corrupt value is logged and
// replaced by the locked defaults.
func NewUnlockManager(store Store, catalog map[defs.UnlockID]defs.UnlockDefinition, log *logger.Logger) *UnlockManager {
	m := &UnlockManager{store: store, catalog: catalog, log: log}
	m.state = m.defaults()
	saved := map[defs.UnlockID]unlockRecord{}
	ok, err := getJSON(store, UnlocksKey, &saved)
	if err != nil {
		log.Warn("failed to load unlocks, using defaults: %v", err)
		return m
	}
	if ok {
		for id, rec := range saved {
			if cur, known := m.state[id]; known {
				cur.Unlocked = rec.Unlocked
				m.state[id] = cur
			}
		}
	}
	return m
}

func (m *UnlockManager) defaults() map[defs.UnlockID]unlockRecord {
	out := make(map[defs.UnlockID]unlockRecord, len(m.catalog))
	for id, def := range m.catalog {
		out[id] = unlockRecord{Name: def.Name, Description: def.Description, Type: def.Type}
	}
	return out
}

func (m *UnlockManager) IsUnlocked(id defs.UnlockID) bool {
	return m.state[id].Unlocked
}

// Unlock sets the flag and reports true only on first acquisition.
func (m *UnlockManager) Unlock(id defs.UnlockID) bool {
	rec, ok := m.state[id]
	if !ok {
		m.log.Error("unknown unlock id %q", id)
		return false
	}
	if rec.Unlocked {
		return false
	}
	rec.Unlocked = true
	m.state[id] = rec
	m.last = id
	m.save()
	return true
}

// Last is the most recent unlock of this session.
func (m *UnlockManager) Last() (defs.UnlockID, bool) {
	return m.last, m.last != ""
}

// Progress returns unlocked and total counts.
func (m *UnlockManager) Progress() (unlocked, total int) {
	for _, rec := range m.state {
		if rec.Unlocked {
			unlocked++
		}
	}
	return unlocked, len(m.state)
}

// Reset relocks everything and removes the stored value.
func (m *UnlockManager) Reset() {
	m.state = m.defaults()
	m.last = ""
	if err := m.store.Delete(UnlocksKey); err != nil {
		m.log.Error("failed to clear unlocks: %v", err)
	}
}

func (m *UnlockManager) save() {
	if err := setJSON(m.store, UnlocksKey, m.state); err != nil {
		m.log.Error("failed to save unlocks: %v", err)
	}
}
