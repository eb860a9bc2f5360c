package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"dhanbad/wellness-admin/internal/domain"
)

// MemoryStorage is an in-process SnapshotStorage for tests and ephemeral
// runs. It still round-trips through JSON so tests exercise the same
// serialisation path as the SQLite backend.
type MemoryStorage struct {
	mu   sync.Mutex
	blob []byte

	// FailNextSave makes the next Save return an error, for exercising the
	// store's rollback path.
	FailNextSave bool
	// SaveCount is incremented on every successful Save.
	SaveCount int
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load(ctx context.Context) (domain.AppData, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blob == nil {
		return domain.AppData{}, false, nil
	}
	var data domain.AppData
	if err := json.Unmarshal(m.blob, &data); err != nil {
		return domain.AppData{}, true, fmt.Errorf("%w: %v", ErrCorruptSnapshot, err)
	}
	data.Normalize()
	return data, true, nil
}

func (m *MemoryStorage) Save(ctx context.Context, data domain.AppData) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailNextSave {
		m.FailNextSave = false
		return fmt.Errorf("save rejected")
	}
	blob, err := json.Marshal(data)
	if err != nil {
		return err
	}
	m.blob = blob
	m.SaveCount++
	return nil
}

// SetBlob installs a raw blob, bypassing encoding. Tests use it to simulate
// legacy or corrupt persisted state.
func (m *MemoryStorage) SetBlob(blob []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.blob = append([]byte(nil), blob...)
}

func (m *MemoryStorage) Close() error { return nil }
