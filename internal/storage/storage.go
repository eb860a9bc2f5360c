package storage

import (
	"context"
	"errors"

	"dhanbad/wellness-admin/internal/domain"
)

// SnapshotKey is the fixed name the aggregate blob is stored under. It is
// kept identical to the original dashboard's local-storage key so an exported
// blob remains recognisable.
const SnapshotKey = "wellness_app_data"

// SnapshotStorage persists the whole aggregate as a single blob. There is no
// incremental path: every successful command overwrites the previous copy.
type SnapshotStorage interface {
	// Load reads the persisted aggregate. found is false when nothing has
	// been persisted yet; err is non-nil when a blob exists but cannot be
	// decoded (callers fall back to the seed dataset).
	Load(ctx context.Context) (data domain.AppData, found bool, err error)

	// Save serialises and overwrites the persisted aggregate. A command's
	// effect is not committed until Save returns nil.
	Save(ctx context.Context, data domain.AppData) error

	Close() error
}

// ErrCorruptSnapshot reports a blob that exists but does not decode.
var ErrCorruptSnapshot = errors.New("stored snapshot is not valid JSON")
