package repository

import (
	"context"

	"github.com/prasety/kasirku-api/internal/domain/entity"
)

// SnapshotStore persists the live cart of each register between sessions.
// Saving is best-effort caching, not a transactional guarantee: callers
// swallow and log store errors, the in-memory mutation has already happened.
type SnapshotStore interface {
	// Save writes the register's cart lines with the current timestamp.
	Save(ctx context.Context, registerID string, lines []entity.CartLine) error
	// Load returns the stored lines and true when a fresh snapshot exists.
	// Absent, malformed, or stale snapshots yield (nil, false, nil); stale
	// snapshots are ignored, not deleted.
	Load(ctx context.Context, registerID string) ([]entity.CartLine, bool, error)
}
