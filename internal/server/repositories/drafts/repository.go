// Package drafts provides the ephemeral draft checkpoint store.
package drafts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
)

// Repository describes the keyed, TTL-bound draft store. Put must replace
// the full record atomically; there are no partial-field updates. A missing
// or expired record is reported as common.ErrNotFound. Backends that can
// lose connectivity surface common.ErrStoreUnavailable instead of
// pretending a write succeeded.
type Repository interface {
	// Put upserts the record and resets its TTL.
	Put(ctx context.Context, record *models.DraftRecord, ttl time.Duration) error

	// Get returns the live record for key, or common.ErrNotFound.
	Get(ctx context.Context, key models.DraftKey) (*models.DraftRecord, error)

	// Delete removes the record. Deleting an absent key is not an error.
	Delete(ctx context.Context, key models.DraftKey) error

	// Exists reports whether a live record is stored for key.
	Exists(ctx context.Context, key models.DraftKey) (bool, error)
}
