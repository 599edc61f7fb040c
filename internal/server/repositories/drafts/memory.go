package drafts

import (
	"context"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/ephemeral"
)

// keyPrefix namespaces draft entries inside the shared ephemeral cache so
// they never collide with other consumers (e.g. the rate limiter).
const keyPrefix = "draft" + common.KeySeparator

// MemoryRepository implements Repository on top of the shared ephemeral
// cache. The whole record is stored as one value, so concurrent saves for
// the same key cannot interleave into a mixed record.
type MemoryRepository struct {
	cache *ephemeral.Cache
}

// NewMemoryRepository binds a repository to the given cache engine.
func NewMemoryRepository(cache *ephemeral.Cache) *MemoryRepository {
	return &MemoryRepository{cache: cache}
}

func storeKey(key models.DraftKey) string {
	return keyPrefix + key.String()
}

func (r *MemoryRepository) Put(ctx context.Context, record *models.DraftRecord, ttl time.Duration) error {
	cp := *record
	r.cache.Put(storeKey(record.Key), &cp, ttl)
	return nil
}

func (r *MemoryRepository) Get(ctx context.Context, key models.DraftKey) (*models.DraftRecord, error) {
	v, ok := r.cache.Get(storeKey(key))
	if !ok {
		return nil, common.ErrNotFound
	}
	rec, ok := v.(*models.DraftRecord)
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *rec
	return &cp, nil
}

func (r *MemoryRepository) Delete(ctx context.Context, key models.DraftKey) error {
	r.cache.Delete(storeKey(key))
	return nil
}

func (r *MemoryRepository) Exists(ctx context.Context, key models.DraftKey) (bool, error) {
	return r.cache.Exists(storeKey(key)), nil
}
