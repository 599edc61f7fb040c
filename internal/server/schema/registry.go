// Package schema tracks the current payload schema version per form and the
// migration functions that upgrade stored drafts written under older
// versions. Form definitions and their versions are owned by the external
// business-record module; it feeds this registry at startup.
package schema

import (
	"fmt"
	"sync"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
)

// MigrationFunc upgrades a payload by exactly one schema version.
type MigrationFunc func(payload []byte) ([]byte, error)

type migrationKey struct {
	formSlug string
	from     int64
}

// Registry holds current schema versions and the migration chain. Safe for
// concurrent use; registration normally happens once at startup.
type Registry struct {
	mu         sync.RWMutex
	current    map[string]int64
	migrations map[migrationKey]MigrationFunc
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		current:    make(map[string]int64),
		migrations: make(map[migrationKey]MigrationFunc),
	}
}

// SetCurrent declares the current schema version for a form.
func (r *Registry) SetCurrent(formSlug string, version int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current[formSlug] = version
}

// Current returns the form's current schema version. For a form the
// registry has never seen it returns recorded, i.e. whatever version a
// stored draft carries is treated as current.
func (r *Registry) Current(formSlug string, recorded int64) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if v, ok := r.current[formSlug]; ok {
		return v
	}
	return recorded
}

// RegisterMigration installs the upgrade step from version from to from+1.
func (r *Registry) RegisterMigration(formSlug string, from int64, fn MigrationFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.migrations[migrationKey{formSlug: formSlug, from: from}] = fn
}

// Migrate upgrades payload from schema version from to the form's current
// version by applying registered steps in order. A missing step anywhere in
// the chain yields common.ErrSchemaIncompatible: the caller must then treat
// the draft as absent rather than hand back data the form cannot populate.
func (r *Registry) Migrate(formSlug string, from int64, payload []byte) ([]byte, int64, error) {
	target := r.Current(formSlug, from)
	if from == target {
		return payload, from, nil
	}
	if from > target {
		// draft written by a newer deployment than this server knows
		return nil, from, common.ErrSchemaIncompatible
	}

	out := payload
	for v := from; v < target; v++ {
		r.mu.RLock()
		fn, ok := r.migrations[migrationKey{formSlug: formSlug, from: v}]
		r.mu.RUnlock()
		if !ok {
			return nil, from, common.ErrSchemaIncompatible
		}
		next, err := fn(out)
		if err != nil {
			return nil, from, fmt.Errorf("migrating %s from v%d: %w", formSlug, v, err)
		}
		out = next
	}
	return out, target, nil
}
