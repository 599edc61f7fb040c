// Package durable persists immutable, hash-chained archival snapshots of
// drafts. Rows are written once by promotion and never mutated.
package durable

import (
	"context"

	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
)

// Repository describes durable version persistence.
type Repository interface {
	// Insert writes a new immutable snapshot.
	Insert(ctx context.Context, v *models.DurableVersion) error

	// GetLatest returns the most recent snapshot for key, or
	// common.ErrNotFound if the key has never been promoted.
	GetLatest(ctx context.Context, key models.DraftKey) (*models.DurableVersion, error)

	// ListByKey returns all snapshots for key in creation order,
	// oldest first. Used by chain verification.
	ListByKey(ctx context.Context, key models.DraftKey) ([]*models.DurableVersion, error)
}
