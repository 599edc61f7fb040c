// Package delegations stores explicit draft-edit grants between users.
package delegations

import (
	"context"

	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
)

// Repository describes persistence for delegation grants. Rows are written
// at well-defined lifecycle points by the external permission module and
// read by the access guard on every draft operation.
type Repository interface {
	// Grant records that delegate may edit owner's drafts for formSlug.
	// Granting twice is not an error.
	Grant(ctx context.Context, d *models.Delegation) error

	// Revoke removes the grant. Revoking an absent grant is not an error.
	Revoke(ctx context.Context, ownerID, delegateID, formSlug string) error

	// Exists reports whether the grant is currently active.
	Exists(ctx context.Context, ownerID, delegateID, formSlug string) (bool, error)
}
