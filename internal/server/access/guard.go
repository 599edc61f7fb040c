// Package access decides whether a principal may operate on a draft key.
// The owner is always allowed; anyone else needs an explicit delegation
// grant from the permission module. Anything else is a hard denial, never
// silently downgraded.
package access

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/delegations"
)

// Guard performs the ownership/delegation check before any store operation.
type Guard struct {
	delegations delegations.Repository
}

// NewGuard builds a guard. The delegations repository may be nil, in which
// case only owners pass.
func NewGuard(d delegations.Repository) *Guard {
	return &Guard{delegations: d}
}

// Authorize returns nil if principal may operate on key, common.ErrForbidden
// otherwise. Lookup failures are reported as errors, not as denials, so an
// outage cannot be mistaken for a policy decision.
func (g *Guard) Authorize(ctx context.Context, principal string, key models.DraftKey) error {
	if principal == "" {
		return common.ErrForbidden
	}
	if principal == key.UserID {
		return nil
	}
	if g.delegations == nil {
		return common.ErrForbidden
	}
	ok, err := g.delegations.Exists(ctx, key.UserID, principal, key.FormSlug)
	if err != nil {
		return fmt.Errorf("delegation lookup: %w", err)
	}
	if !ok {
		return common.ErrForbidden
	}
	return nil
}
