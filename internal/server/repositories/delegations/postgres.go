package delegations

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/draftkeeper/internal/dbx"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
)

// PostgresRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Grant(ctx context.Context, d *models.Delegation) error {
	query := `INSERT INTO delegations (owner_id, delegate_id, form_slug)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id, delegate_id, form_slug) DO NOTHING`
	_, err := r.db.ExecContext(ctx, query, d.OwnerID, d.DelegateID, d.FormSlug)
	if err != nil {
		return fmt.Errorf("failed to grant delegation: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Revoke(ctx context.Context, ownerID, delegateID, formSlug string) error {
	query := `DELETE FROM delegations WHERE owner_id = $1 AND delegate_id = $2 AND form_slug = $3`
	_, err := r.db.ExecContext(ctx, query, ownerID, delegateID, formSlug)
	if err != nil {
		return fmt.Errorf("failed to revoke delegation: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Exists(ctx context.Context, ownerID, delegateID, formSlug string) (bool, error) {
	query := `SELECT EXISTS (
		SELECT 1 FROM delegations WHERE owner_id = $1 AND delegate_id = $2 AND form_slug = $3
	)`
	var exists bool
	if err := r.db.QueryRowContext(ctx, query, ownerID, delegateID, formSlug).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check delegation: %w", err)
	}
	return exists, nil
}
