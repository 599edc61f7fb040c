package durable

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
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

func (r *PostgresRepository) Insert(ctx context.Context, v *models.DurableVersion) error {
	query := `INSERT INTO durable_versions
		(id, user_id, form_slug, object_id, payload, storage_key,
		 step, version, schema_version, prior_hash, record_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.ExecContext(ctx, query,
		v.ID, v.UserID, v.FormSlug, v.ObjectID, v.Payload, v.StorageKey,
		v.Step, v.Version, v.SchemaVersion, v.PriorHash, v.RecordHash)
	if err != nil {
		return fmt.Errorf("failed to insert durable version: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetLatest(ctx context.Context, key models.DraftKey) (*models.DurableVersion, error) {
	query := `SELECT id, user_id, form_slug, object_id, payload, storage_key,
		step, version, schema_version, prior_hash, record_hash, created_at
		FROM durable_versions
		WHERE user_id = $1 AND form_slug = $2 AND object_id = $3
		ORDER BY created_at DESC, id DESC
		LIMIT 1`
	row := r.db.QueryRowContext(ctx, query, key.UserID, key.FormSlug, key.ObjectID)

	v := &models.DurableVersion{}
	err := row.Scan(&v.ID, &v.UserID, &v.FormSlug, &v.ObjectID, &v.Payload, &v.StorageKey,
		&v.Step, &v.Version, &v.SchemaVersion, &v.PriorHash, &v.RecordHash, &v.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select latest durable version: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) ListByKey(ctx context.Context, key models.DraftKey) ([]*models.DurableVersion, error) {
	query := `SELECT id, user_id, form_slug, object_id, payload, storage_key,
		step, version, schema_version, prior_hash, record_hash, created_at
		FROM durable_versions
		WHERE user_id = $1 AND form_slug = $2 AND object_id = $3
		ORDER BY created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, key.UserID, key.FormSlug, key.ObjectID)
	if err != nil {
		return nil, fmt.Errorf("failed to select durable versions: %w", err)
	}
	defer rows.Close()

	var result []*models.DurableVersion
	for rows.Next() {
		v := &models.DurableVersion{}
		if err := rows.Scan(&v.ID, &v.UserID, &v.FormSlug, &v.ObjectID, &v.Payload, &v.StorageKey,
			&v.Step, &v.Version, &v.SchemaVersion, &v.PriorHash, &v.RecordHash, &v.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
