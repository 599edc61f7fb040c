package queue

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Enqueue(ctx context.Context, e *models.QueueEntry) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO queue (form_slug, object_id, payload, step, schema_version, queued_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, e.FormSlug, e.ObjectID, e.Payload, e.Step, e.SchemaVersion, e.QueuedAt)
	if err != nil {
		return fmt.Errorf("failed to enqueue checkpoint: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Peek(ctx context.Context) (*models.QueueEntry, error) {
	e := &models.QueueEntry{}
	err := r.db.QueryRowContext(ctx, `
		SELECT seq, form_slug, object_id, payload, step, schema_version, queued_at
		FROM queue ORDER BY seq LIMIT 1
	`).Scan(&e.Seq, &e.FormSlug, &e.ObjectID, &e.Payload, &e.Step, &e.SchemaVersion, &e.QueuedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to peek queue: %w", err)
	}
	return e, nil
}

func (r *SQLiteRepository) Ack(ctx context.Context, seq int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM queue WHERE seq = ?`, seq)
	if err != nil {
		return fmt.Errorf("failed to ack queue entry %d: %w", seq, err)
	}
	return nil
}

func (r *SQLiteRepository) Len(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM queue`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count queue: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) DiscardKey(ctx context.Context, key models.DraftKey) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM queue WHERE form_slug = ? AND object_id = ?`,
		key.FormSlug, key.ObjectID)
	if err != nil {
		return fmt.Errorf("failed to discard queue entries for %s/%s: %w", key.FormSlug, key.ObjectID, err)
	}
	return nil
}
