// Package queue persists checkpoints that could not be delivered to the
// server yet. Entries are replayed strictly in enqueue order.
package queue

import (
	"context"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
)

type Repository interface {
	// Enqueue appends a checkpoint to the tail of the queue.
	Enqueue(ctx context.Context, e *models.QueueEntry) error

	// Peek returns the oldest entry without removing it, or nil when the
	// queue is empty.
	Peek(ctx context.Context) (*models.QueueEntry, error)

	// Ack removes the entry with the given seq after successful delivery.
	Ack(ctx context.Context, seq int64) error

	// Len returns the number of queued entries.
	Len(ctx context.Context) (int, error)

	// DiscardKey drops every queued checkpoint for the given draft key.
	DiscardKey(ctx context.Context, key models.DraftKey) error
}
