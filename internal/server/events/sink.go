// Package events is the observability boundary: integrity violations,
// rate-limit hits, and schema incompatibilities are reported here instead of
// being visible to the end user, who only ever sees an absent draft.
package events

import (
	"context"

	"github.com/dmitrijs2005/draftkeeper/internal/logging"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
)

// Sink receives notable events from the checkpoint service. Implementations
// must be non-blocking; the save/load paths call them inline.
type Sink interface {
	IntegrityViolation(ctx context.Context, key models.DraftKey)
	RateLimited(ctx context.Context, principal, formSlug string)
	SchemaIncompatible(ctx context.Context, key models.DraftKey, recorded, current int64)
}

// LogSink writes events to the structured logger.
type LogSink struct {
	logger logging.Logger
}

// NewLogSink wraps a logger as a Sink.
func NewLogSink(l logging.Logger) *LogSink {
	return &LogSink{logger: l.With("module", "events")}
}

func (s *LogSink) IntegrityViolation(ctx context.Context, key models.DraftKey) {
	s.logger.Error(ctx, "draft integrity violation",
		"user_id", key.UserID, "form_slug", key.FormSlug, "object_id", key.ObjectID)
}

func (s *LogSink) RateLimited(ctx context.Context, principal, formSlug string) {
	s.logger.Warn(ctx, "draft save rate limited",
		"principal", principal, "form_slug", formSlug)
}

func (s *LogSink) SchemaIncompatible(ctx context.Context, key models.DraftKey, recorded, current int64) {
	s.logger.Warn(ctx, "draft schema incompatible",
		"user_id", key.UserID, "form_slug", key.FormSlug, "object_id", key.ObjectID,
		"recorded_version", recorded, "current_version", current)
}
