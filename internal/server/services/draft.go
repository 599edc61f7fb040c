// DraftService is the checkpoint service: it orchestrates the access guard,
// rate limiter, integrity guard, and draft store behind the three public
// operations Save, Load, and Clear, plus explicit promotion into the
// durable archive.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/logging"
	"github.com/dmitrijs2005/draftkeeper/internal/server/access"
	"github.com/dmitrijs2005/draftkeeper/internal/server/events"
	"github.com/dmitrijs2005/draftkeeper/internal/server/integrity"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
	"github.com/dmitrijs2005/draftkeeper/internal/server/ratelimit"
	"github.com/dmitrijs2005/draftkeeper/internal/server/repositories/drafts"
	"github.com/dmitrijs2005/draftkeeper/internal/server/schema"
)

// Archiver is the optional durable-archive hook consumed by Promote.
// ArchiveService implements it; a nil Archiver disables promotion.
type Archiver interface {
	Promote(ctx context.Context, record *models.DraftRecord) (*models.DurableVersion, error)
}

// LoadResult is what a successful Load hands back to the form.
type LoadResult struct {
	Payload       []byte
	Step          int64
	Version       int64
	SchemaVersion int64
}

// DraftService owns the DraftRecord lifecycle: creation, mutation, expiry.
// Each operation is a stateless, independently schedulable request; no
// in-process lock is held across calls. Correctness under concurrent
// multi-device saves relies on the store's atomic put and the version field
// as an optimistic-concurrency token.
type DraftService struct {
	store      drafts.Repository
	integrity  *integrity.Guard
	access     *access.Guard
	limiter    *ratelimit.Limiter
	schemas    *schema.Registry
	events     events.Sink
	archive    Archiver
	ttl        time.Duration
	maxPayload int64
	logger     logging.Logger
	now        func() time.Time
}

// DraftServiceOption configures a DraftService.
type DraftServiceOption func(*DraftService)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) DraftServiceOption {
	return func(s *DraftService) { s.now = now }
}

// WithArchiver enables the durable archive backend.
func WithArchiver(a Archiver) DraftServiceOption {
	return func(s *DraftService) { s.archive = a }
}

// NewDraftService wires the checkpoint service.
func NewDraftService(
	store drafts.Repository,
	ig *integrity.Guard,
	ag *access.Guard,
	limiter *ratelimit.Limiter,
	schemas *schema.Registry,
	sink events.Sink,
	ttl time.Duration,
	maxPayload int64,
	logger logging.Logger,
	opts ...DraftServiceOption,
) *DraftService {
	s := &DraftService{
		store:      store,
		integrity:  ig,
		access:     ag,
		limiter:    limiter,
		schemas:    schemas,
		events:     sink,
		ttl:        ttl,
		maxPayload: maxPayload,
		logger:     logger.With("module", "draft_service"),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func isNotFound(err error) bool {
	return errors.Is(err, common.ErrNotFound)
}

// Save checkpoints one draft state and returns the new version. The version
// is re-read from the store immediately before computing the successor, so a
// concurrent save from another device of the same user is always visible in
// the returned number.
func (s *DraftService) Save(ctx context.Context, principal string, key models.DraftKey, payload []byte, step, clientSchemaVersion int64) (int64, error) {
	if err := s.access.Authorize(ctx, principal, key); err != nil {
		return 0, err
	}

	if int64(len(payload)) > s.maxPayload {
		return 0, common.ErrPayloadTooLarge
	}

	if err := s.limiter.Allow(ctx, principal, key.FormSlug); err != nil {
		if errors.Is(err, common.ErrRateLimited) {
			s.events.RateLimited(ctx, principal, key.FormSlug)
		}
		return 0, err
	}

	newVersion := int64(1)
	createdAt := s.now()
	current, err := s.store.Get(ctx, key)
	switch {
	case err == nil:
		newVersion = current.Version + 1
		createdAt = current.CreatedAt
	case isNotFound(err):
		// first checkpoint for this key
	default:
		return 0, fmt.Errorf("reading current version: %w", err)
	}

	signature, err := s.integrity.Sign(key, payload, step, newVersion, clientSchemaVersion)
	if err != nil {
		return 0, fmt.Errorf("signing record: %w", err)
	}

	now := s.now()
	record := &models.DraftRecord{
		Key:           key,
		Payload:       payload,
		Step:          step,
		Version:       newVersion,
		SchemaVersion: clientSchemaVersion,
		Signature:     signature,
		CreatedAt:     createdAt,
		UpdatedAt:     now,
		ExpiresAt:     now.Add(s.ttl),
	}

	if err := s.store.Put(ctx, record, s.ttl); err != nil {
		// fail loudly: the client must retry rather than believe
		// the data was persisted
		return 0, fmt.Errorf("storing draft: %w", err)
	}

	return newVersion, nil
}

// Load returns the draft for key, or (nil, nil) when there is nothing to
// resume. Corrupted records are deleted and reported as absent; schema
// mismatches are migrated when possible and otherwise reported as absent.
func (s *DraftService) Load(ctx context.Context, principal string, key models.DraftKey) (*LoadResult, error) {
	if err := s.access.Authorize(ctx, principal, key); err != nil {
		return nil, err
	}

	record, err := s.store.Get(ctx, key)
	if isNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading draft: %w", err)
	}

	if err := s.integrity.Verify(record); err != nil {
		if !errors.Is(err, common.ErrCorrupted) {
			return nil, err
		}
		// never hand back unverifiable data
		s.events.IntegrityViolation(ctx, key)
		if delErr := s.store.Delete(ctx, key); delErr != nil {
			s.logger.Error(ctx, "deleting corrupted draft", "error", delErr.Error())
		}
		return nil, nil
	}

	payload, version, err := s.schemas.Migrate(key.FormSlug, record.SchemaVersion, record.Payload)
	if err != nil {
		if errors.Is(err, common.ErrSchemaIncompatible) {
			s.events.SchemaIncompatible(ctx, key, record.SchemaVersion, s.schemas.Current(key.FormSlug, record.SchemaVersion))
			return nil, nil
		}
		return nil, err
	}

	return &LoadResult{
		Payload:       payload,
		Step:          record.Step,
		Version:       record.Version,
		SchemaVersion: version,
	}, nil
}

// Clear removes the draft. It is idempotent: clearing an absent key is not
// an error. Called on successful submission of the underlying business
// record and by explicit "discard draft" user action.
func (s *DraftService) Clear(ctx context.Context, principal string, key models.DraftKey) error {
	if err := s.access.Authorize(ctx, principal, key); err != nil {
		return err
	}
	if err := s.store.Delete(ctx, key); err != nil {
		return fmt.Errorf("clearing draft: %w", err)
	}
	return nil
}

// Promote archives the current draft as an immutable durable version. The
// record is verified first; a corrupted draft cannot enter the chain.
// Promoting a key with no live draft returns common.ErrNotFound.
func (s *DraftService) Promote(ctx context.Context, principal string, key models.DraftKey) (*models.DurableVersion, error) {
	if s.archive == nil {
		return nil, fmt.Errorf("durable archive disabled: %w", common.ErrNotFound)
	}
	if err := s.access.Authorize(ctx, principal, key); err != nil {
		return nil, err
	}

	record, err := s.store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if err := s.integrity.Verify(record); err != nil {
		if errors.Is(err, common.ErrCorrupted) {
			s.events.IntegrityViolation(ctx, key)
			if delErr := s.store.Delete(ctx, key); delErr != nil {
				s.logger.Error(ctx, "deleting corrupted draft", "error", delErr.Error())
			}
			return nil, common.ErrNotFound
		}
		return nil, err
	}

	return s.archive.Promote(ctx, record)
}
