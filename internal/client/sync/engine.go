// Package sync keeps local form edits and the server-side draft store in
// agreement. Edits are debounced, checkpointed through a durable local
// queue, and delivered to the server strictly in order. The queue survives
// restarts, so work typed while offline is replayed on reconnect.
package sync

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/dmitrijs2005/draftkeeper/internal/client/client"
	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/draftkeeper/internal/client/repositories/queue"
	"github.com/dmitrijs2005/draftkeeper/internal/common"
	"github.com/dmitrijs2005/draftkeeper/internal/logging"
)

// ConflictResolution is the decision taken when another device has
// checkpointed the same draft since we last looked.
type ConflictResolution int

const (
	// KeepMine keeps the local state; the save that detected the conflict
	// already overwrote the server copy.
	KeepMine ConflictResolution = iota
	// UseNewer discards local work and adopts the server copy.
	UseNewer
)

// ConflictFunc decides how to resolve a detected conflict. remote is the
// server draft at detection time; it is nil when it could not be fetched.
type ConflictFunc func(key models.DraftKey, remote *models.RemoteDraft) ConflictResolution

// ApplyFunc receives the adopted server draft after a UseNewer resolution.
type ApplyFunc func(key models.DraftKey, remote *models.RemoteDraft)

const versionKeyPrefix = "version" + common.KeySeparator

type Engine struct {
	client   client.Client
	queue    queue.Repository
	meta     metadata.Repository
	logger   logging.Logger
	debounce time.Duration

	resolve ConflictFunc
	apply   ApplyFunc

	mu      sync.Mutex
	pending map[models.DraftKey]*models.QueueEntry
	timers  map[models.DraftKey]*time.Timer

	flushMu sync.Mutex

	now func() time.Time
}

type Option func(*Engine)

// WithConflictFunc installs the conflict decision hook. The default keeps
// local state.
func WithConflictFunc(fn ConflictFunc) Option {
	return func(e *Engine) { e.resolve = fn }
}

// WithApplyFunc installs the hook that receives adopted server drafts.
func WithApplyFunc(fn ApplyFunc) Option {
	return func(e *Engine) { e.apply = fn }
}

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func NewEngine(c client.Client, q queue.Repository, m metadata.Repository, debounce time.Duration, logger logging.Logger, opts ...Option) *Engine {
	e := &Engine{
		client:   c,
		queue:    q,
		meta:     m,
		logger:   logger.With("module", "sync_engine"),
		debounce: debounce,
		resolve:  func(models.DraftKey, *models.RemoteDraft) ConflictResolution { return KeepMine },
		pending:  make(map[models.DraftKey]*models.QueueEntry),
		timers:   make(map[models.DraftKey]*time.Timer),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// RecordEdit notes a local change. Edits within the debounce window coalesce
// into a single checkpoint carrying the latest state; the checkpoint is
// enqueued when the window closes and delivery is attempted immediately.
func (e *Engine) RecordEdit(ctx context.Context, key models.DraftKey, payload []byte, step, schemaVersion int64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.pending[key] = &models.QueueEntry{
		FormSlug:      key.FormSlug,
		ObjectID:      key.ObjectID,
		Payload:       payload,
		Step:          step,
		SchemaVersion: schemaVersion,
		QueuedAt:      e.now(),
	}

	if t, ok := e.timers[key]; ok {
		t.Stop()
	}
	e.timers[key] = time.AfterFunc(e.debounce, func() {
		if err := e.commitPending(ctx, key); err != nil {
			e.logger.Error(ctx, "committing pending edit", "error", err.Error())
			return
		}
		if err := e.Flush(ctx); err != nil {
			e.logger.Warn(ctx, "flush after edit", "error", err.Error())
		}
	})
}

// commitPending moves the coalesced edit for key from memory into the
// durable queue.
func (e *Engine) commitPending(ctx context.Context, key models.DraftKey) error {
	e.mu.Lock()
	entry, ok := e.pending[key]
	delete(e.pending, key)
	delete(e.timers, key)
	e.mu.Unlock()

	if !ok {
		return nil
	}
	return e.queue.Enqueue(ctx, entry)
}

// Flush delivers queued checkpoints oldest-first until the queue is empty or
// delivery stalls. Transient transport failures retry with backoff;
// permanent rejections are logged and dropped so one bad checkpoint cannot
// wedge the queue forever.
func (e *Engine) Flush(ctx context.Context) error {
	e.flushMu.Lock()
	defer e.flushMu.Unlock()

	for {
		entry, err := e.queue.Peek(ctx)
		if err != nil {
			return fmt.Errorf("reading queue: %w", err)
		}
		if entry == nil {
			return nil
		}

		version, err := e.save(ctx, entry)

		switch {
		case err == nil:
			if err := e.checkConflict(ctx, entry.Key(), version); err != nil {
				e.logger.Warn(ctx, "conflict check", "error", err.Error())
			}
			if err := e.queue.Ack(ctx, entry.Seq); err != nil {
				return fmt.Errorf("acking queue entry: %w", err)
			}

		case errors.Is(err, client.ErrUnavailable), errors.Is(err, client.ErrRateLimited), errors.Is(err, client.ErrUnauthorized):
			// leave the entry queued and try again later
			return err

		default:
			// the server will never accept this checkpoint; drop it
			e.logger.Error(ctx, "dropping undeliverable checkpoint",
				"form", entry.FormSlug, "object", entry.ObjectID, "error", err.Error())
			if err := e.queue.Ack(ctx, entry.Seq); err != nil {
				return fmt.Errorf("acking queue entry: %w", err)
			}
		}
	}
}

func (e *Engine) save(ctx context.Context, entry *models.QueueEntry) (int64, error) {
	var version int64
	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(200*time.Millisecond))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		v, err := e.client.SaveDraft(ctx, entry.Key(), entry.Payload, entry.Step, entry.SchemaVersion)
		if err != nil {
			if errors.Is(err, client.ErrUnavailable) {
				return retry.RetryableError(err)
			}
			return err
		}
		version = v
		return nil
	})
	return version, err
}

// checkConflict compares the version the server assigned against the last
// one this device observed. A jump larger than one step means another device
// saved in between.
func (e *Engine) checkConflict(ctx context.Context, key models.DraftKey, version int64) error {
	last, err := e.lastObservedVersion(ctx, key)
	if err != nil {
		return err
	}

	if last != 0 && version != last+1 {
		remote, loadErr := e.client.LoadDraft(ctx, key)
		if loadErr != nil {
			e.logger.Warn(ctx, "loading remote draft for conflict", "error", loadErr.Error())
		}
		if e.resolve(key, remote) == UseNewer && remote != nil {
			if err := e.queue.DiscardKey(ctx, key); err != nil {
				return err
			}
			if e.apply != nil {
				e.apply(key, remote)
			}
			return e.setLastObservedVersion(ctx, key, remote.Version)
		}
	}

	return e.setLastObservedVersion(ctx, key, version)
}

// Load fetches the server draft for key and remembers its version as the
// new conflict baseline. A (nil, nil) result means nothing to resume.
func (e *Engine) Load(ctx context.Context, key models.DraftKey) (*models.RemoteDraft, error) {
	remote, err := e.client.LoadDraft(ctx, key)
	if err != nil {
		return nil, err
	}
	if remote == nil {
		return nil, nil
	}
	if err := e.setLastObservedVersion(ctx, key, remote.Version); err != nil {
		return nil, err
	}
	return remote, nil
}

// Discard drops all local and server state for key: pending edits, queued
// checkpoints, the server draft, and the version baseline.
func (e *Engine) Discard(ctx context.Context, key models.DraftKey) error {
	e.mu.Lock()
	delete(e.pending, key)
	if t, ok := e.timers[key]; ok {
		t.Stop()
		delete(e.timers, key)
	}
	e.mu.Unlock()

	if err := e.queue.DiscardKey(ctx, key); err != nil {
		return err
	}
	if err := e.meta.Delete(ctx, versionMetaKey(key)); err != nil {
		return err
	}
	return e.client.ClearDraft(ctx, key)
}

// Submitted reports that the underlying business record was successfully
// submitted: the draft has served its purpose and is removed everywhere.
func (e *Engine) Submitted(ctx context.Context, key models.DraftKey) error {
	return e.Discard(ctx, key)
}

// Promote flushes outstanding checkpoints and archives the current server
// draft as an immutable version.
func (e *Engine) Promote(ctx context.Context, key models.DraftKey) (string, []byte, error) {
	if err := e.commitPending(ctx, key); err != nil {
		return "", nil, err
	}
	if err := e.Flush(ctx); err != nil {
		return "", nil, err
	}
	return e.client.PromoteDraft(ctx, key)
}

// QueueLen reports how many checkpoints await delivery.
func (e *Engine) QueueLen(ctx context.Context) (int, error) {
	return e.queue.Len(ctx)
}

// Stop cancels all debounce timers. Pending edits stay in memory; call
// Flush via Promote or a fresh RecordEdit to deliver them.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	for key, t := range e.timers {
		t.Stop()
		delete(e.timers, key)
	}
}

func versionMetaKey(key models.DraftKey) string {
	return versionKeyPrefix + key.FormSlug + common.KeySeparator + key.ObjectID
}

func (e *Engine) lastObservedVersion(ctx context.Context, key models.DraftKey) (int64, error) {
	raw, err := e.meta.Get(ctx, versionMetaKey(key))
	if err != nil {
		return 0, err
	}
	if raw == nil {
		return 0, nil
	}
	v, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parsing stored version: %w", err)
	}
	return v, nil
}

func (e *Engine) setLastObservedVersion(ctx context.Context, key models.DraftKey, version int64) error {
	return e.meta.Set(ctx, versionMetaKey(key), []byte(strconv.FormatInt(version, 10)))
}
