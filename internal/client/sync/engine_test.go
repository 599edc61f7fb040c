package sync

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/draftkeeper/internal/client/client"
	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/logging"
)

type nopLogger struct{}

func (nopLogger) Debug(context.Context, string, ...any) {}
func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}
func (nopLogger) With(...any) logging.Logger            { return nopLogger{} }

// ---- fakes ----

type savedCall struct {
	key     models.DraftKey
	payload []byte
	step    int64
}

type fakeClient struct {
	saves       []savedCall
	saveErrs    []error // consumed one per call, nil afterwards
	saveVersion int64   // next version to return, incremented per success

	loadResp *models.RemoteDraft
	loadErr  error

	cleared []models.DraftKey

	promoteID   string
	promoteHash []byte
	promoteErr  error
}

func (f *fakeClient) Close() error               { return nil }
func (f *fakeClient) SetAccessToken(token string) {}
func (f *fakeClient) Ping(ctx context.Context) error {
	return nil
}

func (f *fakeClient) SaveDraft(ctx context.Context, key models.DraftKey, payload []byte, step, schemaVersion int64) (int64, error) {
	if len(f.saveErrs) > 0 {
		err := f.saveErrs[0]
		f.saveErrs = f.saveErrs[1:]
		if err != nil {
			return 0, err
		}
	}
	f.saves = append(f.saves, savedCall{key: key, payload: payload, step: step})
	f.saveVersion++
	return f.saveVersion, nil
}

func (f *fakeClient) LoadDraft(ctx context.Context, key models.DraftKey) (*models.RemoteDraft, error) {
	return f.loadResp, f.loadErr
}

func (f *fakeClient) ClearDraft(ctx context.Context, key models.DraftKey) error {
	f.cleared = append(f.cleared, key)
	return nil
}

func (f *fakeClient) PromoteDraft(ctx context.Context, key models.DraftKey) (string, []byte, error) {
	return f.promoteID, f.promoteHash, f.promoteErr
}

type memQueue struct {
	entries []*models.QueueEntry
	nextSeq int64
}

func (q *memQueue) Enqueue(ctx context.Context, e *models.QueueEntry) error {
	q.nextSeq++
	cp := *e
	cp.Seq = q.nextSeq
	q.entries = append(q.entries, &cp)
	return nil
}

func (q *memQueue) Peek(ctx context.Context) (*models.QueueEntry, error) {
	if len(q.entries) == 0 {
		return nil, nil
	}
	return q.entries[0], nil
}

func (q *memQueue) Ack(ctx context.Context, seq int64) error {
	for i, e := range q.entries {
		if e.Seq == seq {
			q.entries = append(q.entries[:i], q.entries[i+1:]...)
			break
		}
	}
	return nil
}

func (q *memQueue) Len(ctx context.Context) (int, error) { return len(q.entries), nil }

func (q *memQueue) DiscardKey(ctx context.Context, key models.DraftKey) error {
	kept := q.entries[:0]
	for _, e := range q.entries {
		if e.Key() != key {
			kept = append(kept, e)
		}
	}
	q.entries = kept
	return nil
}

type memMeta struct {
	values map[string][]byte
}

func newMemMeta() *memMeta { return &memMeta{values: make(map[string][]byte)} }

func (m *memMeta) Get(ctx context.Context, key string) ([]byte, error) { return m.values[key], nil }
func (m *memMeta) Set(ctx context.Context, key string, value []byte) error {
	m.values[key] = value
	return nil
}
func (m *memMeta) Delete(ctx context.Context, key string) error {
	delete(m.values, key)
	return nil
}
func (m *memMeta) List(ctx context.Context) (map[string][]byte, error) { return m.values, nil }
func (m *memMeta) Clear(ctx context.Context) error {
	m.values = make(map[string][]byte)
	return nil
}

// ---- helpers ----

var key1 = models.DraftKey{FormSlug: "intake", ObjectID: "1"}

func newEngine(c *fakeClient, opts ...Option) (*Engine, *memQueue, *memMeta) {
	q := &memQueue{}
	m := newMemMeta()
	e := NewEngine(c, q, m, 10*time.Millisecond, nopLogger{}, opts...)
	return e, q, m
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met within timeout")
}

// ---- tests ----

func TestRecordEdit_DebounceCoalesces(t *testing.T) {
	c := &fakeClient{}
	e, _, _ := newEngine(c)
	defer e.Stop()
	ctx := context.Background()

	// burst of edits inside one debounce window
	e.RecordEdit(ctx, key1, []byte(`{"v":1}`), 1, 1)
	e.RecordEdit(ctx, key1, []byte(`{"v":2}`), 1, 1)
	e.RecordEdit(ctx, key1, []byte(`{"v":3}`), 2, 1)

	waitFor(t, func() bool { return len(c.saves) == 1 })

	require.Equal(t, []byte(`{"v":3}`), c.saves[0].payload)
	require.Equal(t, int64(2), c.saves[0].step)
}

func TestFlush_DeliversInEnqueueOrder(t *testing.T) {
	c := &fakeClient{}
	e, q, _ := newEngine(c)
	ctx := context.Background()

	for i := 1; i <= 3; i++ {
		require.NoError(t, q.Enqueue(ctx, &models.QueueEntry{
			FormSlug: "intake", ObjectID: "1",
			Payload: []byte{byte(i)}, Step: int64(i), SchemaVersion: 1,
		}))
	}

	require.NoError(t, e.Flush(ctx))

	require.Len(t, c.saves, 3)
	require.True(t, sort.SliceIsSorted(c.saves, func(i, j int) bool {
		return c.saves[i].step < c.saves[j].step
	}))
	n, _ := q.Len(ctx)
	require.Equal(t, 0, n)
}

func TestFlush_StallsWhileRateLimited(t *testing.T) {
	c := &fakeClient{saveErrs: []error{client.ErrRateLimited}}
	e, q, _ := newEngine(c)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, &models.QueueEntry{FormSlug: "intake", ObjectID: "1", Payload: []byte(`{}`)}))

	err := e.Flush(ctx)
	require.ErrorIs(t, err, client.ErrRateLimited)

	// entry survives for the next flush
	n, _ := q.Len(ctx)
	require.Equal(t, 1, n)

	require.NoError(t, e.Flush(ctx))
	n, _ = q.Len(ctx)
	require.Equal(t, 0, n)
}

func TestFlush_RetriesTransientUnavailable(t *testing.T) {
	c := &fakeClient{saveErrs: []error{client.ErrUnavailable}}
	e, q, _ := newEngine(c)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, &models.QueueEntry{FormSlug: "intake", ObjectID: "1", Payload: []byte(`{}`)}))

	// first attempt fails, the in-call retry succeeds
	require.NoError(t, e.Flush(ctx))
	require.Len(t, c.saves, 1)
	n, _ := q.Len(ctx)
	require.Equal(t, 0, n)
}

func TestFlush_DropsPermanentlyRejectedCheckpoint(t *testing.T) {
	c := &fakeClient{saveErrs: []error{client.ErrPayloadTooLarge}}
	e, q, _ := newEngine(c)
	ctx := context.Background()

	require.NoError(t, q.Enqueue(ctx, &models.QueueEntry{FormSlug: "intake", ObjectID: "1", Payload: []byte(`{}`)}))
	require.NoError(t, q.Enqueue(ctx, &models.QueueEntry{FormSlug: "intake", ObjectID: "1", Payload: []byte(`{"ok":1}`)}))

	require.NoError(t, e.Flush(ctx))

	// the oversized checkpoint is gone, the next one went through
	require.Len(t, c.saves, 1)
	require.Equal(t, []byte(`{"ok":1}`), c.saves[0].payload)
}

func TestCheckConflict_DetectsForeignSave(t *testing.T) {
	var conflictKey models.DraftKey
	conflicts := 0

	c := &fakeClient{saveVersion: 2} // server will answer 3
	e, q, m := newEngine(c, WithConflictFunc(func(key models.DraftKey, remote *models.RemoteDraft) ConflictResolution {
		conflictKey = key
		conflicts++
		return KeepMine
	}))
	ctx := context.Background()

	// this device last observed version 1
	require.NoError(t, e.setLastObservedVersion(ctx, key1, 1))

	require.NoError(t, q.Enqueue(ctx, &models.QueueEntry{FormSlug: "intake", ObjectID: "1", Payload: []byte(`{}`)}))
	require.NoError(t, e.Flush(ctx))

	require.Equal(t, 1, conflicts)
	require.Equal(t, key1, conflictKey)

	// baseline moves to the version the server assigned
	v, err := e.lastObservedVersion(ctx, key1)
	require.NoError(t, err)
	require.Equal(t, int64(3), v)
	_ = m
}

func TestCheckConflict_SequentialSaveIsNotAConflict(t *testing.T) {
	conflicts := 0

	c := &fakeClient{saveVersion: 1} // server will answer 2
	e, q, _ := newEngine(c, WithConflictFunc(func(models.DraftKey, *models.RemoteDraft) ConflictResolution {
		conflicts++
		return KeepMine
	}))
	ctx := context.Background()

	require.NoError(t, e.setLastObservedVersion(ctx, key1, 1))
	require.NoError(t, q.Enqueue(ctx, &models.QueueEntry{FormSlug: "intake", ObjectID: "1", Payload: []byte(`{}`)}))
	require.NoError(t, e.Flush(ctx))

	require.Equal(t, 0, conflicts)
}

func TestCheckConflict_UseNewerAdoptsRemote(t *testing.T) {
	remote := &models.RemoteDraft{Payload: []byte(`{"their":1}`), Step: 4, Version: 9}

	var applied *models.RemoteDraft
	c := &fakeClient{saveVersion: 5, loadResp: remote} // server answers 6, baseline is 1
	e, q, _ := newEngine(c,
		WithConflictFunc(func(models.DraftKey, *models.RemoteDraft) ConflictResolution { return UseNewer }),
		WithApplyFunc(func(key models.DraftKey, r *models.RemoteDraft) { applied = r }),
	)
	ctx := context.Background()

	require.NoError(t, e.setLastObservedVersion(ctx, key1, 1))
	require.NoError(t, q.Enqueue(ctx, &models.QueueEntry{FormSlug: "intake", ObjectID: "1", Payload: []byte(`{}`)}))
	require.NoError(t, q.Enqueue(ctx, &models.QueueEntry{FormSlug: "intake", ObjectID: "1", Payload: []byte(`{"stale":1}`)}))

	require.NoError(t, e.Flush(ctx))

	require.Equal(t, remote, applied)

	// queued checkpoints for the key were discarded
	n, _ := q.Len(ctx)
	require.Equal(t, 0, n)

	v, err := e.lastObservedVersion(ctx, key1)
	require.NoError(t, err)
	require.Equal(t, int64(9), v)
}

func TestLoad_SetsBaseline(t *testing.T) {
	c := &fakeClient{loadResp: &models.RemoteDraft{Payload: []byte(`{}`), Version: 4}}
	e, _, _ := newEngine(c)
	ctx := context.Background()

	d, err := e.Load(ctx, key1)
	require.NoError(t, err)
	require.NotNil(t, d)

	v, err := e.lastObservedVersion(ctx, key1)
	require.NoError(t, err)
	require.Equal(t, int64(4), v)
}

func TestLoad_AbsentDraft(t *testing.T) {
	c := &fakeClient{loadResp: nil}
	e, _, _ := newEngine(c)

	d, err := e.Load(context.Background(), key1)
	require.NoError(t, err)
	require.Nil(t, d)
}

func TestDiscard_DropsEverything(t *testing.T) {
	c := &fakeClient{}
	e, q, m := newEngine(c)
	ctx := context.Background()

	e.RecordEdit(ctx, key1, []byte(`{}`), 1, 1)
	require.NoError(t, q.Enqueue(ctx, &models.QueueEntry{FormSlug: "intake", ObjectID: "1", Payload: []byte(`{}`)}))
	require.NoError(t, e.setLastObservedVersion(ctx, key1, 2))

	require.NoError(t, e.Discard(ctx, key1))

	n, _ := q.Len(ctx)
	require.Equal(t, 0, n)
	require.Equal(t, []models.DraftKey{key1}, c.cleared)
	require.Empty(t, m.values)

	// debounced edit must not resurface
	time.Sleep(50 * time.Millisecond)
	require.Empty(t, c.saves)
}

func TestSubmitted_ClearsLikeDiscard(t *testing.T) {
	c := &fakeClient{}
	e, q, _ := newEngine(c)
	ctx := context.Background()

	e.RecordEdit(ctx, key1, []byte(`{}`), 1, 1)

	require.NoError(t, e.Submitted(ctx, key1))

	n, _ := q.Len(ctx)
	require.Equal(t, 0, n)
	require.Equal(t, []models.DraftKey{key1}, c.cleared)
}

func TestPromote_FlushesFirst(t *testing.T) {
	c := &fakeClient{promoteID: "dv-9", promoteHash: []byte{0x09}}
	e, _, _ := newEngine(c)
	ctx := context.Background()

	e.RecordEdit(ctx, key1, []byte(`{"final":1}`), 5, 1)

	id, hash, err := e.Promote(ctx, key1)
	require.NoError(t, err)
	require.Equal(t, "dv-9", id)
	require.Equal(t, []byte{0x09}, hash)

	// the pending edit was checkpointed before promotion
	require.Len(t, c.saves, 1)
	require.Equal(t, []byte(`{"final":1}`), c.saves[0].payload)
}
