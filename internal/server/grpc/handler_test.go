package grpc

import (
	"bytes"
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	pb "github.com/dmitrijs2005/draftkeeper/internal/proto"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
	"github.com/dmitrijs2005/draftkeeper/internal/server/services"
)

// ---- fakes ----

type fakeDrafts struct {
	saveVersion int64
	saveErr     error
	saveKey     models.DraftKey

	loadResp *services.LoadResult
	loadErr  error

	clearErr error
	clearKey models.DraftKey

	promoteResp *models.DurableVersion
	promoteErr  error
}

func (f *fakeDrafts) Save(ctx context.Context, principal string, key models.DraftKey, payload []byte, step, schemaVersion int64) (int64, error) {
	f.saveKey = key
	return f.saveVersion, f.saveErr
}
func (f *fakeDrafts) Load(ctx context.Context, principal string, key models.DraftKey) (*services.LoadResult, error) {
	return f.loadResp, f.loadErr
}
func (f *fakeDrafts) Clear(ctx context.Context, principal string, key models.DraftKey) error {
	f.clearKey = key
	return f.clearErr
}
func (f *fakeDrafts) Promote(ctx context.Context, principal string, key models.DraftKey) (*models.DurableVersion, error) {
	return f.promoteResp, f.promoteErr
}

// ---- helpers ----

func newServer(d draftSvc) *GRPCServer {
	return &GRPCServer{
		address:   "127.0.0.1:0",
		drafts:    d,
		logger:    nopLogger{},
		jwtSecret: []byte("k"),
	}
}

func authedCtx(userID string) context.Context {
	return context.WithValue(context.Background(), UserIDKey, userID)
}

// ---- tests ----

func TestPing_OK(t *testing.T) {
	s := newServer(&fakeDrafts{})
	resp, err := s.Ping(context.Background(), &pb.PingRequest{})
	if err != nil {
		t.Fatalf("Ping error: %v", err)
	}
	if resp.GetStatus() != "OK" {
		t.Fatalf("unexpected status: %q", resp.GetStatus())
	}
}

func TestSaveDraft_OK(t *testing.T) {
	d := &fakeDrafts{saveVersion: 3}
	s := newServer(d)

	resp, err := s.SaveDraft(authedCtx("user-1"), &pb.SaveDraftRequest{
		FormSlug: "intake",
		ObjectId: "42",
		Payload:  []byte(`{"a":1}`),
		Step:     2,
	})
	if err != nil {
		t.Fatalf("SaveDraft error: %v", err)
	}
	if resp.GetVersion() != 3 {
		t.Fatalf("unexpected version: %d", resp.GetVersion())
	}
	want := models.DraftKey{UserID: "user-1", FormSlug: "intake", ObjectID: "42"}
	if d.saveKey != want {
		t.Fatalf("unexpected key: %+v", d.saveKey)
	}
}

func TestSaveDraft_NoPrincipal(t *testing.T) {
	s := newServer(&fakeDrafts{})

	_, err := s.SaveDraft(context.Background(), &pb.SaveDraftRequest{FormSlug: "intake"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}
}

func TestSaveDraft_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code codes.Code
	}{
		{"forbidden", common.ErrForbidden, codes.PermissionDenied},
		{"rate limited", common.ErrRateLimited, codes.ResourceExhausted},
		{"too large", common.ErrPayloadTooLarge, codes.InvalidArgument},
		{"store down", common.ErrStoreUnavailable, codes.Unavailable},
		{"other", common.ErrInternal, codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newServer(&fakeDrafts{saveErr: tt.err})
			_, err := s.SaveDraft(authedCtx("u"), &pb.SaveDraftRequest{FormSlug: "intake"})
			if status.Code(err) != tt.code {
				t.Fatalf("expected %v, got %v", tt.code, status.Code(err))
			}
		})
	}
}

func TestLoadDraft_Found(t *testing.T) {
	d := &fakeDrafts{loadResp: &services.LoadResult{
		Payload:       []byte(`{"a":1}`),
		Step:          2,
		Version:       5,
		SchemaVersion: 1,
	}}
	s := newServer(d)

	resp, err := s.LoadDraft(authedCtx("u"), &pb.LoadDraftRequest{FormSlug: "intake"})
	if err != nil {
		t.Fatalf("LoadDraft error: %v", err)
	}
	if !resp.GetFound() {
		t.Fatal("expected found")
	}
	if !bytes.Equal(resp.GetPayload(), []byte(`{"a":1}`)) {
		t.Fatalf("unexpected payload: %s", resp.GetPayload())
	}
	if resp.GetStep() != 2 || resp.GetVersion() != 5 || resp.GetSchemaVersion() != 1 {
		t.Fatalf("unexpected fields: %+v", resp)
	}
}

func TestLoadDraft_Absent(t *testing.T) {
	s := newServer(&fakeDrafts{loadResp: nil})

	resp, err := s.LoadDraft(authedCtx("u"), &pb.LoadDraftRequest{FormSlug: "intake"})
	if err != nil {
		t.Fatalf("LoadDraft error: %v", err)
	}
	if resp.GetFound() {
		t.Fatal("expected found=false")
	}
}

func TestClearDraft_OK(t *testing.T) {
	d := &fakeDrafts{}
	s := newServer(d)

	_, err := s.ClearDraft(authedCtx("u"), &pb.ClearDraftRequest{FormSlug: "intake", ObjectId: "7"})
	if err != nil {
		t.Fatalf("ClearDraft error: %v", err)
	}
	want := models.DraftKey{UserID: "u", FormSlug: "intake", ObjectID: "7"}
	if d.clearKey != want {
		t.Fatalf("unexpected key: %+v", d.clearKey)
	}
}

func TestPromoteDraft_OK(t *testing.T) {
	d := &fakeDrafts{promoteResp: &models.DurableVersion{ID: "dv-1", RecordHash: []byte{0xaa}}}
	s := newServer(d)

	resp, err := s.PromoteDraft(authedCtx("u"), &pb.PromoteDraftRequest{FormSlug: "intake"})
	if err != nil {
		t.Fatalf("PromoteDraft error: %v", err)
	}
	if resp.GetId() != "dv-1" {
		t.Fatalf("unexpected id: %q", resp.GetId())
	}
	if !bytes.Equal(resp.GetRecordHash(), []byte{0xaa}) {
		t.Fatalf("unexpected hash: %x", resp.GetRecordHash())
	}
}

func TestPromoteDraft_NoDraft(t *testing.T) {
	s := newServer(&fakeDrafts{promoteErr: common.ErrNotFound})

	_, err := s.PromoteDraft(authedCtx("u"), &pb.PromoteDraftRequest{FormSlug: "intake"})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected NotFound, got %v", status.Code(err))
	}
}
