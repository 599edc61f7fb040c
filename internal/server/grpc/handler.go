package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	pb "github.com/dmitrijs2005/draftkeeper/internal/proto"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
)

// principalFromContext extracts the user ID placed by the interceptor.
func principalFromContext(ctx context.Context) (string, error) {
	userID, ok := ctx.Value(UserIDKey).(string)
	if !ok || userID == "" {
		return "", status.Error(codes.Unauthenticated, "missing token")
	}
	return userID, nil
}

// mapError converts service sentinels into gRPC status codes.
func mapError(err error) error {
	switch {
	case errors.Is(err, common.ErrForbidden):
		return status.Error(codes.PermissionDenied, "forbidden")
	case errors.Is(err, common.ErrRateLimited):
		return status.Error(codes.ResourceExhausted, "save quota exceeded")
	case errors.Is(err, common.ErrPayloadTooLarge):
		return status.Error(codes.InvalidArgument, "payload too large")
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "not found")
	case errors.Is(err, common.ErrStoreUnavailable):
		return status.Error(codes.Unavailable, "draft store unavailable")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {

	return &pb.PingResponse{Status: "OK"}, nil

}

func (s *GRPCServer) SaveDraft(ctx context.Context, req *pb.SaveDraftRequest) (*pb.SaveDraftResponse, error) {

	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	key := models.DraftKey{UserID: principal, FormSlug: req.FormSlug, ObjectID: req.ObjectId}

	version, err := s.drafts.Save(ctx, principal, key, req.Payload, req.Step, req.SchemaVersion)
	if err != nil {
		s.logger.Error(ctx, "save draft", "key", key.String(), "error", err.Error())
		return nil, mapError(err)
	}

	return &pb.SaveDraftResponse{Version: version}, nil

}

func (s *GRPCServer) LoadDraft(ctx context.Context, req *pb.LoadDraftRequest) (*pb.LoadDraftResponse, error) {

	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	key := models.DraftKey{UserID: principal, FormSlug: req.FormSlug, ObjectID: req.ObjectId}

	result, err := s.drafts.Load(ctx, principal, key)
	if err != nil {
		s.logger.Error(ctx, "load draft", "key", key.String(), "error", err.Error())
		return nil, mapError(err)
	}

	// nothing to resume
	if result == nil {
		return &pb.LoadDraftResponse{Found: false}, nil
	}

	return &pb.LoadDraftResponse{
		Found:         true,
		Payload:       result.Payload,
		Step:          result.Step,
		Version:       result.Version,
		SchemaVersion: result.SchemaVersion,
	}, nil

}

func (s *GRPCServer) ClearDraft(ctx context.Context, req *pb.ClearDraftRequest) (*pb.ClearDraftResponse, error) {

	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	key := models.DraftKey{UserID: principal, FormSlug: req.FormSlug, ObjectID: req.ObjectId}

	if err := s.drafts.Clear(ctx, principal, key); err != nil {
		s.logger.Error(ctx, "clear draft", "key", key.String(), "error", err.Error())
		return nil, mapError(err)
	}

	return &pb.ClearDraftResponse{}, nil

}

func (s *GRPCServer) PromoteDraft(ctx context.Context, req *pb.PromoteDraftRequest) (*pb.PromoteDraftResponse, error) {

	principal, err := principalFromContext(ctx)
	if err != nil {
		return nil, err
	}

	key := models.DraftKey{UserID: principal, FormSlug: req.FormSlug, ObjectID: req.ObjectId}

	v, err := s.drafts.Promote(ctx, principal, key)
	if err != nil {
		s.logger.Error(ctx, "promote draft", "key", key.String(), "error", err.Error())
		return nil, mapError(err)
	}

	return &pb.PromoteDraftResponse{Id: v.ID, RecordHash: v.RecordHash}, nil

}
