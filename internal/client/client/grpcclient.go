package client

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/draftkeeper/internal/client/models"
	"github.com/dmitrijs2005/draftkeeper/internal/common"
	pb "github.com/dmitrijs2005/draftkeeper/internal/proto"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.DraftKeeperServiceClient
	accessToken string
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	md.Set(common.AccessTokenHeaderName, token)

	return metadata.NewOutgoingContext(ctx, md)
}

// accessTokenInterceptor attaches the current access token to every
// outgoing call. Tokens are issued outside the client; when one expires the
// user supplies a fresh one via SetAccessToken.
func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	if s.accessToken != "" {
		ctx = withAccessToken(ctx, s.accessToken)
	}

	return invoker(ctx, method, req, reply, cc, opts...)
}

func NewDraftKeeperClientService(endpointURL string) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	err := c.InitGRPCClient()
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {

	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()), grpc.WithUnaryInterceptor(s.accessTokenInterceptor))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewDraftKeeperServiceClient(conn)
	return nil
}

func (s *GRPCClient) SetAccessToken(token string) {
	s.accessToken = token
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}

	return nil

}

func (s *GRPCClient) SaveDraft(ctx context.Context, key models.DraftKey, payload []byte, step, schemaVersion int64) (int64, error) {

	req := &pb.SaveDraftRequest{
		FormSlug:      key.FormSlug,
		ObjectId:      key.ObjectID,
		Payload:       payload,
		Step:          step,
		SchemaVersion: schemaVersion,
	}

	resp, err := s.client.SaveDraft(ctx, req)
	if err != nil {
		return 0, s.mapError(err)
	}

	return resp.Version, nil

}

func (s *GRPCClient) LoadDraft(ctx context.Context, key models.DraftKey) (*models.RemoteDraft, error) {

	req := &pb.LoadDraftRequest{FormSlug: key.FormSlug, ObjectId: key.ObjectID}

	resp, err := s.client.LoadDraft(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}

	// nothing to resume
	if !resp.Found {
		return nil, nil
	}

	return &models.RemoteDraft{
		Payload:       resp.Payload,
		Step:          resp.Step,
		Version:       resp.Version,
		SchemaVersion: resp.SchemaVersion,
	}, nil

}

func (s *GRPCClient) ClearDraft(ctx context.Context, key models.DraftKey) error {

	req := &pb.ClearDraftRequest{FormSlug: key.FormSlug, ObjectId: key.ObjectID}

	_, err := s.client.ClearDraft(ctx, req)
	if err != nil {
		return s.mapError(err)
	}

	return nil

}

func (s *GRPCClient) PromoteDraft(ctx context.Context, key models.DraftKey) (string, []byte, error) {

	req := &pb.PromoteDraftRequest{FormSlug: key.FormSlug, ObjectId: key.ObjectID}

	resp, err := s.client.PromoteDraft(ctx, req)
	if err != nil {
		return "", nil, s.mapError(err)
	}

	return resp.Id, resp.RecordHash, nil

}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated:
		return ErrUnauthorized
	case codes.PermissionDenied:
		return ErrForbidden
	case codes.ResourceExhausted:
		return ErrRateLimited
	case codes.InvalidArgument:
		return ErrPayloadTooLarge
	case codes.NotFound:
		return ErrNotFound
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
