package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/draftkeeper/internal/logging"
	pb "github.com/dmitrijs2005/draftkeeper/internal/proto"
	"github.com/dmitrijs2005/draftkeeper/internal/server/models"
	"github.com/dmitrijs2005/draftkeeper/internal/server/services"
)

// draftSvc is the slice of DraftService the transport needs. Kept as an
// interface so handler tests can substitute fakes.
type draftSvc interface {
	Save(ctx context.Context, principal string, key models.DraftKey, payload []byte, step, schemaVersion int64) (int64, error)
	Load(ctx context.Context, principal string, key models.DraftKey) (*services.LoadResult, error)
	Clear(ctx context.Context, principal string, key models.DraftKey) error
	Promote(ctx context.Context, principal string, key models.DraftKey) (*models.DurableVersion, error)
}

type GRPCServer struct {
	pb.UnimplementedDraftKeeperServiceServer
	address   string
	drafts    draftSvc
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, ds draftSvc, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		drafts:    ds,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	// creates gRPC-server
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.accessTokenInterceptor))

	// registers service
	pb.RegisterDraftKeeperServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gPRC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	// starts accepting incoming connections
	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
