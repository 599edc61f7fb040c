package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/draftkeeper/internal/common"
	pb "github.com/dmitrijs2005/draftkeeper/internal/proto"
	"github.com/dmitrijs2005/draftkeeper/internal/server/auth"
)

type ctxKey string

// UserIDKey is the context key under which the interceptor stores the
// authenticated user ID for handlers.
const UserIDKey ctxKey = "userID"

// accessTokenInterceptor authenticates every RPC except Ping. The token
// travels in the access_token metadata entry; its user ID becomes the
// principal for all draft operations.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if info.FullMethod != pb.DraftKeeperService_Ping_FullMethodName {

		var accessToken string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AccessTokenHeaderName)
			if len(values) > 0 {
				accessToken = values[0]
			}
		}
		if len(accessToken) == 0 {
			return nil, status.Error(codes.Unauthenticated, "missing token")
		}

		userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				return nil, status.Error(codes.Unauthenticated, "token expired")
			}
			return nil, status.Error(codes.Unauthenticated, "invalid token")
		}

		ctx = context.WithValue(ctx, UserIDKey, userID)

	}

	return handler(ctx, req)
}
