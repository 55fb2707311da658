package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/filecatalog/internal/proto/catalogpb"
	"github.com/dmitrijs2005/filecatalog/internal/server/identity"
)

// readMethods enumerates the catalog methods that only disclose data.
// Every method not listed here mutates the catalog and requires an
// authenticated caller. New RPCs must be classified here explicitly.
var readMethods = map[string]bool{
	catalogpb.CatalogService_GetDirectoryContent_FullMethodName: true,
}

// gateInterceptor resolves the caller once per request. Authenticated
// callers always proceed; anonymous callers proceed only on read methods.
// The resolved caller rides along in the context so the engine does not
// repeat the auth lookup.
func (s *GRPCServer) gateInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	caller := s.identity.Resolve(ctx)

	if !caller.Authenticated && !readMethods[info.FullMethod] {
		s.logger.Warn(ctx, "anonymous write attempt rejected", "method", info.FullMethod)
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}

	ctx = identity.WithCaller(ctx, caller)

	return handler(ctx, req)
}
