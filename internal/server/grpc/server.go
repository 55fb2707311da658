// Package grpc exposes the catalog engine over gRPC. The unary gate
// interceptor rejects anonymous mutation attempts before they reach the
// handlers; fine-grained access decisions stay in the catalog package.
package grpc

import (
	"context"
	"net"

	"google.golang.org/grpc"

	"github.com/dmitrijs2005/filecatalog/internal/grpcx"
	"github.com/dmitrijs2005/filecatalog/internal/logging"
	"github.com/dmitrijs2005/filecatalog/internal/proto/catalogpb"
	"github.com/dmitrijs2005/filecatalog/internal/server/catalog"
	"github.com/dmitrijs2005/filecatalog/internal/server/models"
)

// callerResolver is the slice of identity.Resolver the gate needs.
type callerResolver interface {
	Resolve(ctx context.Context) models.Caller
}

type GRPCServer struct {
	catalogpb.UnimplementedCatalogServiceServer
	address  string
	catalog  *catalog.Service
	identity callerResolver
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, cs *catalog.Service, ir callerResolver) (*GRPCServer, error) {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "grpc_server"),
		catalog:  cs,
		identity: ir,
	}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(
		grpcx.ServerOption(),
		grpc.ChainUnaryInterceptor(s.gateInterceptor),
	)

	catalogpb.RegisterCatalogServiceServer(srv, s)

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", s.address)

	if err := srv.Serve(listen); err != nil {
		return err
	}

	return nil
}
