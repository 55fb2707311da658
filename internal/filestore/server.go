package filestore

import (
	"context"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/filecatalog/internal/grpcx"
	"github.com/dmitrijs2005/filecatalog/internal/logging"
	"github.com/dmitrijs2005/filecatalog/internal/proto/filepb"
)

// objectStorage is the slice of Storage the server needs.
type objectStorage interface {
	DeleteObject(ctx context.Context, key string) error
}

type GRPCServer struct {
	filepb.UnimplementedFileServer
	address string
	storage objectStorage
	logger  logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, storage objectStorage) (*GRPCServer, error) {
	return &GRPCServer{
		address: a,
		logger:  l.With("module", "file_server"),
		storage: storage,
	}, nil
}

func (s *GRPCServer) DeleteFile(ctx context.Context, req *filepb.DeleteFileRequest) (*filepb.Empty, error) {

	if req.GetUUID() == "" {
		return nil, status.Error(codes.InvalidArgument, "file id required")
	}

	if err := s.storage.DeleteObject(ctx, req.GetUUID()); err != nil {
		s.logger.Error(ctx, "object delete failed", "key", req.GetUUID(), "error", err.Error())
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "object deleted", "key", req.GetUUID(), "user_id", req.GetUserID())
	return &filepb.Empty{}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpcx.ServerOption())

	filepb.RegisterFileServer(srv, s)

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
