package authsvc

import (
	"context"
	"errors"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/filecatalog/internal/common"
	"github.com/dmitrijs2005/filecatalog/internal/grpcx"
	"github.com/dmitrijs2005/filecatalog/internal/logging"
	"github.com/dmitrijs2005/filecatalog/internal/proto/authpb"
)

type GRPCServer struct {
	authpb.UnimplementedAuthServer
	address  string
	sessions *SessionStore
	logger   logging.Logger
}

func NewGRPCServer(a string, l logging.Logger, sessions *SessionStore) (*GRPCServer, error) {
	return &GRPCServer{
		address:  a,
		logger:   l.With("module", "auth_server"),
		sessions: sessions,
	}, nil
}

func (s *GRPCServer) CreateSession(ctx context.Context, req *authpb.FullUserData) (*authpb.Empty, error) {

	if req.GetSessionID() == "" || req.GetUser() == nil {
		return nil, status.Error(codes.InvalidArgument, "session id and user required")
	}

	err := s.sessions.Put(req.GetSessionID(), req.GetUser().GetID(), req.GetUser().GetEmail())
	if err != nil {
		if errors.Is(err, common.ErrSessionTableFull) {
			return nil, status.Error(codes.ResourceExhausted, "session table full")
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	s.logger.Info(ctx, "session created", "user_id", req.GetUser().GetID())
	return &authpb.Empty{}, nil
}

func (s *GRPCServer) Logout(ctx context.Context, req *authpb.SessionData) (*authpb.Empty, error) {

	s.sessions.Delete(req.GetSessionID())

	s.logger.Info(ctx, "session removed")
	return &authpb.Empty{}, nil
}

func (s *GRPCServer) GetCurrentUser(ctx context.Context, req *authpb.SessionData) (*authpb.User, error) {

	userID, email, err := s.sessions.Get(req.GetSessionID())
	if err != nil {
		return nil, status.Error(codes.Unauthenticated, "invalid session")
	}

	return &authpb.User{ID: userID, Email: email, IsAuth: true}, nil
}

func (s *GRPCServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := grpc.NewServer(grpcx.ServerOption())

	authpb.RegisterAuthServer(srv, s)

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
