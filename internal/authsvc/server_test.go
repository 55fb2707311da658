package authsvc

import (
	"context"
	"testing"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/filecatalog/internal/logging"
	"github.com/dmitrijs2005/filecatalog/internal/proto/authpb"
)

type nopLogger struct{}

func (n nopLogger) Info(context.Context, string, ...any)  {}
func (n nopLogger) Warn(context.Context, string, ...any)  {}
func (n nopLogger) Error(context.Context, string, ...any) {}
func (n nopLogger) With(...any) logging.Logger            { return n }

func newTestServer(maxSessions int) *GRPCServer {
	s, _ := NewGRPCServer("127.0.0.1:0", nopLogger{}, NewSessionStore(maxSessions, 0))
	return s
}

func TestCreateSessionAndGetCurrentUser(t *testing.T) {
	s := newTestServer(10)
	ctx := context.Background()

	_, err := s.CreateSession(ctx, &authpb.FullUserData{
		SessionID: "sess-1",
		User:      &authpb.User{ID: 42, Email: "a@example.com"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	u, err := s.GetCurrentUser(ctx, &authpb.SessionData{SessionID: "sess-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.GetID() != 42 || !u.GetIsAuth() {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestCreateSession_MissingFields(t *testing.T) {
	s := newTestServer(10)

	_, err := s.CreateSession(context.Background(), &authpb.FullUserData{SessionID: "sess-1"})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected InvalidArgument, got %v", status.Code(err))
	}
}

func TestCreateSession_TableFull(t *testing.T) {
	s := newTestServer(1)
	ctx := context.Background()

	if _, err := s.CreateSession(ctx, &authpb.FullUserData{SessionID: "a", User: &authpb.User{ID: 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := s.CreateSession(ctx, &authpb.FullUserData{SessionID: "b", User: &authpb.User{ID: 2}})
	if status.Code(err) != codes.ResourceExhausted {
		t.Fatalf("expected ResourceExhausted, got %v", status.Code(err))
	}
}

func TestLogoutInvalidatesSession(t *testing.T) {
	s := newTestServer(10)
	ctx := context.Background()

	if _, err := s.CreateSession(ctx, &authpb.FullUserData{SessionID: "sess-1", User: &authpb.User{ID: 1}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := s.Logout(ctx, &authpb.SessionData{SessionID: "sess-1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := s.GetCurrentUser(ctx, &authpb.SessionData{SessionID: "sess-1"})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected Unauthenticated, got %v", status.Code(err))
	}

	// unknown session is not an error
	if _, err := s.Logout(ctx, &authpb.SessionData{SessionID: "nope"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
