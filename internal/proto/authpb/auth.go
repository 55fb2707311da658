// Package authpb holds hand-maintained Go bindings for the Auth service
// defined in proto/auth.proto. Messages travel as JSON frames (see
// internal/grpcx).
package authpb

import (
	"context"
	"errors"

	"google.golang.org/grpc"
)

const ServiceName = "auth.Auth"

const (
	Auth_CreateSession_FullMethodName  = "/auth.Auth/CreateSession"
	Auth_Logout_FullMethodName         = "/auth.Auth/Logout"
	Auth_GetCurrentUser_FullMethodName = "/auth.Auth/GetCurrentUser"
)

type User struct {
	ID     int64  `json:"ID,omitempty"`
	Email  string `json:"Email,omitempty"`
	IsAuth bool   `json:"IsAuth,omitempty"`
}

func (x *User) GetID() int64 {
	if x != nil {
		return x.ID
	}
	return 0
}

func (x *User) GetEmail() string {
	if x != nil {
		return x.Email
	}
	return ""
}

func (x *User) GetIsAuth() bool {
	if x != nil {
		return x.IsAuth
	}
	return false
}

type FullUserData struct {
	User      *User  `json:"user,omitempty"`
	SessionID string `json:"SessionID,omitempty"`
}

func (x *FullUserData) GetUser() *User {
	if x != nil {
		return x.User
	}
	return nil
}

func (x *FullUserData) GetSessionID() string {
	if x != nil {
		return x.SessionID
	}
	return ""
}

type SessionData struct {
	SessionID string `json:"SessionID,omitempty"`
}

func (x *SessionData) GetSessionID() string {
	if x != nil {
		return x.SessionID
	}
	return ""
}

type Empty struct{}

// AuthClient is the client API for the Auth service.
type AuthClient interface {
	CreateSession(ctx context.Context, in *FullUserData, opts ...grpc.CallOption) (*Empty, error)
	Logout(ctx context.Context, in *SessionData, opts ...grpc.CallOption) (*Empty, error)
	GetCurrentUser(ctx context.Context, in *SessionData, opts ...grpc.CallOption) (*User, error)
}

type authClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthClient(cc grpc.ClientConnInterface) AuthClient {
	return &authClient{cc}
}

func (c *authClient) CreateSession(ctx context.Context, in *FullUserData, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, Auth_CreateSession_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) Logout(ctx context.Context, in *SessionData, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, Auth_Logout_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *authClient) GetCurrentUser(ctx context.Context, in *SessionData, opts ...grpc.CallOption) (*User, error) {
	out := new(User)
	err := c.cc.Invoke(ctx, Auth_GetCurrentUser_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// AuthServer is the server API for the Auth service.
type AuthServer interface {
	CreateSession(context.Context, *FullUserData) (*Empty, error)
	Logout(context.Context, *SessionData) (*Empty, error)
	GetCurrentUser(context.Context, *SessionData) (*User, error)
}

type UnimplementedAuthServer struct{}

func (UnimplementedAuthServer) CreateSession(context.Context, *FullUserData) (*Empty, error) {
	return nil, errUnimplemented
}

func (UnimplementedAuthServer) Logout(context.Context, *SessionData) (*Empty, error) {
	return nil, errUnimplemented
}

func (UnimplementedAuthServer) GetCurrentUser(context.Context, *SessionData) (*User, error) {
	return nil, errUnimplemented
}

var errUnimplemented = errors.New("method not implemented")

func RegisterAuthServer(s grpc.ServiceRegistrar, srv AuthServer) {
	s.RegisterService(&Auth_ServiceDesc, srv)
}

func _Auth_CreateSession_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(FullUserData)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServer).CreateSession(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Auth_CreateSession_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServer).CreateSession(ctx, req.(*FullUserData))
	}
	return interceptor(ctx, in, info, handler)
}

func _Auth_Logout_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SessionData)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServer).Logout(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Auth_Logout_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServer).Logout(ctx, req.(*SessionData))
	}
	return interceptor(ctx, in, info, handler)
}

func _Auth_GetCurrentUser_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(SessionData)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(AuthServer).GetCurrentUser(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: Auth_GetCurrentUser_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(AuthServer).GetCurrentUser(ctx, req.(*SessionData))
	}
	return interceptor(ctx, in, info, handler)
}

// Auth_ServiceDesc is the grpc.ServiceDesc for the Auth service.
var Auth_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*AuthServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateSession",
			Handler:    _Auth_CreateSession_Handler,
		},
		{
			MethodName: "Logout",
			Handler:    _Auth_Logout_Handler,
		},
		{
			MethodName: "GetCurrentUser",
			Handler:    _Auth_GetCurrentUser_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/auth.proto",
}
