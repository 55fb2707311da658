package catalogpb

import (
	"context"
	"errors"

	"google.golang.org/grpc"
)

// ServiceName is the fully-qualified gRPC service name.
const ServiceName = "catalog.CatalogService"

// Full method names, usable with grpc.UnaryServerInfo.FullMethod.
const (
	CatalogService_CreateDirectory_FullMethodName     = "/catalog.CatalogService/CreateDirectory"
	CatalogService_UpdateDirectory_FullMethodName     = "/catalog.CatalogService/UpdateDirectory"
	CatalogService_DeleteDirectory_FullMethodName     = "/catalog.CatalogService/DeleteDirectory"
	CatalogService_GetDirectoryContent_FullMethodName = "/catalog.CatalogService/GetDirectoryContent"
	CatalogService_RegisterFile_FullMethodName        = "/catalog.CatalogService/RegisterFile"
	CatalogService_UpdateFile_FullMethodName          = "/catalog.CatalogService/UpdateFile"
	CatalogService_DeleteFile_FullMethodName          = "/catalog.CatalogService/DeleteFile"
)

// CatalogServiceClient is the client API for CatalogService.
type CatalogServiceClient interface {
	CreateDirectory(ctx context.Context, in *CreateDirectoryRequest, opts ...grpc.CallOption) (*DirectoryResponse, error)
	UpdateDirectory(ctx context.Context, in *UpdateDirectoryRequest, opts ...grpc.CallOption) (*DirectoryResponse, error)
	DeleteDirectory(ctx context.Context, in *DeleteDirectoryRequest, opts ...grpc.CallOption) (*DeleteResponse, error)
	GetDirectoryContent(ctx context.Context, in *GetDirectoryRequest, opts ...grpc.CallOption) (*DirectoryContentResponse, error)
	RegisterFile(ctx context.Context, in *RegisterFileRequest, opts ...grpc.CallOption) (*FileResponse, error)
	UpdateFile(ctx context.Context, in *UpdateFileRequest, opts ...grpc.CallOption) (*FileResponse, error)
	DeleteFile(ctx context.Context, in *DeleteFileRequest, opts ...grpc.CallOption) (*DeleteResponse, error)
}

type catalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) CatalogServiceClient {
	return &catalogServiceClient{cc}
}

func (c *catalogServiceClient) CreateDirectory(ctx context.Context, in *CreateDirectoryRequest, opts ...grpc.CallOption) (*DirectoryResponse, error) {
	out := new(DirectoryResponse)
	err := c.cc.Invoke(ctx, CatalogService_CreateDirectory_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) UpdateDirectory(ctx context.Context, in *UpdateDirectoryRequest, opts ...grpc.CallOption) (*DirectoryResponse, error) {
	out := new(DirectoryResponse)
	err := c.cc.Invoke(ctx, CatalogService_UpdateDirectory_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) DeleteDirectory(ctx context.Context, in *DeleteDirectoryRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	out := new(DeleteResponse)
	err := c.cc.Invoke(ctx, CatalogService_DeleteDirectory_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) GetDirectoryContent(ctx context.Context, in *GetDirectoryRequest, opts ...grpc.CallOption) (*DirectoryContentResponse, error) {
	out := new(DirectoryContentResponse)
	err := c.cc.Invoke(ctx, CatalogService_GetDirectoryContent_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) RegisterFile(ctx context.Context, in *RegisterFileRequest, opts ...grpc.CallOption) (*FileResponse, error) {
	out := new(FileResponse)
	err := c.cc.Invoke(ctx, CatalogService_RegisterFile_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) UpdateFile(ctx context.Context, in *UpdateFileRequest, opts ...grpc.CallOption) (*FileResponse, error) {
	out := new(FileResponse)
	err := c.cc.Invoke(ctx, CatalogService_UpdateFile_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *catalogServiceClient) DeleteFile(ctx context.Context, in *DeleteFileRequest, opts ...grpc.CallOption) (*DeleteResponse, error) {
	out := new(DeleteResponse)
	err := c.cc.Invoke(ctx, CatalogService_DeleteFile_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CatalogServiceServer is the server API for CatalogService.
// Implementations should embed UnimplementedCatalogServiceServer.
type CatalogServiceServer interface {
	CreateDirectory(context.Context, *CreateDirectoryRequest) (*DirectoryResponse, error)
	UpdateDirectory(context.Context, *UpdateDirectoryRequest) (*DirectoryResponse, error)
	DeleteDirectory(context.Context, *DeleteDirectoryRequest) (*DeleteResponse, error)
	GetDirectoryContent(context.Context, *GetDirectoryRequest) (*DirectoryContentResponse, error)
	RegisterFile(context.Context, *RegisterFileRequest) (*FileResponse, error)
	UpdateFile(context.Context, *UpdateFileRequest) (*FileResponse, error)
	DeleteFile(context.Context, *DeleteFileRequest) (*DeleteResponse, error)
}

// UnimplementedCatalogServiceServer provides forward-compatible defaults.
type UnimplementedCatalogServiceServer struct{}

func (UnimplementedCatalogServiceServer) CreateDirectory(context.Context, *CreateDirectoryRequest) (*DirectoryResponse, error) {
	return nil, errUnimplemented
}

func (UnimplementedCatalogServiceServer) UpdateDirectory(context.Context, *UpdateDirectoryRequest) (*DirectoryResponse, error) {
	return nil, errUnimplemented
}

func (UnimplementedCatalogServiceServer) DeleteDirectory(context.Context, *DeleteDirectoryRequest) (*DeleteResponse, error) {
	return nil, errUnimplemented
}

func (UnimplementedCatalogServiceServer) GetDirectoryContent(context.Context, *GetDirectoryRequest) (*DirectoryContentResponse, error) {
	return nil, errUnimplemented
}

func (UnimplementedCatalogServiceServer) RegisterFile(context.Context, *RegisterFileRequest) (*FileResponse, error) {
	return nil, errUnimplemented
}

func (UnimplementedCatalogServiceServer) UpdateFile(context.Context, *UpdateFileRequest) (*FileResponse, error) {
	return nil, errUnimplemented
}

func (UnimplementedCatalogServiceServer) DeleteFile(context.Context, *DeleteFileRequest) (*DeleteResponse, error) {
	return nil, errUnimplemented
}

var errUnimplemented = errors.New("method not implemented")

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

func _CatalogService_CreateDirectory_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(CreateDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).CreateDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_CreateDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).CreateDirectory(ctx, req.(*CreateDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_UpdateDirectory_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).UpdateDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_UpdateDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).UpdateDirectory(ctx, req.(*UpdateDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_DeleteDirectory_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).DeleteDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_DeleteDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).DeleteDirectory(ctx, req.(*DeleteDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_GetDirectoryContent_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(GetDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).GetDirectoryContent(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_GetDirectoryContent_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).GetDirectoryContent(ctx, req.(*GetDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_RegisterFile_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(RegisterFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).RegisterFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_RegisterFile_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).RegisterFile(ctx, req.(*RegisterFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_UpdateFile_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(UpdateFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).UpdateFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_UpdateFile_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).UpdateFile(ctx, req.(*UpdateFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _CatalogService_DeleteFile_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(CatalogServiceServer).DeleteFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: CatalogService_DeleteFile_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(CatalogServiceServer).DeleteFile(ctx, req.(*DeleteFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// CatalogService_ServiceDesc is the grpc.ServiceDesc for CatalogService.
var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "CreateDirectory",
			Handler:    _CatalogService_CreateDirectory_Handler,
		},
		{
			MethodName: "UpdateDirectory",
			Handler:    _CatalogService_UpdateDirectory_Handler,
		},
		{
			MethodName: "DeleteDirectory",
			Handler:    _CatalogService_DeleteDirectory_Handler,
		},
		{
			MethodName: "GetDirectoryContent",
			Handler:    _CatalogService_GetDirectoryContent_Handler,
		},
		{
			MethodName: "RegisterFile",
			Handler:    _CatalogService_RegisterFile_Handler,
		},
		{
			MethodName: "UpdateFile",
			Handler:    _CatalogService_UpdateFile_Handler,
		},
		{
			MethodName: "DeleteFile",
			Handler:    _CatalogService_DeleteFile_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/catalog.proto",
}
