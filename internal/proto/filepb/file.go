// Package filepb holds hand-maintained Go bindings for the File service
// defined in proto/file.proto. Messages travel as JSON frames (see
// internal/grpcx).
package filepb

import (
	"context"
	"errors"

	"google.golang.org/grpc"
)

const ServiceName = "file.File"

const File_DeleteFile_FullMethodName = "/file.File/DeleteFile"

type DeleteFileRequest struct {
	UUID   string `json:"UUID,omitempty"`
	UserID int64  `json:"UserID,omitempty"`
}

func (x *DeleteFileRequest) GetUUID() string {
	if x != nil {
		return x.UUID
	}
	return ""
}

func (x *DeleteFileRequest) GetUserID() int64 {
	if x != nil {
		return x.UserID
	}
	return 0
}

type Empty struct{}

// FileClient is the client API for the File service.
type FileClient interface {
	DeleteFile(ctx context.Context, in *DeleteFileRequest, opts ...grpc.CallOption) (*Empty, error)
}

type fileClient struct {
	cc grpc.ClientConnInterface
}

func NewFileClient(cc grpc.ClientConnInterface) FileClient {
	return &fileClient{cc}
}

func (c *fileClient) DeleteFile(ctx context.Context, in *DeleteFileRequest, opts ...grpc.CallOption) (*Empty, error) {
	out := new(Empty)
	err := c.cc.Invoke(ctx, File_DeleteFile_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// FileServer is the server API for the File service.
type FileServer interface {
	DeleteFile(context.Context, *DeleteFileRequest) (*Empty, error)
}

type UnimplementedFileServer struct{}

func (UnimplementedFileServer) DeleteFile(context.Context, *DeleteFileRequest) (*Empty, error) {
	return nil, errors.New("method not implemented")
}

func RegisterFileServer(s grpc.ServiceRegistrar, srv FileServer) {
	s.RegisterService(&File_ServiceDesc, srv)
}

func _File_DeleteFile_Handler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(DeleteFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(FileServer).DeleteFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: File_DeleteFile_FullMethodName,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(FileServer).DeleteFile(ctx, req.(*DeleteFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// File_ServiceDesc is the grpc.ServiceDesc for the File service.
var File_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*FileServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "DeleteFile",
			Handler:    _File_DeleteFile_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "proto/file.proto",
}
