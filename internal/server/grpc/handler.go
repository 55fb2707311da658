package grpc

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/filecatalog/internal/common"
	"github.com/dmitrijs2005/filecatalog/internal/proto/catalogpb"
	"github.com/dmitrijs2005/filecatalog/internal/server/catalog"
	"github.com/dmitrijs2005/filecatalog/internal/server/models"
)

// statusFromError maps engine sentinels to gRPC status codes. Anything
// unrecognized is an internal error and keeps its message out of the wire.
func statusFromError(err error) error {
	switch {
	case errors.Is(err, common.ErrUnauthenticated):
		return status.Error(codes.Unauthenticated, "authentication required")
	case errors.Is(err, common.ErrPermissionDenied):
		return status.Error(codes.PermissionDenied, "permission denied")
	case errors.Is(err, common.ErrNotFound):
		return status.Error(codes.NotFound, "object not found")
	default:
		return status.Error(codes.Internal, "internal error")
	}
}

func directoryResponse(d *models.Directory) *catalogpb.DirectoryResponse {
	return &catalogpb.DirectoryResponse{
		Id:             d.ID,
		Name:           d.Name,
		ParentId:       d.ParentID,
		IsPublic:       d.IsPublic,
		OwnerId:        d.OwnerID,
		AllowedReaders: d.AllowedReaders,
		AllowedWriters: d.AllowedWriters,
	}
}

func fileResponse(f *models.File) *catalogpb.FileResponse {
	return &catalogpb.FileResponse{
		Id:             f.ID,
		Name:           f.Name,
		ExternalFileId: f.ExternalFileID,
		IsPublic:       f.IsPublic,
		OwnerId:        f.OwnerID,
		AllowedReaders: f.AllowedReaders,
		AllowedWriters: f.AllowedWriters,
	}
}

func (s *GRPCServer) CreateDirectory(ctx context.Context, req *catalogpb.CreateDirectoryRequest) (*catalogpb.DirectoryResponse, error) {

	d, err := s.catalog.CreateDirectory(ctx, catalog.CreateDirectoryParams{
		Name:           req.GetName(),
		ParentID:       req.GetParentId(),
		IsPublic:       req.GetIsPublic(),
		AllowedReaders: req.GetAllowedReaders(),
		AllowedWriters: req.GetAllowedWriters(),
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return directoryResponse(d), nil
}

func (s *GRPCServer) UpdateDirectory(ctx context.Context, req *catalogpb.UpdateDirectoryRequest) (*catalogpb.DirectoryResponse, error) {

	d, err := s.catalog.UpdateDirectory(ctx, catalog.UpdateDirectoryParams{
		ID:             req.GetId(),
		Name:           req.GetName(),
		ParentID:       req.GetParentId(),
		IsPublic:       req.GetIsPublic(),
		AllowedReaders: req.GetAllowedReaders(),
		AllowedWriters: req.GetAllowedWriters(),
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return directoryResponse(d), nil
}

func (s *GRPCServer) DeleteDirectory(ctx context.Context, req *catalogpb.DeleteDirectoryRequest) (*catalogpb.DeleteResponse, error) {

	res, err := s.catalog.DeleteDirectory(ctx, req.GetId())
	if err != nil {
		return nil, statusFromError(err)
	}

	return &catalogpb.DeleteResponse{Success: res.Success, Message: res.Message}, nil
}

func (s *GRPCServer) GetDirectoryContent(ctx context.Context, req *catalogpb.GetDirectoryRequest) (*catalogpb.DirectoryContentResponse, error) {

	listing, err := s.catalog.GetDirectoryContent(ctx, req.GetDirectoryId())
	if err != nil {
		return nil, statusFromError(err)
	}

	resp := &catalogpb.DirectoryContentResponse{
		Directories: []*catalogpb.DirectoryResponse{},
		Files:       []*catalogpb.FileResponse{},
	}
	for _, d := range listing.Directories {
		resp.Directories = append(resp.Directories, directoryResponse(d))
	}
	for _, f := range listing.Files {
		resp.Files = append(resp.Files, fileResponse(f))
	}

	return resp, nil
}

func (s *GRPCServer) RegisterFile(ctx context.Context, req *catalogpb.RegisterFileRequest) (*catalogpb.FileResponse, error) {

	f, err := s.catalog.RegisterFile(ctx, catalog.RegisterFileParams{
		Name:           req.GetName(),
		ParentID:       req.GetParentDirectoryId(),
		ExternalFileID: req.GetExternalFileId(),
		IsPublic:       req.GetIsPublic(),
		AllowedReaders: req.GetAllowedReaders(),
		AllowedWriters: req.GetAllowedWriters(),
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return fileResponse(f), nil
}

func (s *GRPCServer) UpdateFile(ctx context.Context, req *catalogpb.UpdateFileRequest) (*catalogpb.FileResponse, error) {

	f, err := s.catalog.UpdateFile(ctx, catalog.UpdateFileParams{
		ID:             req.GetId(),
		Name:           req.GetName(),
		IsPublic:       req.GetIsPublic(),
		AllowedReaders: req.GetAllowedReaders(),
		AllowedWriters: req.GetAllowedWriters(),
	})
	if err != nil {
		return nil, statusFromError(err)
	}

	return fileResponse(f), nil
}

func (s *GRPCServer) DeleteFile(ctx context.Context, req *catalogpb.DeleteFileRequest) (*catalogpb.DeleteResponse, error) {

	res, err := s.catalog.DeleteFile(ctx, req.GetId())
	if err != nil {
		return nil, statusFromError(err)
	}

	return &catalogpb.DeleteResponse{Success: res.Success, Message: res.Message}, nil
}
