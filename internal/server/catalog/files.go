package catalog

import (
	"context"

	"github.com/dmitrijs2005/filecatalog/internal/common"
	"github.com/dmitrijs2005/filecatalog/internal/server/acl"
	"github.com/dmitrijs2005/filecatalog/internal/server/models"
)

// RegisterFileParams describes a file whose content already lives in the
// external file service under ExternalFileID.
type RegisterFileParams struct {
	Name           string
	ParentID       string
	ExternalFileID string
	IsPublic       bool
	AllowedReaders []int64
	AllowedWriters []int64
}

// UpdateFileParams follows the same sentinel convention as
// UpdateDirectoryParams, except a file cannot be moved.
type UpdateFileParams struct {
	ID             string
	Name           string
	IsPublic       bool
	AllowedReaders []int64
	AllowedWriters []int64
}

func (s *Service) RegisterFile(ctx context.Context, p RegisterFileParams) (*models.File, error) {
	caller := s.identity.Resolve(ctx)
	if !caller.Authenticated {
		return nil, common.ErrUnauthenticated
	}

	f := &models.File{
		Name:           p.Name,
		ParentID:       p.ParentID,
		ExternalFileID: p.ExternalFileID,
		Access: models.Access{
			OwnerID:        caller.UserID,
			IsPublic:       p.IsPublic,
			AllowedReaders: copyIDs(p.AllowedReaders),
			AllowedWriters: copyIDs(p.AllowedWriters),
		},
	}

	id, err := s.files.Insert(ctx, f)
	if err != nil {
		s.logger.Error(ctx, "file insert failed", "error", err)
		return nil, err
	}
	f.ID = id

	s.logger.Info(ctx, "file registered", "id", id, "owner", caller.UserID)
	return f, nil
}

func (s *Service) UpdateFile(ctx context.Context, p UpdateFileParams) (*models.File, error) {
	caller := s.identity.Resolve(ctx)
	if !caller.Authenticated {
		return nil, common.ErrUnauthenticated
	}

	f, err := s.files.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if !acl.CanWrite(f.Access, caller) {
		return nil, common.ErrPermissionDenied
	}

	var upd models.FileUpdate
	if p.Name != "" {
		upd.Name = &p.Name
	}
	upd.IsPublic = &p.IsPublic
	if len(p.AllowedReaders) > 0 {
		readers := copyIDs(p.AllowedReaders)
		upd.AllowedReaders = &readers
	}
	if len(p.AllowedWriters) > 0 {
		writers := copyIDs(p.AllowedWriters)
		upd.AllowedWriters = &writers
	}

	if err := s.files.Update(ctx, p.ID, upd); err != nil {
		return nil, err
	}
	return s.files.FindByID(ctx, p.ID)
}

func (s *Service) DeleteFile(ctx context.Context, id string) (*DeleteResult, error) {
	caller := s.identity.Resolve(ctx)
	if !caller.Authenticated {
		return nil, common.ErrUnauthenticated
	}

	f, err := s.files.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if f.OwnerID != caller.UserID {
		return nil, common.ErrPermissionDenied
	}

	if err := s.files.Delete(ctx, id); err != nil {
		return nil, err
	}

	s.blobs.Forget(ctx, caller.UserID, []string{f.ExternalFileID})

	s.logger.Info(ctx, "file deleted", "id", id, "owner", caller.UserID)
	return &DeleteResult{Success: true, Message: "file deleted"}, nil
}
