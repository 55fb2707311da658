package catalog

import (
	"context"

	"github.com/dmitrijs2005/filecatalog/internal/common"
	"github.com/dmitrijs2005/filecatalog/internal/server/acl"
	"github.com/dmitrijs2005/filecatalog/internal/server/models"
	"github.com/dmitrijs2005/filecatalog/internal/server/store"
)

// CreateDirectoryParams carries the caller-supplied attributes of a new
// directory. An empty ParentID places it at the root.
type CreateDirectoryParams struct {
	Name           string
	ParentID       string
	IsPublic       bool
	AllowedReaders []int64
	AllowedWriters []int64
}

// UpdateDirectoryParams uses sentinel values to mark fields the caller did
// not intend to change: empty Name, ParentID equal to common.ParentNoChange
// and empty ACL lists are skipped. IsPublic is always applied.
type UpdateDirectoryParams struct {
	ID             string
	Name           string
	ParentID       string
	IsPublic       bool
	AllowedReaders []int64
	AllowedWriters []int64
}

func (s *Service) CreateDirectory(ctx context.Context, p CreateDirectoryParams) (*models.Directory, error) {
	caller := s.identity.Resolve(ctx)
	if !caller.Authenticated {
		return nil, common.ErrUnauthenticated
	}

	d := &models.Directory{
		Name:     p.Name,
		ParentID: p.ParentID,
		Access: models.Access{
			OwnerID:        caller.UserID,
			IsPublic:       p.IsPublic,
			AllowedReaders: copyIDs(p.AllowedReaders),
			AllowedWriters: copyIDs(p.AllowedWriters),
		},
	}

	id, err := s.dirs.Insert(ctx, d)
	if err != nil {
		s.logger.Error(ctx, "directory insert failed", "error", err)
		return nil, err
	}
	d.ID = id

	s.logger.Info(ctx, "directory created", "id", id, "owner", caller.UserID)
	return d, nil
}

func (s *Service) UpdateDirectory(ctx context.Context, p UpdateDirectoryParams) (*models.Directory, error) {
	caller := s.identity.Resolve(ctx)
	if !caller.Authenticated {
		return nil, common.ErrUnauthenticated
	}

	d, err := s.dirs.FindByID(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	if !acl.CanWrite(d.Access, caller) {
		return nil, common.ErrPermissionDenied
	}

	var upd models.DirectoryUpdate
	if p.Name != "" {
		upd.Name = &p.Name
	}
	if p.ParentID != common.ParentNoChange {
		upd.ParentID = &p.ParentID
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

	if err := s.dirs.Update(ctx, p.ID, upd); err != nil {
		return nil, err
	}
	return s.dirs.FindByID(ctx, p.ID)
}

func (s *Service) DeleteDirectory(ctx context.Context, id string) (*DeleteResult, error) {
	caller := s.identity.Resolve(ctx)
	if !caller.Authenticated {
		return nil, common.ErrUnauthenticated
	}

	d, err := s.dirs.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if d.OwnerID != caller.UserID {
		return nil, common.ErrPermissionDenied
	}

	if ad, ok := s.dirs.(store.EmptyDirectoryDeleter); ok {
		deleted, err := ad.DeleteIfEmpty(ctx, id)
		if err != nil {
			return nil, err
		}
		if !deleted {
			return &DeleteResult{Success: false, Message: "directory is not empty"}, nil
		}
	} else {
		nd, err := s.dirs.CountByParent(ctx, id)
		if err != nil {
			return nil, err
		}
		nf, err := s.files.CountByParent(ctx, id)
		if err != nil {
			return nil, err
		}
		if nd > 0 || nf > 0 {
			return &DeleteResult{Success: false, Message: "directory is not empty"}, nil
		}

		// The emptiness check and the deletes are not one transaction; the
		// sweep clears files registered under the directory since the check.
		if err := s.files.DeleteByParent(ctx, id); err != nil {
			return nil, err
		}
		if err := s.dirs.Delete(ctx, id); err != nil {
			return nil, err
		}
	}

	s.logger.Info(ctx, "directory deleted", "id", id, "owner", caller.UserID)
	return &DeleteResult{Success: true, Message: "directory deleted"}, nil
}

func (s *Service) GetDirectoryContent(ctx context.Context, directoryID string) (*Listing, error) {
	caller := s.identity.Resolve(ctx)

	if directoryID != common.RootParentID {
		target, err := s.dirs.FindByID(ctx, directoryID)
		if err != nil {
			return nil, err
		}
		if !acl.CanRead(target.Access, caller) {
			return nil, common.ErrPermissionDenied
		}
	}

	dirs, err := s.dirs.ListByParent(ctx, directoryID)
	if err != nil {
		return nil, err
	}
	files, err := s.files.ListByParent(ctx, directoryID)
	if err != nil {
		return nil, err
	}

	listing := &Listing{Directories: []*models.Directory{}, Files: []*models.File{}}
	for _, d := range dirs {
		if acl.CanRead(d.Access, caller) {
			listing.Directories = append(listing.Directories, d)
		}
	}
	for _, f := range files {
		if acl.CanRead(f.Access, caller) {
			listing.Files = append(listing.Files, f)
		}
	}
	return listing, nil
}
