// Package store defines the document-store contracts the catalog engine
// works against. Backends provide per-collection stores with document-level
// atomicity only; there are no cross-document transactions, so multi-step
// sequences in the engine (check emptiness, cascade, delete) are not atomic.
package store

import (
	"context"

	"github.com/dmitrijs2005/filecatalog/internal/server/models"
)

// DirectoryStore persists directory documents. FindByID returns
// common.ErrNotFound for unknown or malformed ids; reads normalize ACL
// defaults before returning.
type DirectoryStore interface {
	// Insert stores a new document and returns its store-assigned id.
	Insert(ctx context.Context, d *models.Directory) (string, error)
	FindByID(ctx context.Context, id string) (*models.Directory, error)
	// Update applies the non-nil fields of upd to the document.
	Update(ctx context.Context, id string, upd models.DirectoryUpdate) error
	Delete(ctx context.Context, id string) error
	// ListByParent returns direct children; parentID "" means the root.
	ListByParent(ctx context.Context, parentID string) ([]*models.Directory, error)
	// CountByParent counts direct child directories of parentID.
	CountByParent(ctx context.Context, parentID string) (int64, error)
}

// FileStore persists file documents.
type FileStore interface {
	Insert(ctx context.Context, f *models.File) (string, error)
	FindByID(ctx context.Context, id string) (*models.File, error)
	Update(ctx context.Context, id string, upd models.FileUpdate) error
	Delete(ctx context.Context, id string) error
	ListByParent(ctx context.Context, parentID string) ([]*models.File, error)
	// CountByParent counts direct child files of parentID.
	CountByParent(ctx context.Context, parentID string) (int64, error)
	// DeleteByParent removes every file directly under parentID. Used as a
	// sweep when deleting a directory that passed the emptiness check.
	DeleteByParent(ctx context.Context, parentID string) error
}

// EmptyDirectoryDeleter is an optional DirectoryStore capability. Backends
// with transactions run the emptiness check and the delete as one unit,
// closing the race between checking for children and removing the directory.
type EmptyDirectoryDeleter interface {
	// DeleteIfEmpty removes the directory when no child directory or file
	// references it, reporting whether it was removed. Unknown ids return
	// common.ErrNotFound.
	DeleteIfEmpty(ctx context.Context, id string) (bool, error)
}

// Manager vends the collection stores of one backend.
type Manager interface {
	Directories() DirectoryStore
	Files() FileStore
	Close(ctx context.Context) error
}
