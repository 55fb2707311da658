// Package catalog implements the directory and file lifecycle against the
// document store. Every operation resolves the caller identity itself and
// consults the acl package before mutating or disclosing anything; the
// request gate in front of the handlers only performs the coarse
// anonymous-write rejection.
package catalog

import (
	"context"

	"github.com/dmitrijs2005/filecatalog/internal/logging"
	"github.com/dmitrijs2005/filecatalog/internal/server/models"
	"github.com/dmitrijs2005/filecatalog/internal/server/store"
)

// identityResolver yields the caller behind a request, or Anonymous.
type identityResolver interface {
	Resolve(ctx context.Context) models.Caller
}

// blobForwarder releases external file content best-effort.
type blobForwarder interface {
	Forget(ctx context.Context, callerID int64, externalIDs []string)
}

type Service struct {
	dirs     store.DirectoryStore
	files    store.FileStore
	identity identityResolver
	blobs    blobForwarder
	logger   logging.Logger
}

func NewService(m store.Manager, identity identityResolver, blobs blobForwarder, l logging.Logger) *Service {
	return &Service{
		dirs:     m.Directories(),
		files:    m.Files(),
		identity: identity,
		blobs:    blobs,
		logger:   l.With("module", "catalog"),
	}
}

// DeleteResult is the in-band outcome of a delete operation. A refused
// delete (non-empty directory) is a soft failure, not a protocol error.
type DeleteResult struct {
	Success bool
	Message string
}

// Listing is the access-filtered content of one directory.
type Listing struct {
	Directories []*models.Directory
	Files       []*models.File
}

func copyIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return append([]int64{}, ids...)
}
