// Package blob notifies the external file service when catalog file
// documents are removed, so it can release the underlying content. The
// notification is strictly best-effort: the catalog-side delete has already
// committed and is never rolled back on forwarding failure.
package blob

import (
	"context"

	"github.com/dmitrijs2005/filecatalog/internal/logging"
	"github.com/dmitrijs2005/filecatalog/internal/proto/filepb"
)

type Forwarder struct {
	files  filepb.FileClient
	logger logging.Logger
}

func NewForwarder(files filepb.FileClient, l logging.Logger) *Forwarder {
	return &Forwarder{
		files:  files,
		logger: l.With("module", "blob_forwarder"),
	}
}

// Forget requests deletion of each external id, one call per id. Failures
// are logged and swallowed; there is no retry.
func (f *Forwarder) Forget(ctx context.Context, callerID int64, externalIDs []string) {
	for _, id := range externalIDs {
		if id == "" {
			continue
		}
		req := &filepb.DeleteFileRequest{UUID: id, UserID: callerID}
		if _, err := f.files.DeleteFile(ctx, req); err != nil {
			f.logger.Error(ctx, "file service delete failed",
				"external_file_id", id, "error", err.Error())
		}
	}
}
