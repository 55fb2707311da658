// Package models defines the catalog's stored document types and the
// partial-update carriers used by the store layer.
package models

// Access is the per-object ACL snapshot: owner, public flag and explicit
// reader/writer grants. Permission never propagates from a parent directory
// to its children; every object carries its own snapshot.
type Access struct {
	OwnerID        int64   `json:"owner_id"`
	IsPublic       bool    `json:"is_public"`
	AllowedReaders []int64 `json:"allowed_readers"`
	AllowedWriters []int64 `json:"allowed_writers"`
}

// Normalize applies defaults for documents written before the ACL fields
// existed: absent lists become empty, absent is_public stays false. Store
// implementations call this on every read so business logic never sees nil.
func (a *Access) Normalize() {
	if a.AllowedReaders == nil {
		a.AllowedReaders = []int64{}
	}
	if a.AllowedWriters == nil {
		a.AllowedWriters = []int64{}
	}
}
