// Package acl evaluates per-object access decisions. The functions are pure:
// given the same ACL snapshot and caller they always return the same verdict,
// and they perform no I/O.
package acl

import "github.com/dmitrijs2005/filecatalog/internal/server/models"

// CanRead reports whether the caller may see the object. Public objects are
// visible to everyone, including anonymous callers. Otherwise the caller must
// be authenticated and be the owner, an allowed reader, or an allowed writer
// (write access implies read access).
func CanRead(a models.Access, c models.Caller) bool {
	if a.IsPublic {
		return true
	}
	if !c.Authenticated {
		return false
	}
	if c.UserID == a.OwnerID {
		return true
	}
	return contains(a.AllowedReaders, c.UserID) || contains(a.AllowedWriters, c.UserID)
}

// CanWrite reports whether the caller may mutate the object. Only the owner
// and allowed writers qualify; reader membership alone never grants write,
// and the public flag has no effect on writes.
func CanWrite(a models.Access, c models.Caller) bool {
	if !c.Authenticated {
		return false
	}
	if c.UserID == a.OwnerID {
		return true
	}
	return contains(a.AllowedWriters, c.UserID)
}

func contains(ids []int64, id int64) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
