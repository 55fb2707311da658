package models

// Directory is a node of the catalog tree. ParentID references another
// Directory's ID, or common.RootParentID for top-level directories. The
// engine performs no cycle check on moves; see DeleteDirectory for the
// emptiness rule.
type Directory struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	ParentID string `json:"parent_id"`
	Access
}

// DirectoryUpdate carries a partial update: nil fields are left untouched.
type DirectoryUpdate struct {
	Name           *string
	ParentID       *string
	IsPublic       *bool
	AllowedReaders *[]int64
	AllowedWriters *[]int64
}
