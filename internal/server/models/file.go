package models

// File is a catalog entry describing content held by the external file
// service. The catalog never reads or writes the bytes; ExternalFileID is
// an opaque reference used only when requesting deletion.
type File struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	ParentID       string `json:"parent_directory_id"`
	ExternalFileID string `json:"external_file_id"`
	Access
}

// FileUpdate carries a partial update: nil fields are left untouched.
// Files cannot be moved between directories, so there is no parent field.
type FileUpdate struct {
	Name           *string
	IsPublic       *bool
	AllowedReaders *[]int64
	AllowedWriters *[]int64
}
