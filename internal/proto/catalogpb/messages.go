// Package catalogpb holds hand-maintained Go bindings for the CatalogService
// wire surface defined in proto/catalog.proto. The services exchange these
// messages as JSON frames (see internal/grpcx); keep field names and json
// tags in sync with the proto file.
package catalogpb

type CreateDirectoryRequest struct {
	Name           string  `json:"name,omitempty"`
	ParentId       string  `json:"parent_id,omitempty"`
	IsPublic       bool    `json:"is_public,omitempty"`
	AllowedReaders []int64 `json:"allowed_readers,omitempty"`
	AllowedWriters []int64 `json:"allowed_writers,omitempty"`
}

func (x *CreateDirectoryRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *CreateDirectoryRequest) GetParentId() string {
	if x != nil {
		return x.ParentId
	}
	return ""
}

func (x *CreateDirectoryRequest) GetIsPublic() bool {
	if x != nil {
		return x.IsPublic
	}
	return false
}

func (x *CreateDirectoryRequest) GetAllowedReaders() []int64 {
	if x != nil {
		return x.AllowedReaders
	}
	return nil
}

func (x *CreateDirectoryRequest) GetAllowedWriters() []int64 {
	if x != nil {
		return x.AllowedWriters
	}
	return nil
}

type UpdateDirectoryRequest struct {
	Id             string  `json:"id,omitempty"`
	Name           string  `json:"name,omitempty"`
	ParentId       string  `json:"parent_id,omitempty"`
	IsPublic       bool    `json:"is_public,omitempty"`
	AllowedReaders []int64 `json:"allowed_readers,omitempty"`
	AllowedWriters []int64 `json:"allowed_writers,omitempty"`
}

func (x *UpdateDirectoryRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateDirectoryRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateDirectoryRequest) GetParentId() string {
	if x != nil {
		return x.ParentId
	}
	return ""
}

func (x *UpdateDirectoryRequest) GetIsPublic() bool {
	if x != nil {
		return x.IsPublic
	}
	return false
}

func (x *UpdateDirectoryRequest) GetAllowedReaders() []int64 {
	if x != nil {
		return x.AllowedReaders
	}
	return nil
}

func (x *UpdateDirectoryRequest) GetAllowedWriters() []int64 {
	if x != nil {
		return x.AllowedWriters
	}
	return nil
}

type DeleteDirectoryRequest struct {
	Id string `json:"id,omitempty"`
}

func (x *DeleteDirectoryRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetDirectoryRequest struct {
	DirectoryId string `json:"directory_id,omitempty"`
}

func (x *GetDirectoryRequest) GetDirectoryId() string {
	if x != nil {
		return x.DirectoryId
	}
	return ""
}

type RegisterFileRequest struct {
	Name              string  `json:"name,omitempty"`
	ParentDirectoryId string  `json:"parent_directory_id,omitempty"`
	ExternalFileId    string  `json:"external_file_id,omitempty"`
	IsPublic          bool    `json:"is_public,omitempty"`
	AllowedReaders    []int64 `json:"allowed_readers,omitempty"`
	AllowedWriters    []int64 `json:"allowed_writers,omitempty"`
}

func (x *RegisterFileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *RegisterFileRequest) GetParentDirectoryId() string {
	if x != nil {
		return x.ParentDirectoryId
	}
	return ""
}

func (x *RegisterFileRequest) GetExternalFileId() string {
	if x != nil {
		return x.ExternalFileId
	}
	return ""
}

func (x *RegisterFileRequest) GetIsPublic() bool {
	if x != nil {
		return x.IsPublic
	}
	return false
}

func (x *RegisterFileRequest) GetAllowedReaders() []int64 {
	if x != nil {
		return x.AllowedReaders
	}
	return nil
}

func (x *RegisterFileRequest) GetAllowedWriters() []int64 {
	if x != nil {
		return x.AllowedWriters
	}
	return nil
}

type UpdateFileRequest struct {
	Id             string  `json:"id,omitempty"`
	Name           string  `json:"name,omitempty"`
	IsPublic       bool    `json:"is_public,omitempty"`
	AllowedReaders []int64 `json:"allowed_readers,omitempty"`
	AllowedWriters []int64 `json:"allowed_writers,omitempty"`
}

func (x *UpdateFileRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *UpdateFileRequest) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *UpdateFileRequest) GetIsPublic() bool {
	if x != nil {
		return x.IsPublic
	}
	return false
}

func (x *UpdateFileRequest) GetAllowedReaders() []int64 {
	if x != nil {
		return x.AllowedReaders
	}
	return nil
}

func (x *UpdateFileRequest) GetAllowedWriters() []int64 {
	if x != nil {
		return x.AllowedWriters
	}
	return nil
}

type DeleteFileRequest struct {
	Id string `json:"id,omitempty"`
}

func (x *DeleteFileRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type DirectoryResponse struct {
	Id             string  `json:"id,omitempty"`
	Name           string  `json:"name,omitempty"`
	ParentId       string  `json:"parent_id,omitempty"`
	IsPublic       bool    `json:"is_public,omitempty"`
	OwnerId        int64   `json:"owner_id,omitempty"`
	AllowedReaders []int64 `json:"allowed_readers,omitempty"`
	AllowedWriters []int64 `json:"allowed_writers,omitempty"`
}

func (x *DirectoryResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *DirectoryResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *DirectoryResponse) GetParentId() string {
	if x != nil {
		return x.ParentId
	}
	return ""
}

func (x *DirectoryResponse) GetIsPublic() bool {
	if x != nil {
		return x.IsPublic
	}
	return false
}

func (x *DirectoryResponse) GetOwnerId() int64 {
	if x != nil {
		return x.OwnerId
	}
	return 0
}

func (x *DirectoryResponse) GetAllowedReaders() []int64 {
	if x != nil {
		return x.AllowedReaders
	}
	return nil
}

func (x *DirectoryResponse) GetAllowedWriters() []int64 {
	if x != nil {
		return x.AllowedWriters
	}
	return nil
}

type FileResponse struct {
	Id             string  `json:"id,omitempty"`
	Name           string  `json:"name,omitempty"`
	ExternalFileId string  `json:"external_file_id,omitempty"`
	IsPublic       bool    `json:"is_public,omitempty"`
	OwnerId        int64   `json:"owner_id,omitempty"`
	AllowedReaders []int64 `json:"allowed_readers,omitempty"`
	AllowedWriters []int64 `json:"allowed_writers,omitempty"`
}

func (x *FileResponse) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *FileResponse) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *FileResponse) GetExternalFileId() string {
	if x != nil {
		return x.ExternalFileId
	}
	return ""
}

func (x *FileResponse) GetIsPublic() bool {
	if x != nil {
		return x.IsPublic
	}
	return false
}

func (x *FileResponse) GetOwnerId() int64 {
	if x != nil {
		return x.OwnerId
	}
	return 0
}

func (x *FileResponse) GetAllowedReaders() []int64 {
	if x != nil {
		return x.AllowedReaders
	}
	return nil
}

func (x *FileResponse) GetAllowedWriters() []int64 {
	if x != nil {
		return x.AllowedWriters
	}
	return nil
}

type DeleteResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message,omitempty"`
}

func (x *DeleteResponse) GetSuccess() bool {
	if x != nil {
		return x.Success
	}
	return false
}

func (x *DeleteResponse) GetMessage() string {
	if x != nil {
		return x.Message
	}
	return ""
}

type DirectoryContentResponse struct {
	Directories []*DirectoryResponse `json:"directories,omitempty"`
	Files       []*FileResponse      `json:"files,omitempty"`
}

func (x *DirectoryContentResponse) GetDirectories() []*DirectoryResponse {
	if x != nil {
		return x.Directories
	}
	return nil
}

func (x *DirectoryContentResponse) GetFiles() []*FileResponse {
	if x != nil {
		return x.Files
	}
	return nil
}
