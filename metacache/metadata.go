package metacache

import "time"

// FileMetadata describes an uploaded attachment, keyed by its generated id.
type FileMetadata struct {
	FileID     string    `json:"fileId"`
	Filename   string    `json:"filename"`
	Filepath   string    `json:"filepath"`
	Mimetype   string    `json:"mimetype"`
	Size       int64     `json:"size"`
	Extension  string    `json:"extension"`
	ProductID  string    `json:"productId"`
	FolderID   string    `json:"folderId,omitempty"`
	UploadedAt time.Time `json:"uploadedAt"`
}
