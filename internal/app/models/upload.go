package models

import "time"

type UploadStatus string

const (
	UploadStatusPending   UploadStatus = "pending"
	UploadStatusUploading UploadStatus = "uploading"
	UploadStatusSuccess   UploadStatus = "success"
	UploadStatusError     UploadStatus = "error"
)

type UploadFile struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Size        int64        `json:"size"`
	ContentType string       `json:"content_type"`
	Preview     string       `json:"preview"`
	Status      UploadStatus `json:"status"`
	Error       string       `json:"error,omitempty"`
	Kind        DocumentKind `json:"kind,omitempty"`
}

type UploadSession struct {
	ID          string       `json:"id"`
	Embedded    bool         `json:"embedded"`
	Files       []UploadFile `json:"files"`
	IsUploading bool         `json:"is_uploading"`
	ServerError string       `json:"server_error,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

func (s *UploadSession) FileIndex(fileID string) int {
	for i := range s.Files {
		if s.Files[i].ID == fileID {
			return i
		}
	}
	return -1
}

// HasFile reports whether a file with the same name and byte size is
// already part of the session.
func (s *UploadSession) HasFile(name string, size int64) bool {
	for _, file := range s.Files {
		if file.Name == name && file.Size == size {
			return true
		}
	}
	return false
}

// RecordServerError keeps the first error until the session is reset.
func (s *UploadSession) RecordServerError(message string) {
	if s.ServerError == "" {
		s.ServerError = message
	}
}

// StoredObject is one object listed from the document bucket.
type StoredObject struct {
	Key          string
	LastModified time.Time
}
