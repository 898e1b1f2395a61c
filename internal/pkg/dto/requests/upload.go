package requests

import "io"

type CreateUploadSession struct {
	Embedded bool `json:"embedded"`
}

// SelectedFile is a file picked by the user, before selection rules run.
type SelectedFile struct {
	Name        string
	ContentType string
	Size        int64
	Content     io.Reader
}

type ParseDocument struct {
	Type     string `validate:"omitempty,document_type"`
	File     SelectedFile
	FileName string
}

type Pagination struct {
	Page     int
	PageSize int
}
