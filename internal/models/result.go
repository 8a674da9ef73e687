package models

import "encoding/json"

// Wire shapes exchanged with the analysis backend.

type BatchResponse struct {
	Results []BatchItem `json:"results"`
	Total   int         `json:"total"`
}

type ModelsResponse struct {
	Models []Model `json:"models"`
}

// ExportRequest carries the batch items as the backend originally sent them.
type ExportRequest struct {
	Results []json.RawMessage `json:"results"`
}

// Upload is a document ready to forward: a byte buffer with its declared
// filename and MIME type.
type Upload struct {
	Filename string
	MIMEType string
	Content  []byte
}

// FileInfo is what the selected-file listing shows for one upload.
type FileInfo struct {
	Filename string `json:"filename"`
	MIMEType string `json:"mime_type"`
	Size     int64  `json:"size"`
	Pages    int    `json:"pages,omitempty"`
}
