package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/thanhdanh14/CV-Analyzer/internal/models"
)

var (
	ErrUnsupportedFile = errors.New("unsupported file type")
	ErrFileTooLarge    = errors.New("file too large")
)

// acceptedTypes maps the extensions offered in the file picker to the MIME
// type declared for them. The backend remains the authority on content.
var acceptedTypes = map[string]string{
	".pdf":  "application/pdf",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".txt":  "text/plain",
}

// AcceptAttribute is the file input accept list.
const AcceptAttribute = ".pdf,.docx,.txt"

const ExportFilename = "cv_analysis_results.xlsx"

type UploadService interface {
	ReadFile(file *multipart.FileHeader) (models.Upload, error)
	ReadBatch(files []*multipart.FileHeader) ([]models.Upload, error)
}

type uploadService struct {
	maxFileSize   int64
	maxBatchFiles int
}

func NewUploadService(maxFileSize int64, maxBatchFiles int) UploadService {
	return &uploadService{
		maxFileSize:   maxFileSize,
		maxBatchFiles: maxBatchFiles,
	}
}

// IsAccepted reports whether filename carries one of the offered extensions.
func IsAccepted(filename string) bool {
	_, ok := acceptedTypes[strings.ToLower(filepath.Ext(filename))]
	return ok
}

// DeclaredMIMEType returns the MIME type for filename's extension, or
// application/octet-stream.
func DeclaredMIMEType(filename string) string {
	if mime, ok := acceptedTypes[strings.ToLower(filepath.Ext(filename))]; ok {
		return mime
	}
	return "application/octet-stream"
}

// NewUpload builds an upload from raw bytes, declaring the MIME type from the
// extension.
func NewUpload(filename string, content []byte) models.Upload {
	return models.Upload{
		Filename: filepath.Base(filename),
		MIMEType: DeclaredMIMEType(filename),
		Content:  content,
	}
}

func (s *uploadService) ReadFile(file *multipart.FileHeader) (models.Upload, error) {
	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return models.Upload{}, fmt.Errorf("%w: %s is %d bytes, max %d", ErrFileTooLarge, file.Filename, file.Size, s.maxFileSize)
	}

	src, err := file.Open()
	if err != nil {
		return models.Upload{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return models.Upload{}, fmt.Errorf("failed to read uploaded file: %w", err)
	}

	upload := NewUpload(file.Filename, content)
	if ct := file.Header.Get("Content-Type"); ct != "" && !IsAccepted(file.Filename) {
		upload.MIMEType = ct
	}
	return upload, nil
}

// ReadBatch reads the batch selection. Files past the batch limit are
// dropped silently, keeping selection order.
func (s *uploadService) ReadBatch(files []*multipart.FileHeader) ([]models.Upload, error) {
	files = TruncateUploads(files, s.maxBatchFiles)

	uploads := make([]models.Upload, 0, len(files))
	for _, file := range files {
		upload, err := s.ReadFile(file)
		if err != nil {
			return nil, err
		}
		uploads = append(uploads, upload)
	}
	return uploads, nil
}

// TruncateUploads keeps the first limit entries in their original order.
func TruncateUploads[T any](files []T, limit int) []T {
	if limit >= 0 && len(files) > limit {
		return files[:limit]
	}
	return files
}
