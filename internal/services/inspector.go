package services

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/thanhdanh14/CV-Analyzer/internal/models"
)

// DocumentInspector summarizes uploads for the selected-file listing. It
// never rejects a file.
type DocumentInspector interface {
	Inspect(upload models.Upload) models.FileInfo
	InspectAll(uploads []models.Upload) []models.FileInfo
}

type documentInspector struct{}

func NewDocumentInspector() DocumentInspector {
	return &documentInspector{}
}

func (d *documentInspector) Inspect(upload models.Upload) models.FileInfo {
	info := models.FileInfo{
		Filename: upload.Filename,
		MIMEType: upload.MIMEType,
		Size:     int64(len(upload.Content)),
	}

	if strings.HasSuffix(strings.ToLower(upload.Filename), ".pdf") {
		pages, err := countPDFPages(upload.Content)
		if err != nil {
			log.Printf("⚠️  Could not read page count of %s: %v", upload.Filename, err)
		}
		info.Pages = pages
	}

	return info
}

func (d *documentInspector) InspectAll(uploads []models.Upload) []models.FileInfo {
	infos := make([]models.FileInfo, 0, len(uploads))
	for _, upload := range uploads {
		infos = append(infos, d.Inspect(upload))
	}
	return infos
}

func countPDFPages(content []byte) (pages int, err error) {
	// ledongthuc/pdf panics on some malformed xref tables.
	defer func() {
		if r := recover(); r != nil {
			pages, err = 0, fmt.Errorf("malformed PDF: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}

	return r.NumPage(), nil
}
