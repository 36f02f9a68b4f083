package dto

import "time"

// CreateDocumentRequest carries the multipart fields of a new notice entry.
// The file arrives separately and is optional.
type CreateDocumentRequest struct {
	Title       string `form:"title" validate:"required"`
	Type        string `form:"type" validate:"required"`
	Date        string `form:"date" validate:"required"`
	Description string `form:"description"`
}

// DocumentDownloadResponse hands the caller a signed URL plus metadata; no
// redirect is performed.
type DocumentDownloadResponse struct {
	PDFURL      string    `json:"pdfUrl"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Date        string    `json:"date"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
