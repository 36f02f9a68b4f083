package dto

import "time"

// CreateTenderRequest carries the multipart fields of a new tender. The PDF
// arrives separately and is mandatory.
type CreateTenderRequest struct {
	Title       string `form:"title" validate:"required"`
	Description string `form:"description"`
	ClosingDate string `form:"closingDate"`
}

// TenderDownloadResponse hands the caller a signed URL plus metadata.
type TenderDownloadResponse struct {
	PDFURL      string    `json:"pdfUrl"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	ClosingDate time.Time `json:"closingDate"`
}
