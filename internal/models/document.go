package models

import "time"

// DocumentType distinguishes the two kinds of published PDFs.
type DocumentType string

const (
	DocumentTypeForm         DocumentType = "Form"
	DocumentTypeAnnouncement DocumentType = "Announcement"
)

// Valid reports whether the type is one of the accepted values.
func (t DocumentType) Valid() bool {
	return t == DocumentTypeForm || t == DocumentTypeAnnouncement
}

// Document represents a published notice, form or announcement. The date is
// the display date supplied by the editor, kept as-is.
type Document struct {
	ID           string       `db:"id" json:"id"`
	Title        string       `db:"title" json:"title"`
	Type         DocumentType `db:"doc_type" json:"type"`
	Date         string       `db:"doc_date" json:"date"`
	FileURL      string       `db:"file_url" json:"pdfFile,omitempty"`
	FilePublicID string       `db:"file_public_id" json:"-"`
	Description  string       `db:"description" json:"description,omitempty"`
	CreatedAt    time.Time    `db:"created_at" json:"createdAt"`
}

// DocumentFilter narrows document listings.
type DocumentFilter struct {
	Type       *DocumentType
	SortByDate bool
	Page       int
	Limit      int
}
