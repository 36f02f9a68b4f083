package models

import "time"

// DefaultClosingWindow is applied when a tender is created without an
// explicit closing date.
const DefaultClosingWindow = 10 * 24 * time.Hour

// Tender represents a published tender with its attached PDF.
type Tender struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description,omitempty"`
	PDFURL      string    `db:"pdf_url" json:"pdfUrl"`
	PDFPublicID string    `db:"pdf_public_id" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	ClosingDate time.Time `db:"closing_date" json:"closingDate"`
}

// Open reports whether submissions are still accepted at the given instant.
// The closing instant itself still accepts submissions.
func (t Tender) Open(now time.Time) bool {
	return !now.After(t.ClosingDate)
}

// TenderFilter narrows tender listings.
type TenderFilter struct {
	ActiveOnly bool
	Page       int
	Limit      int
}
