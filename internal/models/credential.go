package models

import "time"

// Credential is a contractor's submission against a tender.
type Credential struct {
	ID             string    `db:"id" json:"id"`
	TenderID       string    `db:"tender_id" json:"tenderId"`
	ContractorName string    `db:"contractor_name" json:"contractorName"`
	PDFURL         string    `db:"pdf_url" json:"credentialPdfUrl"`
	PDFPublicID    string    `db:"pdf_public_id" json:"-"`
	SubmittedAt    time.Time `db:"submitted_at" json:"submittedAt"`
}
