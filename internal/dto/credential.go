package dto

import "time"

// SubmitCredentialRequest carries a contractor's submission fields.
type SubmitCredentialRequest struct {
	ContractorName string `form:"contractorName" validate:"required"`
}

// CredentialDownloadResponse hands the caller a signed URL plus submission
// metadata, including the owning tender's title.
type CredentialDownloadResponse struct {
	PDFURL         string    `json:"pdfUrl"`
	ContractorName string    `json:"contractorName"`
	TenderID       string    `json:"tenderId"`
	TenderTitle    string    `json:"tenderTitle"`
	SubmittedAt    time.Time `json:"submittedAt"`
}
