package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/coop-office-api/internal/dto"
	"github.com/noah-isme/coop-office-api/internal/service"
	"github.com/noah-isme/coop-office-api/pkg/response"
)

// CredentialHandler exposes contractor submission endpoints.
type CredentialHandler struct {
	credentials *service.CredentialService
}

// NewCredentialHandler constructs CredentialHandler.
func NewCredentialHandler(credentials *service.CredentialService) *CredentialHandler {
	return &CredentialHandler{credentials: credentials}
}

// Submit godoc
// @Summary Submit contractor credentials for a tender
// @Tags Credentials
// @Accept multipart/form-data
// @Produce json
// @Param tenderId path string true "Tender ID"
// @Param contractorName formData string true "Contractor name"
// @Param file formData file true "Credential PDF"
// @Success 201 {object} response.Envelope
// @Router /submitCredential/{tenderId} [post]
func (h *CredentialHandler) Submit(c *gin.Context) {
	var req dto.SubmitCredentialRequest
	_ = c.ShouldBind(&req)

	file, _, err := readUploadedFile(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	credential, err := h.credentials.Submit(c.Request.Context(), c.Param("tenderId"), req, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "credential submitted", credential)
}

// ListByTender godoc
// @Summary List submissions for a closed tender
// @Tags Credentials
// @Produce json
// @Param tenderId path string true "Tender ID"
// @Success 200 {object} response.Envelope
// @Router /getAllcredential/{tenderId} [get]
func (h *CredentialHandler) ListByTender(c *gin.Context) {
	credentials, err := h.credentials.ListByTender(c.Request.Context(), c.Param("tenderId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", gin.H{"count": len(credentials), "credentials": credentials})
}

// Download godoc
// @Summary Get a signed download URL for a submission PDF
// @Tags Credentials
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} response.Envelope
// @Router /downloadCredential/{id} [get]
func (h *CredentialHandler) Download(c *gin.Context) {
	result, err := h.credentials.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", result)
}

// Delete godoc
// @Summary Delete a submission
// @Tags Credentials
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} response.Envelope
// @Router /deleteCredential/{id} [delete]
func (h *CredentialHandler) Delete(c *gin.Context) {
	if err := h.credentials.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "credential deleted", nil)
}
