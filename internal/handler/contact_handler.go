package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/coop-office-api/internal/dto"
	"github.com/noah-isme/coop-office-api/internal/service"
	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
	"github.com/noah-isme/coop-office-api/pkg/response"
)

// ContactHandler exposes the contact form endpoint.
type ContactHandler struct {
	contact *service.ContactService
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(contact *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Send godoc
// @Summary Relay a contact enquiry to the office WhatsApp
// @Tags Contact
// @Accept json
// @Produce json
// @Param payload body dto.ContactRequest true "Enquiry"
// @Success 200 {object} response.Envelope
// @Router /sendSms [post]
func (h *ContactHandler) Send(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	if err := h.contact.Notify(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "message sent", nil)
}
