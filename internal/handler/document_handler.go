package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/coop-office-api/internal/dto"
	"github.com/noah-isme/coop-office-api/internal/models"
	"github.com/noah-isme/coop-office-api/internal/service"
	"github.com/noah-isme/coop-office-api/pkg/response"
)

// DocumentHandler exposes notice, form and announcement endpoints.
type DocumentHandler struct {
	documents *service.DocumentService
}

// NewDocumentHandler constructs DocumentHandler.
func NewDocumentHandler(documents *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{documents: documents}
}

// Create godoc
// @Summary Publish a document
// @Tags Documents
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param type formData string true "Form or Announcement"
// @Param date formData string true "Display date"
// @Param description formData string false "Description"
// @Param file formData file false "PDF file"
// @Success 201 {object} response.Envelope
// @Router /addPdf [post]
func (h *DocumentHandler) Create(c *gin.Context) {
	var req dto.CreateDocumentRequest
	_ = c.ShouldBind(&req)

	file, _, err := readUploadedFile(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	doc, err := h.documents.Create(c.Request.Context(), req, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "document published", doc)
}

// List godoc
// @Summary List all documents
// @Tags Documents
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /getAllPdf [get]
func (h *DocumentHandler) List(c *gin.Context) {
	h.list(c, nil, false)
}

// ListForms godoc
// @Summary List published forms
// @Tags Documents
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /getAllForm [get]
func (h *DocumentHandler) ListForms(c *gin.Context) {
	docType := models.DocumentTypeForm
	h.list(c, &docType, false)
}

// ListAnnouncements godoc
// @Summary List announcements ordered by their display date
// @Tags Documents
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /getAllAnnouncement [get]
func (h *DocumentHandler) ListAnnouncements(c *gin.Context) {
	docType := models.DocumentTypeAnnouncement
	h.list(c, &docType, true)
}

func (h *DocumentHandler) list(c *gin.Context, docType *models.DocumentType, sortByDate bool) {
	filter := models.DocumentFilter{Type: docType, SortByDate: sortByDate}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil {
		filter.Limit = limit
	}

	docs, page, err := h.documents.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, "", docs, page)
}

// Download godoc
// @Summary Get a signed download URL for a document
// @Tags Documents
// @Produce json
// @Param pdfId path string true "Document ID"
// @Success 200 {object} response.Envelope
// @Router /downloadpdf/{pdfId} [get]
func (h *DocumentHandler) Download(c *gin.Context) {
	result, err := h.documents.Download(c.Request.Context(), c.Param("pdfId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", result)
}

// Delete godoc
// @Summary Delete a document
// @Tags Documents
// @Produce json
// @Param id path string true "Document ID"
// @Success 200 {object} response.Envelope
// @Router /deletePdf/{id} [delete]
func (h *DocumentHandler) Delete(c *gin.Context) {
	if err := h.documents.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "document deleted", nil)
}
