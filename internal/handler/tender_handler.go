package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/coop-office-api/internal/dto"
	"github.com/noah-isme/coop-office-api/internal/models"
	"github.com/noah-isme/coop-office-api/internal/service"
	"github.com/noah-isme/coop-office-api/pkg/response"
)

// TenderHandler exposes tender endpoints.
type TenderHandler struct {
	tenders *service.TenderService
}

// NewTenderHandler constructs TenderHandler.
func NewTenderHandler(tenders *service.TenderService) *TenderHandler {
	return &TenderHandler{tenders: tenders}
}

// Create godoc
// @Summary Publish a tender
// @Tags Tenders
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string false "Description"
// @Param closingDate formData string false "Closing date, RFC3339 or YYYY-MM-DD"
// @Param file formData file true "Tender PDF"
// @Success 201 {object} response.Envelope
// @Router /createTender [post]
func (h *TenderHandler) Create(c *gin.Context) {
	var req dto.CreateTenderRequest
	_ = c.ShouldBind(&req)

	file, _, err := readUploadedFile(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	tender, err := h.tenders.Create(c.Request.Context(), req, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "tender published", tender)
}

// List godoc
// @Summary List tenders
// @Tags Tenders
// @Produce json
// @Param active query bool false "Only tenders still open"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /getAllTenders [get]
func (h *TenderHandler) List(c *gin.Context) {
	filter := models.TenderFilter{ActiveOnly: c.Query("active") == "true"}
	if page, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil {
		filter.Page = page
	}
	if limit, err := strconv.Atoi(c.DefaultQuery("limit", "20")); err == nil {
		filter.Limit = limit
	}

	tenders, page, err := h.tenders.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, "", tenders, page)
}

// Get godoc
// @Summary Get a single tender
// @Tags Tenders
// @Produce json
// @Param id path string true "Tender ID"
// @Success 200 {object} response.Envelope
// @Router /singleTender/{id} [get]
func (h *TenderHandler) Get(c *gin.Context) {
	tender, err := h.tenders.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", tender)
}

// Download godoc
// @Summary Get a signed download URL for a tender PDF
// @Tags Tenders
// @Produce json
// @Param tenderId path string true "Tender ID"
// @Success 200 {object} response.Envelope
// @Router /downloadTender/{tenderId} [get]
func (h *TenderHandler) Download(c *gin.Context) {
	result, err := h.tenders.Download(c.Request.Context(), c.Param("tenderId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", result)
}

// Delete godoc
// @Summary Delete a tender
// @Tags Tenders
// @Produce json
// @Param id path string true "Tender ID"
// @Success 200 {object} response.Envelope
// @Router /deleteTender/{id} [delete]
func (h *TenderHandler) Delete(c *gin.Context) {
	if err := h.tenders.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "tender deleted", nil)
}
