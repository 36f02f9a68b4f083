package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/coop-office-api/internal/service"
	"github.com/noah-isme/coop-office-api/pkg/response"
)

// GalleryHandler exposes gallery endpoints.
type GalleryHandler struct {
	gallery *service.GalleryService
}

// NewGalleryHandler constructs GalleryHandler.
func NewGalleryHandler(gallery *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{gallery: gallery}
}

// Create godoc
// @Summary Upload a gallery image
// @Tags Gallery
// @Accept multipart/form-data
// @Produce json
// @Param description formData string false "Description"
// @Param file formData file true "Image file"
// @Success 201 {object} response.Envelope
// @Router /addImage [post]
func (h *GalleryHandler) Create(c *gin.Context) {
	file, filename, err := readUploadedFile(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	image, err := h.gallery.Create(c.Request.Context(), c.PostForm("description"), filename, file)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "image uploaded", image)
}

// List godoc
// @Summary List gallery images
// @Tags Gallery
// @Produce json
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /images [get]
func (h *GalleryHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	images, meta, err := h.gallery.List(c.Request.Context(), page, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, "", images, meta)
}

// Delete godoc
// @Summary Delete a gallery image
// @Tags Gallery
// @Produce json
// @Param id path string true "Image ID"
// @Success 200 {object} response.Envelope
// @Router /deleteImage/{id} [delete]
func (h *GalleryHandler) Delete(c *gin.Context) {
	if err := h.gallery.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "image deleted", nil)
}
