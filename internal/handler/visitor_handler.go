package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/coop-office-api/internal/service"
	"github.com/noah-isme/coop-office-api/pkg/response"
)

// VisitorHandler exposes visitor counter endpoints.
type VisitorHandler struct {
	visitors *service.VisitorService
}

// NewVisitorHandler constructs VisitorHandler.
func NewVisitorHandler(visitors *service.VisitorService) *VisitorHandler {
	return &VisitorHandler{visitors: visitors}
}

// Track godoc
// @Summary Record a site visit
// @Tags Visitors
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /trackVisitor [post]
func (h *VisitorHandler) Track(c *gin.Context) {
	if err := h.visitors.Track(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "visit recorded", nil)
}

// Stats godoc
// @Summary Today's and this month's visit counts
// @Tags Visitors
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /getVisitor [get]
func (h *VisitorHandler) Stats(c *gin.Context) {
	stats, err := h.visitors.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", stats)
}

// Total godoc
// @Summary All-time visit count
// @Tags Visitors
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /totalVisitCount [get]
func (h *VisitorHandler) Total(c *gin.Context) {
	total, err := h.visitors.Total(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", gin.H{"total": total})
}
