package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/coop-office-api/internal/service"
	"github.com/noah-isme/coop-office-api/pkg/response"
)

// ReportHandler exposes administrative PDF reports.
type ReportHandler struct {
	reports *service.ReportService
}

// NewReportHandler constructs ReportHandler.
func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// TenderRegister godoc
// @Summary Download the tender register as PDF
// @Tags Reports
// @Produce application/pdf
// @Success 200 {file} binary
// @Router /reports/tenders [get]
func (h *ReportHandler) TenderRegister(c *gin.Context) {
	pdf, err := h.reports.TenderRegister(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="tender-register.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
