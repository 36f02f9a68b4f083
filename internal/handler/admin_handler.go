package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/coop-office-api/internal/dto"
	"github.com/noah-isme/coop-office-api/internal/service"
	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
	"github.com/noah-isme/coop-office-api/pkg/response"
)

// AdminHandler exposes administrator account endpoints.
type AdminHandler struct {
	admins *service.AdminService
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(admins *service.AdminService) *AdminHandler {
	return &AdminHandler{admins: admins}
}

// Register godoc
// @Summary Register a new admin
// @Tags Admins
// @Accept json
// @Produce json
// @Param payload body dto.RegisterAdminRequest true "Admin payload"
// @Success 201 {object} response.Envelope
// @Router /registerAdmin [post]
func (h *AdminHandler) Register(c *gin.Context) {
	var req dto.RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	admin, err := h.admins.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "admin registered", admin)
}

// List godoc
// @Summary List all admins
// @Tags Admins
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admins [get]
func (h *AdminHandler) List(c *gin.Context) {
	admins, err := h.admins.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "", admins)
}

// Delete godoc
// @Summary Delete an admin
// @Tags Admins
// @Produce json
// @Param id path string true "Admin ID"
// @Success 200 {object} response.Envelope
// @Router /deleteAdmin/{id} [delete]
func (h *AdminHandler) Delete(c *gin.Context) {
	if err := h.admins.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "admin deleted", nil)
}
