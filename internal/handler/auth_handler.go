package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/coop-office-api/internal/dto"
	"github.com/noah-isme/coop-office-api/internal/models"
	"github.com/noah-isme/coop-office-api/internal/service"
	"github.com/noah-isme/coop-office-api/pkg/config"
	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
	"github.com/noah-isme/coop-office-api/pkg/response"
)

// AuthHandler exposes login and logout endpoints.
type AuthHandler struct {
	auth       *service.AuthService
	production bool
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(auth *service.AuthService, env string) *AuthHandler {
	return &AuthHandler{auth: auth, production: env == config.EnvProduction}
}

// Login godoc
// @Summary Authenticate an admin
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, result.Token, int(h.auth.TokenTTL().Seconds()))
	response.OK(c, "login successful", result)
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setSessionCookie(c, "", -1)
	response.OK(c, "logged out", nil)
}

// The cookie crosses origins in production deployments, which requires
// SameSite=None and the Secure flag.
func (h *AuthHandler) setSessionCookie(c *gin.Context, token string, maxAge int) {
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(models.SessionCookieName, token, maxAge, "/", "", h.production, true)
}
