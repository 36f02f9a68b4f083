package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/noah-isme/coop-office-api/internal/models"
	"github.com/noah-isme/coop-office-api/internal/service"
	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
	"github.com/noah-isme/coop-office-api/pkg/response"
)

// ContextAdminKey is the gin context key storing the authenticated admin.
const ContextAdminKey = "currentAdmin"

// Session protects routes by requiring a valid session cookie. The admin
// behind the token is resolved on every request so a deleted account is cut
// off immediately.
func Session(authService *service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(models.SessionCookieName)
		if err != nil || token == "" {
			response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "login required"))
			c.Abort()
			return
		}

		claims, err := authService.ValidateToken(token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		identity, err := authService.Identity(c.Request.Context(), claims.AdminID)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set(ContextAdminKey, identity)
		c.Next()
	}
}

// CurrentAdmin returns the authenticated admin attached by Session.
func CurrentAdmin(c *gin.Context) (*models.AdminIdentity, bool) {
	value, exists := c.Get(ContextAdminKey)
	if !exists {
		return nil, false
	}
	identity, ok := value.(*models.AdminIdentity)
	return identity, ok
}
