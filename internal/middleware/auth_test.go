package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/coop-office-api/internal/dto"
	"github.com/noah-isme/coop-office-api/internal/models"
	"github.com/noah-isme/coop-office-api/internal/service"
)

type stubAdminRepo struct {
	admin *models.Admin
	err   error
}

func (s *stubAdminRepo) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.admin, nil
}

func (s *stubAdminRepo) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.admin, nil
}

func newGuardedRouter(t *testing.T, authSvc *service.AuthService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Session(authSvc), func(c *gin.Context) {
		identity, ok := CurrentAdmin(c)
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"name": identity.Name})
	})
	return router
}

func loginToken(t *testing.T, authSvc *service.AuthService, admin *models.Admin, password string) string {
	t.Helper()
	resp, err := authSvc.Login(context.Background(), dto.LoginRequest{Email: admin.Email, Password: password})
	require.NoError(t, err)
	return resp.Token
}

func TestSessionMissingCookie(t *testing.T) {
	authSvc := service.NewAuthService(&stubAdminRepo{}, nil, nil, service.AuthConfig{Secret: "secret", Expiration: time.Hour})
	router := newGuardedRouter(t, authSvc)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func sessionAdmin(t *testing.T) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Admin{
		ID:           "a2a9e3a4-2a26-4d6c-8a6d-0a5a6f7c8d9e",
		Name:         "Office Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
}

func TestSessionValidCookie(t *testing.T) {
	admin := sessionAdmin(t)
	authSvc := service.NewAuthService(&stubAdminRepo{admin: admin}, nil, nil, service.AuthConfig{Secret: "secret", Expiration: time.Hour})
	router := newGuardedRouter(t, authSvc)

	token := loginToken(t, authSvc, admin, "password")
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: models.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Office Admin")
}

func TestSessionExpiredToken(t *testing.T) {
	admin := sessionAdmin(t)
	repo := &stubAdminRepo{admin: admin}
	issuer := service.NewAuthService(repo, nil, nil, service.AuthConfig{Secret: "secret", Expiration: -time.Minute})
	guard := service.NewAuthService(repo, nil, nil, service.AuthConfig{Secret: "secret", Expiration: time.Hour})
	router := newGuardedRouter(t, guard)

	token := loginToken(t, issuer, admin, "password")
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: models.SessionCookieName, Value: token})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expired")
}

func TestRequireRolesForbidden(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/admin-only", func(c *gin.Context) {
		c.Set(ContextAdminKey, &models.AdminIdentity{ID: "x", Role: models.RoleUser})
	}, RequireRoles(models.RoleSuperAdmin), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
