package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/noah-isme/coop-office-api/internal/dto"
	"github.com/noah-isme/coop-office-api/internal/models"
	appErrors "github.com/noah-isme/coop-office-api/pkg/errors"
)

type mockAuthRepo struct {
	adminByEmail   *models.Admin
	adminByID      *models.Admin
	findByEmailErr error
	findByIDErr    error
}

func (m *mockAuthRepo) FindByEmail(ctx context.Context, email string) (*models.Admin, error) {
	if m.findByEmailErr != nil {
		return nil, m.findByEmailErr
	}
	return m.adminByEmail, nil
}

func (m *mockAuthRepo) FindByID(ctx context.Context, id string) (*models.Admin, error) {
	if m.findByIDErr != nil {
		return nil, m.findByIDErr
	}
	if m.adminByID != nil {
		return m.adminByID, nil
	}
	return m.adminByEmail, nil
}

func testAdmin(t *testing.T, password string) *models.Admin {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return &models.Admin{
		ID:           "a2a9e3a4-2a26-4d6c-8a6d-0a5a6f7c8d9e",
		Name:         "Office Admin",
		Email:        "admin@example.com",
		PasswordHash: string(hash),
		Role:         models.RoleUser,
	}
}

func TestAuthServiceLoginUnknownEmail(t *testing.T) {
	repo := &mockAuthRepo{findByEmailErr: sql.ErrNoRows}
	svc := NewAuthService(repo, nil, nil, AuthConfig{Secret: "secret", Expiration: time.Hour})

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "nobody@example.com", Password: "pass"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
	assert.Equal(t, 401, appErr.Status)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	repo := &mockAuthRepo{adminByEmail: testAdmin(t, "correct")}
	svc := NewAuthService(repo, nil, nil, AuthConfig{Secret: "secret", Expiration: time.Hour})

	_, err := svc.Login(context.Background(), dto.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLoginIssuesValidToken(t *testing.T) {
	admin := testAdmin(t, "correct")
	repo := &mockAuthRepo{adminByEmail: admin}
	svc := NewAuthService(repo, nil, nil, AuthConfig{Secret: "secret", Expiration: time.Hour})

	resp, err := svc.Login(context.Background(), dto.LoginRequest{Email: admin.Email, Password: "correct"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, admin.Name, resp.Name)
	assert.Equal(t, admin.Role, resp.Role)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
}

func TestAuthServiceValidateTokenExpired(t *testing.T) {
	admin := testAdmin(t, "correct")
	repo := &mockAuthRepo{adminByEmail: admin}

	issuer := NewAuthService(repo, nil, nil, AuthConfig{Secret: "secret", Expiration: -time.Minute})
	resp, err := issuer.Login(context.Background(), dto.LoginRequest{Email: admin.Email, Password: "correct"})
	require.NoError(t, err)

	_, err = issuer.ValidateToken(resp.Token)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrTokenExpired.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceIdentityGoneAdmin(t *testing.T) {
	repo := &mockAuthRepo{findByIDErr: sql.ErrNoRows}
	svc := NewAuthService(repo, nil, nil, AuthConfig{Secret: "secret", Expiration: time.Hour})

	_, err := svc.Identity(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
