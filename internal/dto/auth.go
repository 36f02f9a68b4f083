package dto

import "github.com/noah-isme/coop-office-api/internal/models"

// RegisterAdminRequest creates a new administrator account.
type RegisterAdminRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// LoginRequest holds credentials for authenticating an admin.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse returns the issued credential and admin info. The token is
// also set as an HTTP-only cookie.
type LoginResponse struct {
	Admin *models.Admin    `json:"admin"`
	Token string           `json:"token"`
	Name  string           `json:"name"`
	Role  models.AdminRole `json:"role"`
}
