package dtos

import "github.com/reinzjustinedagang/osca-backend/internal/models"

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RegisterRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	CpNumber string `json:"cp_number" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type LoginResponse struct {
	Message string              `json:"message"`
	User    *models.SessionUser `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// MeResponse mirrors the flattened projection the admin frontend expects.
type MeResponse struct {
	IsAuthenticated bool   `json:"isAuthenticated"`
	UserID          int64  `json:"userId"`
	UserName        string `json:"userName"`
	UserEmail       string `json:"userEmail"`
	UserNumber      string `json:"userNumber"`
	UserRole        string `json:"userRole"`
}

// SessionResponse always carries a 200; User is null for anonymous
// visitors so frontends can branch without tripping an auth error.
type SessionResponse struct {
	User *models.SessionUser `json:"user"`
}

type HealthCheckResponse struct {
	Status string `json:"status"`
}
