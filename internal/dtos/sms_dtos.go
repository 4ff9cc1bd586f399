package dtos

import "github.com/reinzjustinedagang/osca-backend/internal/models"

// SendSmsRequest accepts either a list of numbers or the singular
// convenience form; the controller normalizes to a list.
type SendSmsRequest struct {
	Number  string   `json:"number"`
	Numbers []string `json:"numbers"`
	Message string   `json:"message"`
}

type SendSmsResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

type SmsLogsResponse struct {
	Success bool             `json:"success"`
	Logs    []*models.SmsLog `json:"logs"`
}

type SmsCredentialsRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	APICode  string `json:"api_code" validate:"required"`
}
