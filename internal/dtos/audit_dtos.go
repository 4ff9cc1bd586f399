package dtos

import "github.com/reinzjustinedagang/osca-backend/internal/models"

type AuditLogPage struct {
	Logs       []*models.AuditLog `json:"logs"`
	Total      int64              `json:"total"`
	TotalPages int                `json:"totalPages"`
	Page       int                `json:"page"`
}
