package controllers

import (
	"net/http"

	"github.com/reinzjustinedagang/osca-backend/internal/services"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

type AuditController struct {
	svc services.AuditService
}

func NewAuditController(svc services.AuditService) *AuditController {
	return &AuditController{svc: svc}
}

// GetAllHandler => GET /api/audit-logs/getAll?page&limit (auth required)
func (c *AuditController) GetAllHandler(w http.ResponseWriter, r *http.Request) {
	page, limit := utils.GetPaginationParams(r)

	data, err := c.svc.GetPaginated(r.Context(), page, limit)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to retrieve audit logs.", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, data)
}
