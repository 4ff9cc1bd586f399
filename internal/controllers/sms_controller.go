package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/reinzjustinedagang/osca-backend/internal/dtos"
	"github.com/reinzjustinedagang/osca-backend/internal/middleware"
	"github.com/reinzjustinedagang/osca-backend/internal/models"
	"github.com/reinzjustinedagang/osca-backend/internal/repositories"
	"github.com/reinzjustinedagang/osca-backend/internal/services"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

type SmsController struct {
	svc services.SmsService
}

func NewSmsController(svc services.SmsService) *SmsController {
	return &SmsController{svc: svc}
}

// SendHandler => POST /api/sms/send-sms (auth required)
//
// Gateway rejection and transport failure both answer 200 with
// success=false; only local failures (missing credentials, log write)
// surface as 500.
func (c *SmsController) SendHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.SendSmsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}

	recipients := req.Numbers
	if len(recipients) == 0 && req.Number != "" {
		recipients = []string{req.Number}
	}
	if len(recipients) == 0 || strings.TrimSpace(req.Message) == "" {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Recipients and message are required", nil)
		return
	}

	result, err := c.svc.Send(r.Context(), req.Message, recipients)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}

	if !result.Success {
		resp := dtos.SendSmsResponse{
			Success: false,
			Message: "SMS broadcast failed.",
			Error:   result.Detail,
		}
		if result.Response != nil {
			resp.Data = result.Response
		}
		utils.RespondWithJSON(w, http.StatusOK, resp)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.SendSmsResponse{
		Success: true,
		Message: "SMS broadcast sent.",
		Data:    result.Response,
	})
}

// LogsHandler => GET /api/sms/logs?recipient&status&startDate&endDate (auth required)
func (c *SmsController) LogsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := repositories.SmsLogFilters{
		Recipient: q.Get("recipient"),
		Status:    q.Get("status"),
		StartDate: q.Get("startDate"),
		EndDate:   q.Get("endDate"),
	}

	logs, err := c.svc.GetLogs(r.Context(), filters)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to retrieve SMS logs.", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.SmsLogsResponse{Success: true, Logs: logs})
}

// HistoryHandler => GET /api/sms/history (auth required)
func (c *SmsController) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	logs, err := c.svc.GetHistory(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to retrieve SMS history.", nil, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dtos.SmsLogsResponse{Success: true, Logs: logs})
}

// DeleteLogHandler => DELETE /api/sms/delete/{id} (auth required)
func (c *SmsController) DeleteLogHandler(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := c.svc.DeleteLog(r.Context(), id); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "SMS log not found.", nil)
			return
		}
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to delete SMS log.", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "SMS log deleted."})
}

// GetCredentialsHandler => GET /api/sms/sms-credentials (auth required)
func (c *SmsController) GetCredentialsHandler(w http.ResponseWriter, r *http.Request) {
	creds, err := c.svc.GetCredentials(r.Context())
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to retrieve SMS credentials.", nil, err)
		return
	}
	if creds == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "SMS credentials are not configured.", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, creds)
}

// UpdateCredentialsHandler => PUT /api/sms/sms-credentials (auth required)
func (c *SmsController) UpdateCredentialsHandler(w http.ResponseWriter, r *http.Request) {
	var req dtos.SmsCredentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeInvalidPayload, "Invalid JSON payload", nil, err)
		return
	}
	if err := validate.Struct(req); err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, "Validation failed", err.Error(), err)
		return
	}

	actor := middleware.SessionUserFrom(r.Context())
	creds := &models.SmsCredentials{
		Email:    req.Email,
		Password: req.Password,
		APICode:  req.APICode,
	}
	if err := c.svc.UpdateCredentials(r.Context(), creds, actor); err != nil {
		utils.RespondErrorWithCode(w, http.StatusInternalServerError, utils.ErrCodeInternal, "Failed to update SMS credentials.", nil, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{Message: "SMS credentials updated."})
}
