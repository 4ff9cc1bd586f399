package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
	"github.com/reinzjustinedagang/osca-backend/internal/repositories"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

// SendResult distinguishes the three outcomes of a broadcast attempt.
// Success carries the gateway response; the failure cases carry a
// caller-facing detail string.
type SendResult struct {
	Success  bool
	Response *BroadcastResponse
	Detail   string
}

type SmsService interface {
	// Send posts one broadcast and persists exactly one log row
	// regardless of outcome. It errors only on local failures (missing
	// credentials, log write); gateway failures come back in the result.
	Send(ctx context.Context, message string, recipients []string) (*SendResult, error)

	GetLogs(ctx context.Context, filters repositories.SmsLogFilters) ([]*models.SmsLog, error)
	GetHistory(ctx context.Context) ([]*models.SmsLog, error)
	DeleteLog(ctx context.Context, id int64) error

	GetCredentials(ctx context.Context) (*models.SmsCredentials, error)
	UpdateCredentials(ctx context.Context, creds *models.SmsCredentials, actor *models.SessionUser) error
}

type smsService struct {
	gateway   SmsGateway
	logRepo   repositories.SmsLogRepository
	credsRepo repositories.SmsCredentialsRepository
	audit     AuditService
}

func NewSmsService(
	gateway SmsGateway,
	logRepo repositories.SmsLogRepository,
	credsRepo repositories.SmsCredentialsRepository,
	audit AuditService,
) SmsService {
	return &smsService{
		gateway:   gateway,
		logRepo:   logRepo,
		credsRepo: credsRepo,
		audit:     audit,
	}
}

func (s *smsService) Send(ctx context.Context, message string, recipients []string) (*SendResult, error) {
	creds, err := s.credsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		return nil, &utils.AppError{
			StatusCode: http.StatusInternalServerError,
			Code:       utils.ErrCodeInternal,
			Message:    "SMS gateway credentials are not configured.",
			Err:        utils.ErrCredentialsMissing,
		}
	}

	resp, err := s.gateway.Broadcast(ctx, creds, recipients, message)
	if err != nil {
		// Transport failure: still exactly one log row, with no
		// reference id and no credit charged.
		if logErr := s.logRepo.Insert(ctx, &models.SmsLog{
			Recipients: recipients,
			Message:    message,
			Status:     models.SmsStatusRequestFailed,
		}); logErr != nil {
			return nil, logErr
		}

		var httpErr *GatewayHTTPError
		if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusBadRequest {
			return &SendResult{
				Success: false,
				Detail:  "Failed to send broadcast: insufficient credits or bad request.",
			}, nil
		}
		return &SendResult{
			Success: false,
			Detail:  fmt.Sprintf("Request failed: %v", err),
		}, nil
	}

	status := models.SmsStatusFailed
	if !resp.Error && resp.Accepted > 0 {
		status = models.SmsStatusSuccess
	}
	var referenceID *string
	if resp.ReferenceID != "" {
		referenceID = utils.Ptr(resp.ReferenceID)
	}
	if err := s.logRepo.Insert(ctx, &models.SmsLog{
		Recipients:  recipients,
		Message:     message,
		Status:      status,
		ReferenceID: referenceID,
		CreditUsed:  resp.TotalCreditUsed,
	}); err != nil {
		return nil, err
	}

	if status == models.SmsStatusSuccess {
		return &SendResult{Success: true, Response: resp}, nil
	}
	return &SendResult{
		Success:  false,
		Response: resp,
		Detail:   fmt.Sprintf("Gateway error: %s", resp.Message),
	}, nil
}

func (s *smsService) GetLogs(ctx context.Context, filters repositories.SmsLogFilters) ([]*models.SmsLog, error) {
	return s.logRepo.List(ctx, filters)
}

func (s *smsService) GetHistory(ctx context.Context) ([]*models.SmsLog, error) {
	return s.logRepo.History(ctx)
}

func (s *smsService) DeleteLog(ctx context.Context, id int64) error {
	affected, err := s.logRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (s *smsService) GetCredentials(ctx context.Context) (*models.SmsCredentials, error) {
	return s.credsRepo.Get(ctx)
}

// UpdateCredentials upserts the singleton row. The audit entry is
// written only when a field actually changed value, so idempotent
// re-saves do not pollute the trail.
func (s *smsService) UpdateCredentials(ctx context.Context, creds *models.SmsCredentials, actor *models.SessionUser) error {
	old, err := s.credsRepo.Get(ctx)
	if err != nil {
		return err
	}

	if err := s.credsRepo.Upsert(ctx, creds); err != nil {
		return err
	}

	if actor == nil {
		return nil
	}

	changed := []string{}
	if old == nil || old.Email != creds.Email {
		changed = append(changed, "email")
	}
	if old == nil || old.Password != creds.Password {
		changed = append(changed, "password")
	}
	if old == nil || old.APICode != creds.APICode {
		changed = append(changed, "api_code")
	}
	if len(changed) > 0 {
		s.audit.Record(ctx, actor.Email, actor.Role, models.AuditActionUpdate,
			fmt.Sprintf("Updated SMS credentials (%s)", strings.Join(changed, ", ")))
	}
	return nil
}
