package services

import (
	"context"

	"github.com/reinzjustinedagang/osca-backend/internal/dtos"
	"github.com/reinzjustinedagang/osca-backend/internal/models"
	"github.com/reinzjustinedagang/osca-backend/internal/repositories"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

// AuditService is an append-only sink for administrative actions.
type AuditService interface {
	// Record never fails its caller: an audit write must not block or
	// abort the mutation it describes.
	Record(ctx context.Context, user, role, action, details string)
	GetPaginated(ctx context.Context, page, limit int) (*dtos.AuditLogPage, error)
}

type auditService struct {
	repo repositories.AuditLogRepository
}

func NewAuditService(repo repositories.AuditLogRepository) AuditService {
	return &auditService{repo: repo}
}

func (s *auditService) Record(ctx context.Context, user, role, action, details string) {
	entry := &models.AuditLog{
		User:     user,
		UserRole: role,
		Action:   action,
		Details:  details,
	}
	if err := s.repo.Insert(ctx, entry); err != nil {
		utils.Logger.WithError(err).Errorf("Failed to write audit entry (%s by %s)", action, user)
	}
}

func (s *auditService) GetPaginated(ctx context.Context, page, limit int) (*dtos.AuditLogPage, error) {
	offset := (page - 1) * limit

	logs, err := s.repo.GetPage(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dtos.AuditLogPage{
		Logs:       logs,
		Total:      total,
		TotalPages: utils.TotalPages(total, limit),
		Page:       page,
	}, nil
}
