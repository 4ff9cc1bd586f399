package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/reinzjustinedagang/osca-backend/internal/dtos"
	"github.com/reinzjustinedagang/osca-backend/internal/models"
	"github.com/reinzjustinedagang/osca-backend/internal/repositories"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

type SeniorCitizenService interface {
	GetByID(ctx context.Context, id int64) (*models.SeniorCitizen, error)
	Create(ctx context.Context, sc *models.SeniorCitizen, actor *models.SessionUser) (int64, error)
	Update(ctx context.Context, sc *models.SeniorCitizen, actor *models.SessionUser) error
	Delete(ctx context.Context, id int64, actor *models.SessionUser) error
	GetAll(ctx context.Context) ([]*models.SeniorCitizen, error)
	GetPaginated(ctx context.Context, page, limit int) (*dtos.CitizenPage, error)
	Search(ctx context.Context, term string) ([]*models.SeniorCitizen, error)
	GetByBarangay(ctx context.Context, barangay string) ([]*models.SeniorCitizen, error)
}

type seniorCitizenService struct {
	repo  repositories.SeniorCitizenRepository
	audit AuditService
}

func NewSeniorCitizenService(repo repositories.SeniorCitizenRepository, audit AuditService) SeniorCitizenService {
	return &seniorCitizenService{repo: repo, audit: audit}
}

func (s *seniorCitizenService) GetByID(ctx context.Context, id int64) (*models.SeniorCitizen, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *seniorCitizenService) Create(ctx context.Context, sc *models.SeniorCitizen, actor *models.SessionUser) (int64, error) {
	id, err := s.repo.Create(ctx, sc)
	if err != nil {
		return 0, err
	}
	if actor != nil {
		s.audit.Record(ctx, actor.Email, actor.Role, models.AuditActionCreate,
			fmt.Sprintf("Added senior citizen '%s'", citizenName(sc)))
	}
	return id, nil
}

func (s *seniorCitizenService) Update(ctx context.Context, sc *models.SeniorCitizen, actor *models.SessionUser) error {
	affected, err := s.repo.Update(ctx, sc)
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.ErrNotFound
	}
	if actor != nil {
		s.audit.Record(ctx, actor.Email, actor.Role, models.AuditActionUpdate,
			fmt.Sprintf("Updated senior citizen '%s'", citizenName(sc)))
	}
	return nil
}

func (s *seniorCitizenService) Delete(ctx context.Context, id int64, actor *models.SessionUser) error {
	// Fetch the name first so the audit trail stays readable after the
	// row is gone.
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.ErrNotFound
	}
	if actor != nil && existing != nil {
		s.audit.Record(ctx, actor.Email, actor.Role, models.AuditActionDelete,
			fmt.Sprintf("Deleted senior citizen '%s'", citizenName(existing)))
	}
	return nil
}

func (s *seniorCitizenService) GetAll(ctx context.Context) ([]*models.SeniorCitizen, error) {
	return s.repo.GetAll(ctx)
}

func (s *seniorCitizenService) GetPaginated(ctx context.Context, page, limit int) (*dtos.CitizenPage, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	offset := (page - 1) * limit
	citizens, err := s.repo.GetPage(ctx, limit, offset)
	if err != nil {
		return nil, err
	}

	return &dtos.CitizenPage{
		Total:          total,
		Page:           page,
		Limit:          limit,
		SeniorCitizens: citizens,
		TotalPages:     utils.TotalPages(total, limit),
		HasNextPage:    int64(page)*int64(limit) < total,
		HasPrevPage:    page > 1,
	}, nil
}

func (s *seniorCitizenService) Search(ctx context.Context, term string) ([]*models.SeniorCitizen, error) {
	return s.repo.Search(ctx, term)
}

func (s *seniorCitizenService) GetByBarangay(ctx context.Context, barangay string) ([]*models.SeniorCitizen, error) {
	return s.repo.GetByBarangay(ctx, barangay)
}

func citizenName(sc *models.SeniorCitizen) string {
	return strings.TrimSpace(sc.FirstName + " " + sc.LastName)
}
