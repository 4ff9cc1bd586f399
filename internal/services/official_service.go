package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
	"github.com/reinzjustinedagang/osca-backend/internal/repositories"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

// OfficialService manages the municipal and barangay directories. Every
// mutation diffs old against new values and writes one human-readable
// audit summary when something actually changed and an actor is known.
type OfficialService interface {
	GetMunicipalOfficials(ctx context.Context) ([]*models.MunicipalOfficial, error)
	AddMunicipalOfficial(ctx context.Context, name, position, officialType string, image *string, actor *models.SessionUser) (int64, error)
	UpdateMunicipalOfficial(ctx context.Context, id int64, name, position, officialType string, image *string, actor *models.SessionUser) error
	DeleteMunicipalOfficial(ctx context.Context, id int64, actor *models.SessionUser) error

	GetBarangayOfficials(ctx context.Context) ([]*models.BarangayOfficial, error)
	AddBarangayOfficial(ctx context.Context, barangayName, presidentName, position string, image *string, actor *models.SessionUser) (int64, error)
	UpdateBarangayOfficial(ctx context.Context, id int64, barangayName, presidentName, position string, newImage *string, actor *models.SessionUser) error
	DeleteBarangayOfficial(ctx context.Context, id int64, actor *models.SessionUser) error
}

type officialService struct {
	municipalRepo repositories.MunicipalOfficialRepository
	barangayRepo  repositories.BarangayOfficialRepository
	audit         AuditService
}

func NewOfficialService(
	municipalRepo repositories.MunicipalOfficialRepository,
	barangayRepo repositories.BarangayOfficialRepository,
	audit AuditService,
) OfficialService {
	return &officialService{
		municipalRepo: municipalRepo,
		barangayRepo:  barangayRepo,
		audit:         audit,
	}
}

// ─── Municipal officials ─────────────────────────────────────────────

func (s *officialService) GetMunicipalOfficials(ctx context.Context) ([]*models.MunicipalOfficial, error) {
	return s.municipalRepo.GetAll(ctx)
}

func (s *officialService) AddMunicipalOfficial(ctx context.Context, name, position, officialType string, image *string, actor *models.SessionUser) (int64, error) {
	id, err := s.municipalRepo.Create(ctx, &models.MunicipalOfficial{
		Name:     name,
		Position: position,
		Type:     officialType,
		Image:    image,
	})
	if err != nil {
		return 0, err
	}
	if actor != nil {
		s.audit.Record(ctx, actor.Email, actor.Role, models.AuditActionCreate,
			fmt.Sprintf("Added municipal official '%s' as %s (%s)", name, position, officialType))
	}
	return id, nil
}

func (s *officialService) UpdateMunicipalOfficial(ctx context.Context, id int64, name, position, officialType string, image *string, actor *models.SessionUser) error {
	old, err := s.municipalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if old == nil {
		return utils.ErrNotFound
	}

	affected, err := s.municipalRepo.Update(ctx, &models.MunicipalOfficial{
		ID:       id,
		Name:     name,
		Position: position,
		Type:     officialType,
		Image:    image,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.ErrNotFound
	}

	if actor != nil {
		changes := []string{}
		if old.Name != name {
			changes = append(changes, fmt.Sprintf("name: '%s' → '%s'", old.Name, name))
		}
		if old.Position != position {
			changes = append(changes, fmt.Sprintf("position: '%s' → '%s'", old.Position, position))
		}
		if old.Type != officialType {
			changes = append(changes, fmt.Sprintf("type: '%s' → '%s'", old.Type, officialType))
		}
		if len(changes) > 0 {
			s.audit.Record(ctx, actor.Email, actor.Role, models.AuditActionUpdate,
				fmt.Sprintf("Updated municipal official %s: %s", name, strings.Join(changes, ", ")))
		}
	}
	return nil
}

func (s *officialService) DeleteMunicipalOfficial(ctx context.Context, id int64, actor *models.SessionUser) error {
	old, err := s.municipalRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	affected, err := s.municipalRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.ErrNotFound
	}
	if actor != nil && old != nil {
		s.audit.Record(ctx, actor.Email, actor.Role, models.AuditActionDelete,
			fmt.Sprintf("Deleted municipal official '%s'", old.Name))
	}
	return nil
}

// ─── Barangay officials ──────────────────────────────────────────────

func (s *officialService) GetBarangayOfficials(ctx context.Context) ([]*models.BarangayOfficial, error) {
	return s.barangayRepo.GetAll(ctx)
}

func (s *officialService) AddBarangayOfficial(ctx context.Context, barangayName, presidentName, position string, image *string, actor *models.SessionUser) (int64, error) {
	id, err := s.barangayRepo.Create(ctx, &models.BarangayOfficial{
		BarangayName:  barangayName,
		PresidentName: presidentName,
		Position:      position,
		Image:         image,
	})
	if err != nil {
		return 0, err
	}
	if actor != nil {
		s.audit.Record(ctx, actor.Email, actor.Role, models.AuditActionCreate,
			fmt.Sprintf("Added barangay official '%s'", barangayName))
	}
	return id, nil
}

// UpdateBarangayOfficial keeps the stored image when newImage is nil.
func (s *officialService) UpdateBarangayOfficial(ctx context.Context, id int64, barangayName, presidentName, position string, newImage *string, actor *models.SessionUser) error {
	old, err := s.barangayRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if old == nil {
		return utils.ErrNotFound
	}

	affected, err := s.barangayRepo.Update(ctx, &models.BarangayOfficial{
		ID:            id,
		BarangayName:  barangayName,
		PresidentName: presidentName,
		Position:      position,
	}, newImage)
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.ErrNotFound
	}

	if actor != nil {
		changes := []string{}
		if old.BarangayName != barangayName {
			changes = append(changes, fmt.Sprintf("barangay_name: '%s' → '%s'", old.BarangayName, barangayName))
		}
		if old.PresidentName != presidentName {
			changes = append(changes, fmt.Sprintf("president_name: '%s' → '%s'", old.PresidentName, presidentName))
		}
		if old.Position != position {
			changes = append(changes, fmt.Sprintf("position: '%s' → '%s'", old.Position, position))
		}
		if newImage != nil && utils.Val(old.Image) != *newImage {
			changes = append(changes, "image updated")
		}
		if len(changes) > 0 {
			s.audit.Record(ctx, actor.Email, actor.Role, models.AuditActionUpdate,
				fmt.Sprintf("Updated barangay official %s: %s", presidentName, strings.Join(changes, ", ")))
		}
	}
	return nil
}

func (s *officialService) DeleteBarangayOfficial(ctx context.Context, id int64, actor *models.SessionUser) error {
	old, err := s.barangayRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	affected, err := s.barangayRepo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return utils.ErrNotFound
	}
	if actor != nil && old != nil {
		s.audit.Record(ctx, actor.Email, actor.Role, models.AuditActionDelete,
			fmt.Sprintf("Deleted barangay official '%s'", old.BarangayName))
	}
	return nil
}
