package services

import (
	"context"
	"fmt"
	"net/http"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
	"github.com/reinzjustinedagang/osca-backend/internal/repositories"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

type UserService interface {
	// Login returns (nil, nil) for unknown email or wrong password so
	// the controller can answer 401 without leaking which one it was.
	Login(ctx context.Context, email, password string) (*models.SessionUser, error)
	Register(ctx context.Context, username, email, password, cpNumber, role string) error
	Logout(ctx context.Context, user *models.SessionUser) error
}

type userService struct {
	repo  repositories.UserRepository
	audit AuditService
}

func NewUserService(repo repositories.UserRepository, audit AuditService) UserService {
	return &userService{repo: repo, audit: audit}
}

func (s *userService) Login(ctx context.Context, email, password string) (*models.SessionUser, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, nil
	}

	if err := s.repo.SetStatus(ctx, user.ID, models.UserStatusActive); err != nil {
		return nil, err
	}
	s.audit.Record(ctx, user.Email, user.Role, models.AuditActionLogin,
		fmt.Sprintf("User '%s' logged in", user.Username))

	return user.Project(), nil
}

func (s *userService) Register(ctx context.Context, username, email, password, cpNumber, role string) error {
	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return &utils.AppError{
			StatusCode: http.StatusConflict,
			Code:       utils.ErrCodeConflict,
			Message:    "User with this email already exists.",
		}
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}

	if _, err := s.repo.Create(ctx, &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
		CpNumber:     cpNumber,
		Role:         role,
	}); err != nil {
		return err
	}

	s.audit.Record(ctx, email, role, models.AuditActionRegister,
		fmt.Sprintf("Registered user '%s'", username))
	return nil
}

func (s *userService) Logout(ctx context.Context, user *models.SessionUser) error {
	if err := s.repo.RecordLogout(ctx, user.ID); err != nil {
		return err
	}
	s.audit.Record(ctx, user.Email, user.Role, models.AuditActionLogout,
		fmt.Sprintf("User '%s' logged out", user.Username))
	return nil
}
