package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

func TestLoginSuccessActivatesUserAndAudits(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	repo.users["admin@osca.gov.ph"] = &models.User{
		ID:           1,
		Username:     "admin",
		Email:        "admin@osca.gov.ph",
		PasswordHash: hash,
		Role:         "admin",
		Status:       models.UserStatusInactive,
	}
	audit := &recordingAudit{}
	svc := NewUserService(repo, audit)

	user, err := svc.Login(context.Background(), "admin@osca.gov.ph", "correct-horse")
	require.NoError(t, err)
	require.NotNil(t, user)
	require.Equal(t, int64(1), user.ID)
	require.Equal(t, models.UserStatusActive, repo.statuses[1])

	require.Len(t, audit.entries, 1)
	require.Equal(t, models.AuditActionLogin, audit.entries[0].Action)
	require.Equal(t, "admin@osca.gov.ph", audit.entries[0].User)
}

func TestLoginUnknownEmailReturnsNilWithoutSideEffects(t *testing.T) {
	repo := newFakeUserRepo()
	audit := &recordingAudit{}
	svc := NewUserService(repo, audit)

	user, err := svc.Login(context.Background(), "nobody@osca.gov.ph", "whatever")
	require.NoError(t, err)
	require.Nil(t, user)
	require.Empty(t, repo.statuses)
	require.Empty(t, audit.entries)
}

func TestLoginWrongPasswordReturnsNilWithoutSideEffects(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := utils.HashPassword("correct-horse")
	require.NoError(t, err)
	repo.users["admin@osca.gov.ph"] = &models.User{
		ID:           1,
		Email:        "admin@osca.gov.ph",
		PasswordHash: hash,
	}
	audit := &recordingAudit{}
	svc := NewUserService(repo, audit)

	user, err := svc.Login(context.Background(), "admin@osca.gov.ph", "battery-staple")
	require.NoError(t, err)
	require.Nil(t, user)
	require.Empty(t, repo.statuses)
	require.Empty(t, audit.entries)
}

func TestRegisterHashesPasswordAndAudits(t *testing.T) {
	repo := newFakeUserRepo()
	audit := &recordingAudit{}
	svc := NewUserService(repo, audit)

	err := svc.Register(context.Background(), "clerk", "clerk@osca.gov.ph", "secret-pw-123", "09171234567", "staff")
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	require.NotEqual(t, "secret-pw-123", created.PasswordHash)
	require.True(t, utils.CheckPasswordHash("secret-pw-123", created.PasswordHash))

	require.Len(t, audit.entries, 1)
	require.Equal(t, models.AuditActionRegister, audit.entries[0].Action)
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	repo := newFakeUserRepo()
	repo.users["clerk@osca.gov.ph"] = &models.User{ID: 1, Email: "clerk@osca.gov.ph"}
	audit := &recordingAudit{}
	svc := NewUserService(repo, audit)

	err := svc.Register(context.Background(), "clerk", "clerk@osca.gov.ph", "secret-pw-123", "", "staff")
	require.Error(t, err)

	var appErr *utils.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, http.StatusConflict, appErr.StatusCode)

	require.Empty(t, repo.created)
	require.Empty(t, audit.entries)
}

func TestLogoutRecordsAndAudits(t *testing.T) {
	repo := newFakeUserRepo()
	audit := &recordingAudit{}
	svc := NewUserService(repo, audit)

	err := svc.Logout(context.Background(), &models.SessionUser{
		ID: 5, Username: "admin", Email: "admin@osca.gov.ph", Role: "admin",
	})
	require.NoError(t, err)
	require.Equal(t, []int64{5}, repo.logouts)
	require.Equal(t, models.UserStatusInactive, repo.statuses[5])

	require.Len(t, audit.entries, 1)
	require.Equal(t, models.AuditActionLogout, audit.entries[0].Action)
}
