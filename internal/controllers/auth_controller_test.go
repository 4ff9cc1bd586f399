package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reinzjustinedagang/osca-backend/internal/dtos"
	"github.com/reinzjustinedagang/osca-backend/internal/middleware"
	"github.com/reinzjustinedagang/osca-backend/internal/models"
	"github.com/reinzjustinedagang/osca-backend/internal/sessions"
)

type stubUserService struct {
	user       *models.SessionUser
	loginErr   error
	registered bool
	loggedOut  bool
}

func (s *stubUserService) Login(_ context.Context, email, password string) (*models.SessionUser, error) {
	return s.user, s.loginErr
}

func (s *stubUserService) Register(_ context.Context, username, email, password, cpNumber, role string) error {
	s.registered = true
	return nil
}

func (s *stubUserService) Logout(_ context.Context, user *models.SessionUser) error {
	s.loggedOut = true
	return nil
}

type memorySessionRepo struct {
	rows map[string]*models.Session
}

func newMemorySessionRepo() *memorySessionRepo {
	return &memorySessionRepo{rows: map[string]*models.Session{}}
}

func (r *memorySessionRepo) Create(_ context.Context, sess *models.Session) error {
	r.rows[sess.ID] = sess
	return nil
}

func (r *memorySessionRepo) Get(_ context.Context, id string) (*models.Session, error) {
	return r.rows[id], nil
}

func (r *memorySessionRepo) Delete(_ context.Context, id string) error {
	delete(r.rows, id)
	return nil
}

func (r *memorySessionRepo) ExpiredUserIDs(_ context.Context, _ time.Time) ([]int64, error) {
	return nil, nil
}

func (r *memorySessionRepo) DeleteExpired(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

func newTestAuthController(svc *stubUserService) (*AuthController, *memorySessionRepo) {
	repo := newMemorySessionRepo()
	mgr := sessions.NewManager(repo, "oscaims_sid", time.Hour)
	return NewAuthController(svc, mgr), repo
}

func TestLoginHandlerSetsSessionCookie(t *testing.T) {
	svc := &stubUserService{user: &models.SessionUser{
		ID: 1, Username: "admin", Email: "admin@osca.gov.ph", Role: "admin",
	}}
	ctrl, repo := newTestAuthController(svc)

	body := `{"email":"admin@osca.gov.ph","password":"correct-horse"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.LoginHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, repo.rows, 1)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "oscaims_sid", cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)

	var resp dtos.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "admin@osca.gov.ph", resp.User.Email)
}

func TestLoginHandlerRejectsBadCredentialsWithoutSession(t *testing.T) {
	ctrl, repo := newTestAuthController(&stubUserService{user: nil})

	body := `{"email":"admin@osca.gov.ph","password":"wrong"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.LoginHandler(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Empty(t, repo.rows)
	require.Empty(t, rec.Result().Cookies())
}

func TestLoginHandlerValidatesPayload(t *testing.T) {
	ctrl, _ := newTestAuthController(&stubUserService{})

	req := httptest.NewRequest(http.MethodPost, "/api/user/login", strings.NewReader(`{"email":"not-an-email"}`))
	rec := httptest.NewRecorder()
	ctrl.LoginHandler(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandlerCreated(t *testing.T) {
	svc := &stubUserService{}
	ctrl, _ := newTestAuthController(svc)

	body := `{"username":"clerk","email":"clerk@osca.gov.ph","password":"longenough","cp_number":"09171234567","role":"staff"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.RegisterHandler(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.True(t, svc.registered)
}

func TestRegisterHandlerShortPasswordRejected(t *testing.T) {
	svc := &stubUserService{}
	ctrl, _ := newTestAuthController(svc)

	body := `{"username":"clerk","email":"clerk@osca.gov.ph","password":"short","cp_number":"0917","role":"staff"}`
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	ctrl.RegisterHandler(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.False(t, svc.registered)
}

func TestSessionHandlerAnonymousIsStill200(t *testing.T) {
	ctrl, _ := newTestAuthController(&stubUserService{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/session", nil)
	rec := httptest.NewRecorder()
	ctrl.SessionHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dtos.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Nil(t, resp.User)
}

func TestSessionHandlerAuthenticatedReturnsUser(t *testing.T) {
	ctrl, repo := newTestAuthController(&stubUserService{})
	repo.rows["live"] = &models.Session{
		ID:        "live",
		User:      models.SessionUser{ID: 3, Email: "clerk@osca.gov.ph"},
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/user/session", nil)
	req.AddCookie(&http.Cookie{Name: "oscaims_sid", Value: "live"})
	rec := httptest.NewRecorder()
	ctrl.SessionHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp dtos.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotNil(t, resp.User)
	require.Equal(t, int64(3), resp.User.ID)
}

func TestLogoutHandlerDestroysSession(t *testing.T) {
	svc := &stubUserService{}
	ctrl, repo := newTestAuthController(svc)
	repo.rows["live"] = &models.Session{
		ID:        "live",
		User:      models.SessionUser{ID: 3},
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	req := httptest.NewRequest(http.MethodPost, "/api/user/logout", nil)
	req.AddCookie(&http.Cookie{Name: "oscaims_sid", Value: "live"})
	req = req.WithContext(context.WithValue(req.Context(),
		middleware.ContextKeySessionUser, &models.SessionUser{ID: 3, Email: "clerk@osca.gov.ph"}))
	rec := httptest.NewRecorder()
	ctrl.LogoutHandler(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, svc.loggedOut)
	require.Empty(t, repo.rows)
}
