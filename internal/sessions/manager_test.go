package sessions

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
)

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

func (r *memorySessionRepo) ExpiredUserIDs(_ context.Context, now time.Time) ([]int64, error) {
	var ids []int64
	for _, s := range r.rows {
		if s.Expired(now) {
			ids = append(ids, s.User.ID)
		}
	}
	return ids, nil
}

func (r *memorySessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	var n int64
	for id, s := range r.rows {
		if s.Expired(now) {
			delete(r.rows, id)
			n++
		}
	}
	return n, nil
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestStartSetsHttpOnlyLaxCookieAndPersistsRow(t *testing.T) {
	repo := newMemorySessionRepo()
	mgr := NewManager(repo, "oscaims_sid", 24*time.Hour)

	rec := httptest.NewRecorder()
	sess, err := mgr.Start(context.Background(), rec, &models.SessionUser{ID: 1, Email: "admin@osca.gov.ph"})
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)
	require.Contains(t, repo.rows, sess.ID)

	c := sessionCookie(t, rec, "oscaims_sid")
	require.Equal(t, sess.ID, c.Value)
	require.True(t, c.HttpOnly)
	require.Equal(t, http.SameSiteLaxMode, c.SameSite)
	require.Equal(t, int((24 * time.Hour).Seconds()), c.MaxAge)
}

func TestCurrentResolvesLiveSession(t *testing.T) {
	repo := newMemorySessionRepo()
	mgr := NewManager(repo, "oscaims_sid", time.Hour)

	rec := httptest.NewRecorder()
	sess, err := mgr.Start(context.Background(), rec, &models.SessionUser{ID: 4, Username: "clerk"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "oscaims_sid", Value: sess.ID})

	got, err := mgr.Current(req)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, int64(4), got.User.ID)
}

func TestCurrentWithoutCookieIsAnonymous(t *testing.T) {
	mgr := NewManager(newMemorySessionRepo(), "oscaims_sid", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	got, err := mgr.Current(req)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestCurrentExpiredSessionIsAnonymous(t *testing.T) {
	repo := newMemorySessionRepo()
	repo.rows["stale"] = &models.Session{
		ID:        "stale",
		User:      models.SessionUser{ID: 2},
		ExpiresAt: time.Now().UTC().Add(-time.Minute),
	}
	mgr := NewManager(repo, "oscaims_sid", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "oscaims_sid", Value: "stale"})

	got, err := mgr.Current(req)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestDestroyDeletesRowAndClearsCookie(t *testing.T) {
	repo := newMemorySessionRepo()
	mgr := NewManager(repo, "oscaims_sid", time.Hour)

	startRec := httptest.NewRecorder()
	sess, err := mgr.Start(context.Background(), startRec, &models.SessionUser{ID: 1})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(&http.Cookie{Name: "oscaims_sid", Value: sess.ID})
	rec := httptest.NewRecorder()

	require.NoError(t, mgr.Destroy(context.Background(), rec, req))
	require.NotContains(t, repo.rows, sess.ID)

	c := sessionCookie(t, rec, "oscaims_sid")
	require.Empty(t, c.Value)
	require.Equal(t, -1, c.MaxAge)
}
