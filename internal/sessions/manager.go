package sessions

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
	"github.com/reinzjustinedagang/osca-backend/internal/repositories"
)

// Manager pairs the session table with the session cookie. Sessions are
// server-side: the cookie carries only an opaque id.
type Manager struct {
	repo       repositories.SessionRepository
	cookieName string
	maxAge     time.Duration
}

func NewManager(repo repositories.SessionRepository, cookieName string, maxAge time.Duration) *Manager {
	return &Manager{repo: repo, cookieName: cookieName, maxAge: maxAge}
}

// Start creates a session row for the user and sets the cookie.
func (m *Manager) Start(ctx context.Context, w http.ResponseWriter, user *models.SessionUser) (*models.Session, error) {
	sess := &models.Session{
		ID:        uuid.NewString(),
		User:      *user,
		ExpiresAt: time.Now().UTC().Add(m.maxAge),
	}
	if err := m.repo.Create(ctx, sess); err != nil {
		return nil, err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    sess.ID,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(m.maxAge.Seconds()),
	})
	return sess, nil
}

// Current resolves the request's cookie to a live session. Returns
// (nil, nil) when there is no cookie, no row, or the session lapsed.
func (m *Manager) Current(r *http.Request) (*models.Session, error) {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return nil, nil
	}
	sess, err := m.repo.Get(r.Context(), c.Value)
	if err != nil {
		return nil, err
	}
	if sess == nil || sess.Expired(time.Now().UTC()) {
		return nil, nil
	}
	return sess, nil
}

// Destroy removes the session row and clears the cookie.
func (m *Manager) Destroy(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	c, err := r.Cookie(m.cookieName)
	if err == nil && c.Value != "" {
		if err := m.repo.Delete(ctx, c.Value); err != nil {
			return err
		}
	}
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	return nil
}
