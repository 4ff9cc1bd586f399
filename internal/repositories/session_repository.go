package repositories

import (
	"context"
	"time"

	"github.com/jackc/pgx/v4"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
)

// SessionRepository persists server-side session state. The expiry sweep
// is the only consumer of ExpiredUserIDs/DeleteExpired; everything else
// serves the login/logout flow and the auth middleware.
type SessionRepository interface {
	Create(ctx context.Context, sess *models.Session) error
	Get(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
	ExpiredUserIDs(ctx context.Context, now time.Time) ([]int64, error)
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

type sessionRepo struct {
	db DB
}

func NewSessionRepository(db DB) SessionRepository {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Create(ctx context.Context, sess *models.Session) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sessions (id, user_id, username, email, cp_number, role, last_logout, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
	`, sess.ID, sess.User.ID, sess.User.Username, sess.User.Email,
		sess.User.CpNumber, sess.User.Role, sess.User.LastLogout, sess.ExpiresAt)
	return err
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*models.Session, error) {
	var s models.Session
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, username, email, cp_number, role, last_logout, expires_at, created_at
		FROM sessions WHERE id=$1
	`, id).Scan(
		&s.ID, &s.User.ID, &s.User.Username, &s.User.Email,
		&s.User.CpNumber, &s.User.Role, &s.User.LastLogout,
		&s.ExpiresAt, &s.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE id=$1`, id)
	return err
}

// ExpiredUserIDs returns the distinct user ids still attached to lapsed
// sessions. The comparison runs in SQL against the single `now` the
// sweep captured, so one clock and one unit apply to the whole tick.
func (r *sessionRepo) ExpiredUserIDs(ctx context.Context, now time.Time) ([]int64, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT user_id FROM sessions
		WHERE expires_at < $1 AND user_id IS NOT NULL
	`, now)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *sessionRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
