package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
)

// UserRepository defines the interface for administrative account data.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
	SetStatus(ctx context.Context, id int64, status models.UserStatus) error
	RecordLogout(ctx context.Context, id int64) error
	DeactivateMany(ctx context.Context, ids []int64) (int64, error)
}

type userRepo struct {
	db DB
}

func NewUserRepository(db DB) UserRepository {
	return &userRepo{db: db}
}

func (r *userRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	// The caller is responsible for hashing the password. This repository
	// just stores the hash it's given.
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (username, email, password, cp_number, role, status, created_at)
		VALUES ($1, $2, $3, $4, $5, 'inactive', NOW())
		RETURNING id
	`, user.Username, user.Email, user.PasswordHash, user.CpNumber, user.Role).Scan(&id)
	return id, err
}

func (r *userRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE email=$1", email)
	return scanUser(row)
}

func (r *userRepo) GetByID(ctx context.Context, id int64) (*models.User, error) {
	row := r.db.QueryRow(ctx, baseSelectUser()+" WHERE id=$1", id)
	return scanUser(row)
}

func (r *userRepo) SetStatus(ctx context.Context, id int64, status models.UserStatus) error {
	_, err := r.db.Exec(ctx, `UPDATE users SET status=$1 WHERE id=$2`, string(status), id)
	return err
}

func (r *userRepo) RecordLogout(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users SET last_logout=NOW(), status='inactive' WHERE id=$1
	`, id)
	return err
}

// DeactivateMany flips every listed user to inactive in one statement;
// the expiry sweep batches its collected ids through here.
func (r *userRepo) DeactivateMany(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET status='inactive' WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func baseSelectUser() string {
	return `
		SELECT id, username, email, password, cp_number, role, status, created_at, last_logout
		FROM users`
}

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	var status string
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.CpNumber,
		&u.Role, &status, &u.CreatedAt, &u.LastLogout,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	u.Status = models.UserStatus(status)
	return &u, nil
}
