package repositories

import (
	"context"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
)

type AuditLogRepository interface {
	Insert(ctx context.Context, entry *models.AuditLog) error
	Count(ctx context.Context) (int64, error)
	GetPage(ctx context.Context, limit, offset int) ([]*models.AuditLog, error)
}

type auditLogRepo struct {
	db DB
}

func NewAuditLogRepository(db DB) AuditLogRepository {
	return &auditLogRepo{db: db}
}

func (r *auditLogRepo) Insert(ctx context.Context, entry *models.AuditLog) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO audit_logs ("user", user_role, action, details, timestamp)
		VALUES ($1, $2, $3, $4, NOW())
	`, entry.User, entry.UserRole, entry.Action, entry.Details)
	return err
}

func (r *auditLogRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM audit_logs`).Scan(&total)
	return total, err
}

func (r *auditLogRepo) GetPage(ctx context.Context, limit, offset int) ([]*models.AuditLog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, "user", user_role, action, details, timestamp
		FROM audit_logs
		ORDER BY timestamp DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*models.AuditLog, 0)
	for rows.Next() {
		var e models.AuditLog
		if err := rows.Scan(&e.ID, &e.User, &e.UserRole, &e.Action, &e.Details, &e.Timestamp); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}
	return out, rows.Err()
}
