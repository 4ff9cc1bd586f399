package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v4"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
)

// SmsLogFilters narrows the log listing; zero values mean "no filter".
type SmsLogFilters struct {
	Recipient string
	Status    string
	StartDate string
	EndDate   string
}

type SmsLogRepository interface {
	Insert(ctx context.Context, log *models.SmsLog) error
	List(ctx context.Context, filters SmsLogFilters) ([]*models.SmsLog, error)
	History(ctx context.Context) ([]*models.SmsLog, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type smsLogRepo struct {
	db DB
}

func NewSmsLogRepository(db DB) SmsLogRepository {
	return &smsLogRepo{db: db}
}

func (r *smsLogRepo) Insert(ctx context.Context, log *models.SmsLog) error {
	recipients, err := json.Marshal(log.Recipients)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx, `
		INSERT INTO sms_logs (recipients, message, status, reference_id, credit_used, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, string(recipients), log.Message, log.Status, log.ReferenceID, log.CreditUsed)
	return err
}

func (r *smsLogRepo) List(ctx context.Context, filters SmsLogFilters) ([]*models.SmsLog, error) {
	query := baseSelectSmsLog() + " WHERE 1=1"
	args := []interface{}{}

	if filters.Recipient != "" {
		args = append(args, "%"+filters.Recipient+"%")
		query += fmt.Sprintf(" AND recipients LIKE $%d", len(args))
	}
	if filters.Status != "" {
		args = append(args, filters.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filters.StartDate != "" {
		args = append(args, filters.StartDate)
		query += fmt.Sprintf(" AND created_at >= $%d::timestamptz", len(args))
	}
	if filters.EndDate != "" {
		args = append(args, filters.EndDate)
		query += fmt.Sprintf(" AND created_at <= $%d::timestamptz", len(args))
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSmsLogs(rows)
}

func (r *smsLogRepo) History(ctx context.Context) ([]*models.SmsLog, error) {
	rows, err := r.db.Query(ctx, baseSelectSmsLog()+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSmsLogs(rows)
}

func (r *smsLogRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM sms_logs WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func baseSelectSmsLog() string {
	return `SELECT id, recipients, message, status, reference_id, credit_used, created_at FROM sms_logs`
}

func collectSmsLogs(rows pgx.Rows) ([]*models.SmsLog, error) {
	out := make([]*models.SmsLog, 0)
	for rows.Next() {
		var log models.SmsLog
		var recipients string
		if err := rows.Scan(
			&log.ID, &recipients, &log.Message, &log.Status,
			&log.ReferenceID, &log.CreditUsed, &log.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(recipients), &log.Recipients); err != nil {
			// Legacy rows may hold a bare comma-separated string.
			log.Recipients = []string{recipients}
		}
		out = append(out, &log)
	}
	return out, rows.Err()
}
