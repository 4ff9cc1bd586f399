package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
)

// The credentials table holds at most one logical row.
const smsCredentialsRowID = 1

type SmsCredentialsRepository interface {
	Get(ctx context.Context) (*models.SmsCredentials, error)
	Upsert(ctx context.Context, creds *models.SmsCredentials) error
}

type smsCredentialsRepo struct {
	db DB
}

func NewSmsCredentialsRepository(db DB) SmsCredentialsRepository {
	return &smsCredentialsRepo{db: db}
}

func (r *smsCredentialsRepo) Get(ctx context.Context) (*models.SmsCredentials, error) {
	var c models.SmsCredentials
	err := r.db.QueryRow(ctx, `
		SELECT email, password, api_code FROM sms_credentials WHERE id=$1
	`, smsCredentialsRowID).Scan(&c.Email, &c.Password, &c.APICode)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *smsCredentialsRepo) Upsert(ctx context.Context, creds *models.SmsCredentials) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO sms_credentials (id, email, password, api_code)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET email=EXCLUDED.email, password=EXCLUDED.password, api_code=EXCLUDED.api_code
	`, smsCredentialsRowID, creds.Email, creds.Password, creds.APICode)
	return err
}
