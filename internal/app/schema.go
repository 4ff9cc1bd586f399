package app

import (
	"context"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/reinzjustinedagang/osca-backend/internal/utils"
)

// Idempotent DDL, one statement per table. otp_codes and sms_templates
// carry no application logic yet; the tables exist so their data is not
// lost across the migration from the legacy system.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL,
		cp_number TEXT UNIQUE NOT NULL,
		role TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'inactive',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_logout TIMESTAMPTZ
	)`,

	`CREATE TABLE IF NOT EXISTS senior_citizens (
		id BIGSERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		middle_name TEXT NOT NULL DEFAULT '',
		suffix TEXT NOT NULL DEFAULT '',
		age INT NOT NULL DEFAULT 0,
		gender TEXT NOT NULL DEFAULT '',
		birthdate DATE,
		civil_status TEXT NOT NULL DEFAULT '',
		religion TEXT NOT NULL DEFAULT '',
		blood_type TEXT NOT NULL DEFAULT '',
		house_number_street TEXT NOT NULL DEFAULT '',
		barangay TEXT NOT NULL DEFAULT '',
		municipality TEXT NOT NULL DEFAULT '',
		province TEXT NOT NULL DEFAULT '',
		zip_code TEXT NOT NULL DEFAULT '',
		mobile_number TEXT NOT NULL DEFAULT '',
		telephone_number TEXT NOT NULL DEFAULT '',
		email_address TEXT NOT NULL DEFAULT '',
		valid_id_type TEXT NOT NULL DEFAULT '',
		valid_id_number TEXT NOT NULL DEFAULT '',
		philsys_id TEXT NOT NULL DEFAULT '',
		sss_number TEXT NOT NULL DEFAULT '',
		gsis_number TEXT NOT NULL DEFAULT '',
		philhealth_number TEXT NOT NULL DEFAULT '',
		tin_number TEXT NOT NULL DEFAULT '',
		employment_status TEXT NOT NULL DEFAULT '',
		occupation TEXT NOT NULL DEFAULT '',
		highest_education TEXT NOT NULL DEFAULT '',
		classification TEXT NOT NULL DEFAULT '',
		monthly_pension NUMERIC(10,2) NOT NULL DEFAULT 0,
		emergency_contact_name TEXT NOT NULL DEFAULT '',
		emergency_contact_relationship TEXT NOT NULL DEFAULT '',
		emergency_contact_number TEXT NOT NULL DEFAULT '',
		health_status TEXT NOT NULL DEFAULT '',
		health_notes TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS municipal_officials (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		position TEXT NOT NULL,
		type TEXT NOT NULL,
		image TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS barangay_officials (
		id BIGSERIAL PRIMARY KEY,
		barangay_name TEXT NOT NULL,
		president_name TEXT NOT NULL,
		position TEXT NOT NULL,
		image TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS sms_logs (
		id BIGSERIAL PRIMARY KEY,
		recipients TEXT NOT NULL,
		message TEXT NOT NULL,
		status TEXT NOT NULL,
		reference_id TEXT,
		credit_used NUMERIC(10,2) NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS sms_credentials (
		id INT PRIMARY KEY,
		email TEXT NOT NULL DEFAULT '',
		password TEXT NOT NULL DEFAULT '',
		api_code TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS audit_logs (
		id BIGSERIAL PRIMARY KEY,
		"user" TEXT NOT NULL,
		user_role TEXT NOT NULL,
		action TEXT NOT NULL,
		details TEXT NOT NULL,
		timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		user_id BIGINT,
		username TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		cp_number TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT '',
		last_logout TIMESTAMPTZ,
		expires_at TIMESTAMPTZ NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS otp_codes (
		id BIGSERIAL PRIMARY KEY,
		mobile TEXT NOT NULL,
		otp TEXT NOT NULL,
		purpose TEXT,
		expires_at TIMESTAMPTZ,
		used BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS sms_templates (
		id BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		body TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// EnsureSchema creates every table the service touches. Safe to run on
// each boot.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	utils.Logger.Info("Database schema ready.")
	return nil
}
