package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
)

type MunicipalOfficialRepository interface {
	Create(ctx context.Context, o *models.MunicipalOfficial) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.MunicipalOfficial, error)
	GetAll(ctx context.Context) ([]*models.MunicipalOfficial, error)
	Update(ctx context.Context, o *models.MunicipalOfficial) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type municipalOfficialRepo struct {
	db DB
}

func NewMunicipalOfficialRepository(db DB) MunicipalOfficialRepository {
	return &municipalOfficialRepo{db: db}
}

func (r *municipalOfficialRepo) Create(ctx context.Context, o *models.MunicipalOfficial) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO municipal_officials (name, position, type, image, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`, o.Name, o.Position, o.Type, o.Image).Scan(&id)
	return id, err
}

func (r *municipalOfficialRepo) GetByID(ctx context.Context, id int64) (*models.MunicipalOfficial, error) {
	row := r.db.QueryRow(ctx, baseSelectMunicipal()+" WHERE id=$1", id)
	o, err := scanMunicipal(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return o, err
}

// GetAll lists the directory with the office head first.
func (r *municipalOfficialRepo) GetAll(ctx context.Context) ([]*models.MunicipalOfficial, error) {
	rows, err := r.db.Query(ctx, baseSelectMunicipal()+" ORDER BY type DESC, id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*models.MunicipalOfficial, 0)
	for rows.Next() {
		o, err := scanMunicipal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *municipalOfficialRepo) Update(ctx context.Context, o *models.MunicipalOfficial) (int64, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE municipal_officials SET name=$1, position=$2, type=$3, image=$4 WHERE id=$5
	`, o.Name, o.Position, o.Type, o.Image, o.ID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *municipalOfficialRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM municipal_officials WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func baseSelectMunicipal() string {
	return `SELECT id, name, position, type, image, created_at FROM municipal_officials`
}

func scanMunicipal(row pgx.Row) (*models.MunicipalOfficial, error) {
	var o models.MunicipalOfficial
	if err := row.Scan(&o.ID, &o.Name, &o.Position, &o.Type, &o.Image, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}
