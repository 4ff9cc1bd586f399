package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
)

type BarangayOfficialRepository interface {
	Create(ctx context.Context, o *models.BarangayOfficial) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.BarangayOfficial, error)
	GetAll(ctx context.Context) ([]*models.BarangayOfficial, error)

	// Update overwrites the image column only when newImage is non-nil.
	Update(ctx context.Context, o *models.BarangayOfficial, newImage *string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type barangayOfficialRepo struct {
	db DB
}

func NewBarangayOfficialRepository(db DB) BarangayOfficialRepository {
	return &barangayOfficialRepo{db: db}
}

func (r *barangayOfficialRepo) Create(ctx context.Context, o *models.BarangayOfficial) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO barangay_officials (barangay_name, president_name, position, image, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id
	`, o.BarangayName, o.PresidentName, o.Position, o.Image).Scan(&id)
	return id, err
}

func (r *barangayOfficialRepo) GetByID(ctx context.Context, id int64) (*models.BarangayOfficial, error) {
	row := r.db.QueryRow(ctx, baseSelectBarangay()+" WHERE id=$1", id)
	o, err := scanBarangay(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return o, err
}

func (r *barangayOfficialRepo) GetAll(ctx context.Context) ([]*models.BarangayOfficial, error) {
	rows, err := r.db.Query(ctx, baseSelectBarangay()+" ORDER BY barangay_name ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*models.BarangayOfficial, 0)
	for rows.Next() {
		o, err := scanBarangay(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *barangayOfficialRepo) Update(ctx context.Context, o *models.BarangayOfficial, newImage *string) (int64, error) {
	if newImage != nil {
		tag, err := r.db.Exec(ctx, `
			UPDATE barangay_officials
			SET barangay_name=$1, president_name=$2, position=$3, image=$4
			WHERE id=$5
		`, o.BarangayName, o.PresidentName, o.Position, *newImage, o.ID)
		if err != nil {
			return 0, err
		}
		return tag.RowsAffected(), nil
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE barangay_officials
		SET barangay_name=$1, president_name=$2, position=$3
		WHERE id=$4
	`, o.BarangayName, o.PresidentName, o.Position, o.ID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *barangayOfficialRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM barangay_officials WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func baseSelectBarangay() string {
	return `SELECT id, barangay_name, president_name, position, image, created_at FROM barangay_officials`
}

func scanBarangay(row pgx.Row) (*models.BarangayOfficial, error) {
	var o models.BarangayOfficial
	if err := row.Scan(&o.ID, &o.BarangayName, &o.PresidentName, &o.Position, &o.Image, &o.CreatedAt); err != nil {
		return nil, err
	}
	return &o, nil
}
