package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/reinzjustinedagang/osca-backend/internal/models"
)

type SeniorCitizenRepository interface {
	Create(ctx context.Context, sc *models.SeniorCitizen) (int64, error)
	GetByID(ctx context.Context, id int64) (*models.SeniorCitizen, error)
	Update(ctx context.Context, sc *models.SeniorCitizen) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	GetAll(ctx context.Context) ([]*models.SeniorCitizen, error)
	Count(ctx context.Context) (int64, error)
	GetPage(ctx context.Context, limit, offset int) ([]*models.SeniorCitizen, error)
	Search(ctx context.Context, term string) ([]*models.SeniorCitizen, error)
	GetByBarangay(ctx context.Context, barangay string) ([]*models.SeniorCitizen, error)
}

type seniorCitizenRepo struct {
	db DB
}

func NewSeniorCitizenRepository(db DB) SeniorCitizenRepository {
	return &seniorCitizenRepo{db: db}
}

func (r *seniorCitizenRepo) Create(ctx context.Context, sc *models.SeniorCitizen) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO senior_citizens (
			first_name, last_name, middle_name, suffix,
			age, gender, birthdate, civil_status, religion, blood_type,
			house_number_street, barangay, municipality, province, zip_code,
			mobile_number, telephone_number, email_address,
			valid_id_type, valid_id_number, philsys_id, sss_number,
			gsis_number, philhealth_number, tin_number,
			employment_status, occupation, highest_education, classification, monthly_pension,
			emergency_contact_name, emergency_contact_relationship, emergency_contact_number,
			health_status, health_notes, created_at
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15,
			$16, $17, $18,
			$19, $20, $21, $22,
			$23, $24, $25,
			$26, $27, $28, $29, $30,
			$31, $32, $33,
			$34, $35, NOW()
		) RETURNING id
	`, citizenArgs(sc)...).Scan(&id)
	return id, err
}

func (r *seniorCitizenRepo) GetByID(ctx context.Context, id int64) (*models.SeniorCitizen, error) {
	row := r.db.QueryRow(ctx, baseSelectCitizen()+" WHERE id=$1", id)
	sc, err := scanCitizen(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	return sc, err
}

// Update is a full-record overwrite, mirroring how the registry form
// submits every field on edit.
func (r *seniorCitizenRepo) Update(ctx context.Context, sc *models.SeniorCitizen) (int64, error) {
	args := citizenArgs(sc)
	args = append(args, sc.ID)
	tag, err := r.db.Exec(ctx, `
		UPDATE senior_citizens SET
			first_name=$1, last_name=$2, middle_name=$3, suffix=$4,
			age=$5, gender=$6, birthdate=$7, civil_status=$8, religion=$9, blood_type=$10,
			house_number_street=$11, barangay=$12, municipality=$13, province=$14, zip_code=$15,
			mobile_number=$16, telephone_number=$17, email_address=$18,
			valid_id_type=$19, valid_id_number=$20, philsys_id=$21, sss_number=$22,
			gsis_number=$23, philhealth_number=$24, tin_number=$25,
			employment_status=$26, occupation=$27, highest_education=$28, classification=$29, monthly_pension=$30,
			emergency_contact_name=$31, emergency_contact_relationship=$32, emergency_contact_number=$33,
			health_status=$34, health_notes=$35
		WHERE id=$36
	`, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *seniorCitizenRepo) Delete(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM senior_citizens WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *seniorCitizenRepo) GetAll(ctx context.Context) ([]*models.SeniorCitizen, error) {
	rows, err := r.db.Query(ctx, baseSelectCitizen()+" ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCitizens(rows)
}

func (r *seniorCitizenRepo) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM senior_citizens`).Scan(&total)
	return total, err
}

func (r *seniorCitizenRepo) GetPage(ctx context.Context, limit, offset int) ([]*models.SeniorCitizen, error) {
	rows, err := r.db.Query(ctx,
		baseSelectCitizen()+" ORDER BY created_at DESC LIMIT $1 OFFSET $2",
		limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCitizens(rows)
}

// Search does substring matching across names, address fields and the
// mobile number.
func (r *seniorCitizenRepo) Search(ctx context.Context, term string) ([]*models.SeniorCitizen, error) {
	pattern := "%" + term + "%"
	rows, err := r.db.Query(ctx, baseSelectCitizen()+`
		WHERE first_name ILIKE $1
		   OR last_name ILIKE $1
		   OR middle_name ILIKE $1
		   OR house_number_street ILIKE $1
		   OR barangay ILIKE $1
		   OR municipality ILIKE $1
		   OR mobile_number ILIKE $1
		ORDER BY last_name ASC, first_name ASC
	`, pattern)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCitizens(rows)
}

func (r *seniorCitizenRepo) GetByBarangay(ctx context.Context, barangay string) ([]*models.SeniorCitizen, error) {
	rows, err := r.db.Query(ctx, baseSelectCitizen()+`
		WHERE barangay = $1
		ORDER BY last_name ASC, first_name ASC
	`, barangay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCitizens(rows)
}

func baseSelectCitizen() string {
	return `
		SELECT id, first_name, last_name, middle_name, suffix,
		       age, gender, birthdate, civil_status, religion, blood_type,
		       house_number_street, barangay, municipality, province, zip_code,
		       mobile_number, telephone_number, email_address,
		       valid_id_type, valid_id_number, philsys_id, sss_number,
		       gsis_number, philhealth_number, tin_number,
		       employment_status, occupation, highest_education, classification, monthly_pension,
		       emergency_contact_name, emergency_contact_relationship, emergency_contact_number,
		       health_status, health_notes, created_at
		FROM senior_citizens`
}

func citizenArgs(sc *models.SeniorCitizen) []interface{} {
	return []interface{}{
		sc.FirstName, sc.LastName, sc.MiddleName, sc.Suffix,
		sc.Age, sc.Gender, sc.Birthdate, sc.CivilStatus, sc.Religion, sc.BloodType,
		sc.HouseNumberStreet, sc.Barangay, sc.Municipality, sc.Province, sc.ZipCode,
		sc.MobileNumber, sc.TelephoneNumber, sc.EmailAddress,
		sc.ValidIDType, sc.ValidIDNumber, sc.PhilSysID, sc.SSSNumber,
		sc.GSISNumber, sc.PhilhealthNumber, sc.TINNumber,
		sc.EmploymentStatus, sc.Occupation, sc.HighestEducation, sc.Classification, sc.MonthlyPension,
		sc.EmergencyContactName, sc.EmergencyContactRelationship, sc.EmergencyContactNumber,
		sc.HealthStatus, sc.HealthNotes,
	}
}

func scanCitizen(row pgx.Row) (*models.SeniorCitizen, error) {
	var sc models.SeniorCitizen
	err := row.Scan(
		&sc.ID, &sc.FirstName, &sc.LastName, &sc.MiddleName, &sc.Suffix,
		&sc.Age, &sc.Gender, &sc.Birthdate, &sc.CivilStatus, &sc.Religion, &sc.BloodType,
		&sc.HouseNumberStreet, &sc.Barangay, &sc.Municipality, &sc.Province, &sc.ZipCode,
		&sc.MobileNumber, &sc.TelephoneNumber, &sc.EmailAddress,
		&sc.ValidIDType, &sc.ValidIDNumber, &sc.PhilSysID, &sc.SSSNumber,
		&sc.GSISNumber, &sc.PhilhealthNumber, &sc.TINNumber,
		&sc.EmploymentStatus, &sc.Occupation, &sc.HighestEducation, &sc.Classification, &sc.MonthlyPension,
		&sc.EmergencyContactName, &sc.EmergencyContactRelationship, &sc.EmergencyContactNumber,
		&sc.HealthStatus, &sc.HealthNotes, &sc.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &sc, nil
}

func collectCitizens(rows pgx.Rows) ([]*models.SeniorCitizen, error) {
	out := make([]*models.SeniorCitizen, 0)
	for rows.Next() {
		sc, err := scanCitizen(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, rows.Err()
}
