package repositories

import (
	"database/sql"

	intconfig "transfer-backend/internal/config"
	"transfer-backend/internal/domain"
	"transfer-backend/internal/domain/models"
)

type ApplicationRepository struct {
	DB *sql.DB
}

func (r ApplicationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const applicationSelect = `
	SELECT
		id, name, email, phone, experience_years, license_type,
		has_own_vehicle, COALESCE(vehicle_type, '') AS vehicle_type,
		city, COALESCE(message, '') AS message,
		status, COALESCE(notes, '') AS notes, created_at, updated_at
	FROM driver_applications
`

func scanApplication(row interface{ Scan(dest ...any) error }) (models.DriverApplication, error) {
	var a models.DriverApplication
	err := row.Scan(
		&a.ID, &a.Name, &a.Email, &a.Phone, &a.ExperienceYears, &a.LicenseType,
		&a.HasOwnVehicle, &a.VehicleType,
		&a.City, &a.Message,
		&a.Status, &a.Notes, &a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

func (r ApplicationRepository) List() ([]models.DriverApplication, error) {
	rows, err := r.db().Query(applicationSelect + " ORDER BY created_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.DriverApplication{}
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

func (r ApplicationRepository) GetByID(id int64) (models.DriverApplication, error) {
	row := r.db().QueryRow(applicationSelect+" WHERE id = ?", id)
	a, err := scanApplication(row)
	if err == sql.ErrNoRows {
		return models.DriverApplication{}, domain.NotFoundError{Resource: "application"}
	}
	return a, err
}

func (r ApplicationRepository) Create(a models.DriverApplication) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO driver_applications (
			name, email, phone, experience_years, license_type,
			has_own_vehicle, vehicle_type, city, message,
			status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 'pending', NOW(), NOW())
	`,
		a.Name, a.Email, a.Phone, a.ExperienceYears, a.LicenseType,
		a.HasOwnVehicle, nullIfEmpty(a.VehicleType), a.City, nullIfEmpty(a.Message),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// SetStatus transitions the application and optionally records admin notes.
func (r ApplicationRepository) SetStatus(id int64, status string, notes *string) error {
	res, err := r.db().Exec(`
		UPDATE driver_applications SET
			status = ?,
			notes = COALESCE(?, notes),
			updated_at = NOW()
		WHERE id = ?
	`, status, notes, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		var exists int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM driver_applications WHERE id = ?`, id).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return domain.NotFoundError{Resource: "application"}
		}
	}
	return nil
}

func (r ApplicationRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM driver_applications WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "application"}
	}
	return nil
}
