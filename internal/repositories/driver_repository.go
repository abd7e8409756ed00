package repositories

import (
	"database/sql"

	intconfig "transfer-backend/internal/config"
	"transfer-backend/internal/domain"
	"transfer-backend/internal/domain/models"
)

type DriverRepository struct {
	DB *sql.DB
}

func (r DriverRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const driverSelect = `
	SELECT
		d.id, d.name, d.phone, COALESCE(d.email, '') AS email,
		d.license_number, d.vehicle_id, COALESCE(v.name_tr, '') AS vehicle_name,
		d.status, d.rating, d.total_rides, d.is_active, d.created_at, d.updated_at
	FROM drivers d
	LEFT JOIN vehicles v ON d.vehicle_id = v.id
`

func scanDriver(row interface{ Scan(dest ...any) error }) (models.Driver, error) {
	var d models.Driver
	var vehicleID sql.NullInt64
	err := row.Scan(
		&d.ID, &d.Name, &d.Phone, &d.Email,
		&d.LicenseNumber, &vehicleID, &d.VehicleName,
		&d.Status, &d.Rating, &d.TotalRides, &d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return models.Driver{}, err
	}
	if vehicleID.Valid {
		id := vehicleID.Int64
		d.VehicleID = &id
	}
	return d, nil
}

func (r DriverRepository) List(activeOnly bool) ([]models.Driver, error) {
	query := driverSelect
	if activeOnly {
		query += " WHERE d.is_active = TRUE"
	}
	query += " ORDER BY d.name ASC"

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Driver{}
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, d)
	}
	return list, rows.Err()
}

func (r DriverRepository) GetByID(id int64) (models.Driver, error) {
	row := r.db().QueryRow(driverSelect+" WHERE d.id = ?", id)
	d, err := scanDriver(row)
	if err == sql.ErrNoRows {
		return models.Driver{}, domain.NotFoundError{Resource: "driver"}
	}
	return d, err
}

func (r DriverRepository) Create(d models.Driver) (int64, error) {
	var vehicle any
	if d.VehicleID != nil && *d.VehicleID > 0 {
		vehicle = *d.VehicleID
	}
	res, err := r.db().Exec(`
		INSERT INTO drivers (
			name, phone, email, license_number, vehicle_id,
			status, rating, total_rides, is_active, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, 'available', 0, 0, TRUE, NOW(), NOW())
	`, d.Name, d.Phone, nullIfEmpty(d.Email), d.LicenseNumber, vehicle)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r DriverRepository) Patch(id int64, p models.DriverPatch) error {
	var vehicle any
	if p.VehicleID != nil {
		if *p.VehicleID > 0 {
			vehicle = *p.VehicleID
		}
		// explicit zero clears the assignment below
	}
	var query string
	args := []any{p.Name, p.Phone, p.Email, p.LicenseNumber}
	if p.VehicleID != nil {
		query = `
			UPDATE drivers SET
				name = COALESCE(?, name),
				phone = COALESCE(?, phone),
				email = COALESCE(?, email),
				license_number = COALESCE(?, license_number),
				vehicle_id = ?,
				status = COALESCE(?, status),
				rating = COALESCE(?, rating),
				is_active = COALESCE(?, is_active),
				updated_at = NOW()
			WHERE id = ?`
		args = append(args, vehicle, p.Status, p.Rating, p.IsActive, id)
	} else {
		query = `
			UPDATE drivers SET
				name = COALESCE(?, name),
				phone = COALESCE(?, phone),
				email = COALESCE(?, email),
				license_number = COALESCE(?, license_number),
				status = COALESCE(?, status),
				rating = COALESCE(?, rating),
				is_active = COALESCE(?, is_active),
				updated_at = NOW()
			WHERE id = ?`
		args = append(args, p.Status, p.Rating, p.IsActive, id)
	}

	res, err := r.db().Exec(query, args...)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		var exists int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM drivers WHERE id = ?`, id).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return domain.NotFoundError{Resource: "driver"}
		}
	}
	return nil
}

func (r DriverRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM drivers WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "driver"}
	}
	return nil
}
