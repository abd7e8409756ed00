package repositories

import (
	"database/sql"

	intconfig "transfer-backend/internal/config"
	"transfer-backend/internal/domain"
	"transfer-backend/internal/domain/models"
)

type VehicleRepository struct {
	DB *sql.DB
}

func (r VehicleRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const vehicleSelect = `
	SELECT
		id, name, name_tr, name_en, name_ru, name_hi,
		COALESCE(model, '') AS model,
		COALESCE(description_tr, ''), COALESCE(description_en, ''),
		COALESCE(description_ru, ''), COALESCE(description_hi, ''),
		capacity, luggage_capacity, COALESCE(image_url, '') AS image_url,
		price_per_km, base_price, is_active, created_at, updated_at
	FROM vehicles
`

func scanVehicle(row interface{ Scan(dest ...any) error }) (models.Vehicle, error) {
	var v models.Vehicle
	err := row.Scan(
		&v.ID, &v.Name, &v.NameTR, &v.NameEN, &v.NameRU, &v.NameHI,
		&v.Model,
		&v.DescriptionTR, &v.DescriptionEN, &v.DescriptionRU, &v.DescriptionHI,
		&v.Capacity, &v.LuggageCapacity, &v.ImageURL,
		&v.PricePerKm, &v.BasePrice, &v.IsActive, &v.CreatedAt, &v.UpdatedAt,
	)
	return v, err
}

// List returns vehicles ordered by capacity. With activeOnly the public
// booking form sees only bookable classes.
func (r VehicleRepository) List(activeOnly bool) ([]models.Vehicle, error) {
	query := vehicleSelect
	if activeOnly {
		query += " WHERE is_active = TRUE"
	}
	query += " ORDER BY capacity ASC"

	rows, err := r.db().Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Vehicle{}
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

func (r VehicleRepository) GetByID(id int64) (models.Vehicle, error) {
	row := r.db().QueryRow(vehicleSelect+" WHERE id = ?", id)
	v, err := scanVehicle(row)
	if err == sql.ErrNoRows {
		return models.Vehicle{}, domain.NotFoundError{Resource: "vehicle"}
	}
	return v, err
}

func (r VehicleRepository) Create(v models.Vehicle) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO vehicles (
			name, name_tr, name_en, name_ru, name_hi, model,
			description_tr, description_en, description_ru, description_hi,
			capacity, luggage_capacity, image_url, price_per_km, base_price,
			is_active, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, TRUE, NOW(), NOW())
	`,
		v.Name, v.NameTR, v.NameEN, v.NameRU, v.NameHI, nullIfEmpty(v.Model),
		nullIfEmpty(v.DescriptionTR), nullIfEmpty(v.DescriptionEN),
		nullIfEmpty(v.DescriptionRU), nullIfEmpty(v.DescriptionHI),
		v.Capacity, v.LuggageCapacity, nullIfEmpty(v.ImageURL),
		v.PricePerKm, v.BasePrice,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// Patch updates only the fields present in the payload; everything else keeps
// its stored value via COALESCE.
func (r VehicleRepository) Patch(id int64, p models.VehiclePatch) error {
	res, err := r.db().Exec(`
		UPDATE vehicles SET
			name = COALESCE(?, name),
			name_tr = COALESCE(?, name_tr),
			name_en = COALESCE(?, name_en),
			name_ru = COALESCE(?, name_ru),
			name_hi = COALESCE(?, name_hi),
			model = COALESCE(?, model),
			description_tr = COALESCE(?, description_tr),
			description_en = COALESCE(?, description_en),
			description_ru = COALESCE(?, description_ru),
			description_hi = COALESCE(?, description_hi),
			capacity = COALESCE(?, capacity),
			luggage_capacity = COALESCE(?, luggage_capacity),
			image_url = COALESCE(?, image_url),
			price_per_km = COALESCE(?, price_per_km),
			base_price = COALESCE(?, base_price),
			is_active = COALESCE(?, is_active),
			updated_at = NOW()
		WHERE id = ?
	`,
		p.Name, p.NameTR, p.NameEN, p.NameRU, p.NameHI, p.Model,
		p.DescriptionTR, p.DescriptionEN, p.DescriptionRU, p.DescriptionHI,
		p.Capacity, p.LuggageCapacity, p.ImageURL, p.PricePerKm, p.BasePrice,
		p.IsActive, id,
	)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		var exists int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM vehicles WHERE id = ?`, id).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return domain.NotFoundError{Resource: "vehicle"}
		}
	}
	return nil
}

// Deactivate soft-deletes a vehicle that booking history still references.
func (r VehicleRepository) Deactivate(id int64) error {
	res, err := r.db().Exec(`UPDATE vehicles SET is_active = FALSE, updated_at = NOW() WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}

func (r VehicleRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM vehicles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "vehicle"}
	}
	return nil
}

// Remove deletes a vehicle, falling back to deactivation when bookings still
// reference it. The count and the delete run in one transaction so a booking
// created in between cannot orphan its vehicle row. Returns true when the
// vehicle was soft-deleted.
func (r VehicleRepository) Remove(id int64) (bool, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	var referenced int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM bookings WHERE vehicle_id = ?`, id).Scan(&referenced); err != nil {
		return false, err
	}

	var res sql.Result
	if referenced > 0 {
		res, err = tx.Exec(`UPDATE vehicles SET is_active = FALSE, updated_at = NOW() WHERE id = ?`, id)
	} else {
		res, err = tx.Exec(`DELETE FROM vehicles WHERE id = ?`, id)
	}
	if err != nil {
		return false, err
	}
	if affected, _ := res.RowsAffected(); affected == 0 && referenced == 0 {
		return false, domain.NotFoundError{Resource: "vehicle"}
	}
	if err := tx.Commit(); err != nil {
		return false, err
	}
	return referenced > 0, nil
}
