package repositories

import (
	"database/sql"

	intconfig "transfer-backend/internal/config"
	"transfer-backend/internal/domain/models"
)

type AirportRepository struct {
	DB *sql.DB
}

func (r AirportRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// List returns active airports ordered by IATA code.
func (r AirportRepository) List() ([]models.Airport, error) {
	rows, err := r.db().Query(`
		SELECT id, code, name, city, is_active
		FROM airports
		WHERE is_active = TRUE
		ORDER BY code ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Airport{}
	for rows.Next() {
		var a models.Airport
		if err := rows.Scan(&a.ID, &a.Code, &a.Name, &a.City, &a.IsActive); err != nil {
			return nil, err
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
