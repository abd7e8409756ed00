package repositories

import (
	"database/sql"

	intconfig "transfer-backend/internal/config"
	"transfer-backend/internal/domain"
	"transfer-backend/internal/domain/models"
)

type HotelRepository struct {
	DB *sql.DB
}

func (r HotelRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const hotelSelect = `
	SELECT
		id, name, category, region, COALESCE(address, '') AS address,
		latitude, longitude, rating,
		COALESCE(image_url, '') AS image_url, COALESCE(phone, '') AS phone,
		COALESCE(price_range, '') AS price_range, COALESCE(description, '') AS description,
		is_active, created_at, updated_at
	FROM hotels
`

func scanHotel(row interface{ Scan(dest ...any) error }) (models.Hotel, error) {
	var h models.Hotel
	err := row.Scan(
		&h.ID, &h.Name, &h.Category, &h.Region, &h.Address,
		&h.Latitude, &h.Longitude, &h.Rating,
		&h.ImageURL, &h.Phone,
		&h.PriceRange, &h.Description,
		&h.IsActive, &h.CreatedAt, &h.UpdatedAt,
	)
	return h, err
}

// List returns active hotels best-rated first, narrowed by the optional
// region/category/minRating filters.
func (r HotelRepository) List(f models.HotelFilter) ([]models.Hotel, error) {
	query := hotelSelect + " WHERE is_active = TRUE"
	args := []any{}
	if f.Region != "" {
		query += " AND region = ?"
		args = append(args, f.Region)
	}
	if f.Category != "" {
		query += " AND category = ?"
		args = append(args, f.Category)
	}
	if f.MinRating > 0 {
		query += " AND rating >= ?"
		args = append(args, f.MinRating)
	}
	query += " ORDER BY rating DESC, name ASC"

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Hotel{}
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, h)
	}
	return list, rows.Err()
}

func (r HotelRepository) GetByID(id int64) (models.Hotel, error) {
	row := r.db().QueryRow(hotelSelect+" WHERE id = ? AND is_active = TRUE", id)
	h, err := scanHotel(row)
	if err == sql.ErrNoRows {
		return models.Hotel{}, domain.NotFoundError{Resource: "hotel"}
	}
	return h, err
}

func (r HotelRepository) Create(h models.Hotel) (int64, error) {
	rating := h.Rating
	if rating == 0 {
		rating = 4.5
	}
	res, err := r.db().Exec(`
		INSERT INTO hotels (
			name, category, region, address, latitude, longitude,
			rating, image_url, phone, price_range, description,
			is_active, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, TRUE, NOW(), NOW())
	`,
		h.Name, h.Category, h.Region, nullIfEmpty(h.Address), h.Latitude, h.Longitude,
		rating, nullIfEmpty(h.ImageURL), nullIfEmpty(h.Phone),
		nullIfEmpty(h.PriceRange), nullIfEmpty(h.Description),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r HotelRepository) Patch(id int64, p models.HotelPatch) error {
	res, err := r.db().Exec(`
		UPDATE hotels SET
			name = COALESCE(?, name),
			category = COALESCE(?, category),
			region = COALESCE(?, region),
			address = COALESCE(?, address),
			latitude = COALESCE(?, latitude),
			longitude = COALESCE(?, longitude),
			rating = COALESCE(?, rating),
			image_url = COALESCE(?, image_url),
			phone = COALESCE(?, phone),
			price_range = COALESCE(?, price_range),
			description = COALESCE(?, description),
			updated_at = NOW()
		WHERE id = ?
	`,
		p.Name, p.Category, p.Region, p.Address, p.Latitude, p.Longitude,
		p.Rating, p.ImageURL, p.Phone, p.PriceRange, p.Description, id,
	)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		var exists int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM hotels WHERE id = ?`, id).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return domain.NotFoundError{Resource: "hotel"}
		}
	}
	return nil
}

// Deactivate is the only delete path for hotels; history keeps the row.
func (r HotelRepository) Deactivate(id int64) error {
	res, err := r.db().Exec(`UPDATE hotels SET is_active = FALSE, updated_at = NOW() WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "hotel"}
	}
	return nil
}
