package repositories

import (
	"database/sql"
	"strings"

	intconfig "transfer-backend/internal/config"
	"transfer-backend/internal/domain"
	"transfer-backend/internal/domain/models"

	"github.com/go-sql-driver/mysql"
)

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const bookingSelect = `
	SELECT
		b.id, b.booking_number, b.customer_name, b.customer_email, b.customer_phone,
		b.pickup_location, b.dropoff_location,
		DATE_FORMAT(b.pickup_date, '%Y-%m-%d') AS pickup_date,
		TIME_FORMAT(b.pickup_time, '%H:%i') AS pickup_time,
		b.passengers, b.luggage,
		b.vehicle_id, COALESCE(v.name_tr, '') AS vehicle_name,
		b.driver_id, COALESCE(d.name, '') AS driver_name,
		b.total_price, b.currency, b.status, b.payment_status,
		COALESCE(b.notes, '') AS notes,
		b.created_at, b.updated_at
	FROM bookings b
	LEFT JOIN vehicles v ON b.vehicle_id = v.id
	LEFT JOIN drivers d ON b.driver_id = d.id
`

func scanBooking(row interface{ Scan(dest ...any) error }) (models.Booking, error) {
	var b models.Booking
	var driverID sql.NullInt64
	err := row.Scan(
		&b.ID, &b.BookingNumber, &b.CustomerName, &b.CustomerEmail, &b.CustomerPhone,
		&b.PickupLocation, &b.DropoffLocation,
		&b.PickupDate, &b.PickupTime,
		&b.Passengers, &b.Luggage,
		&b.VehicleID, &b.VehicleName,
		&driverID, &b.DriverName,
		&b.TotalPrice, &b.Currency, &b.Status, &b.PaymentStatus,
		&b.Notes,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return models.Booking{}, err
	}
	if driverID.Valid {
		id := driverID.Int64
		b.DriverID = &id
	}
	return b, nil
}

// List returns bookings newest first, optionally filtered by exact status,
// together with the total booking count.
func (r BookingRepository) List(status string, limit, offset int) ([]models.Booking, int, error) {
	if limit <= 0 {
		limit = 50
	}
	if limit > 200 {
		limit = 200
	}
	if offset < 0 {
		offset = 0
	}

	query := bookingSelect
	args := []any{}
	status = strings.TrimSpace(status)
	if status != "" && status != "all" {
		query += " WHERE b.status = ? "
		args = append(args, status)
	}
	query += " ORDER BY b.created_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, offset)

	rows, err := r.db().Query(query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, 0, err
		}
		list = append(list, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&total); err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	row := r.db().QueryRow(bookingSelect+" WHERE b.id = ?", id)
	b, err := scanBooking(row)
	if err == sql.ErrNoRows {
		return models.Booking{}, domain.NotFoundError{Resource: "booking"}
	}
	return b, err
}

// Create inserts the booking and returns its generated id. A duplicate
// booking_number surfaces as a ConflictError so the caller can regenerate.
func (r BookingRepository) Create(in models.NewBooking) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO bookings (
			booking_number, customer_name, customer_email, customer_phone,
			pickup_location, dropoff_location, pickup_date, pickup_time,
			passengers, luggage, vehicle_id, total_price, currency, notes,
			status, payment_status, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, 'pending', 'pending', NOW(), NOW())
	`,
		in.BookingNumber, in.CustomerName, in.CustomerEmail, in.CustomerPhone,
		in.PickupLocation, in.DropoffLocation, in.PickupDate, in.PickupTime,
		in.Passengers, in.Luggage, in.VehicleID, in.TotalPrice, in.Currency,
		nullIfEmpty(in.Notes),
	)
	if err != nil {
		if me, ok := err.(*mysql.MySQLError); ok && me.Number == 1062 {
			return 0, domain.ConflictError{Resource: "booking_number", Err: err}
		}
		return 0, err
	}
	return res.LastInsertId()
}

// Patch applies exactly one field set (status, driver or payment status).
func (r BookingRepository) Patch(id int64, p models.BookingPatch) error {
	var (
		res sql.Result
		err error
	)
	switch {
	case p.Status != nil:
		res, err = r.db().Exec(`UPDATE bookings SET status = ?, updated_at = NOW() WHERE id = ?`, *p.Status, id)
	case p.DriverID != nil:
		var driver any
		if *p.DriverID > 0 {
			driver = *p.DriverID
		}
		res, err = r.db().Exec(`UPDATE bookings SET driver_id = ?, updated_at = NOW() WHERE id = ?`, driver, id)
	case p.PaymentStatus != nil:
		res, err = r.db().Exec(`UPDATE bookings SET payment_status = ?, updated_at = NOW() WHERE id = ?`, *p.PaymentStatus, id)
	default:
		return domain.ValidationError{Msg: "no valid fields to update"}
	}
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		// distinguish a missing row from a no-op update
		var exists int
		if err := r.db().QueryRow(`SELECT COUNT(*) FROM bookings WHERE id = ?`, id).Scan(&exists); err != nil {
			return err
		}
		if exists == 0 {
			return domain.NotFoundError{Resource: "booking"}
		}
	}
	return nil
}

func (r BookingRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM bookings WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		return domain.NotFoundError{Resource: "booking"}
	}
	return nil
}

func nullIfEmpty(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
