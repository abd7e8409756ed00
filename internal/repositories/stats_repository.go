package repositories

import (
	"database/sql"

	intconfig "transfer-backend/internal/config"
	"transfer-backend/internal/domain/models"
)

type StatsRepository struct {
	DB *sql.DB
}

func (r StatsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r StatsRepository) CountBookings(status string) (int, error) {
	var count int
	var err error
	if status == "" {
		err = r.db().QueryRow(`SELECT COUNT(*) FROM bookings`).Scan(&count)
	} else {
		err = r.db().QueryRow(`SELECT COUNT(*) FROM bookings WHERE status = ?`, status).Scan(&count)
	}
	return count, err
}

func (r StatsRepository) CountActiveDrivers() (int, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM drivers WHERE is_active = TRUE`).Scan(&count)
	return count, err
}

func (r StatsRepository) CountActiveVehicles() (int, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM vehicles WHERE is_active = TRUE`).Scan(&count)
	return count, err
}

func (r StatsRepository) CountUnreadMessages() (int, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM contact_messages WHERE is_read = FALSE`).Scan(&count)
	return count, err
}

func (r StatsRepository) CountPendingApplications() (int, error) {
	var count int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM driver_applications WHERE status = 'pending'`).Scan(&count)
	return count, err
}

// PaidRevenue sums total_price over bookings whose payment went through.
func (r StatsRepository) PaidRevenue() (float64, error) {
	var total float64
	err := r.db().QueryRow(`
		SELECT COALESCE(SUM(total_price), 0) FROM bookings WHERE payment_status = 'paid'
	`).Scan(&total)
	return total, err
}

func (r StatsRepository) RecentBookings(limit int) ([]models.Booking, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.db().Query(bookingSelect+" ORDER BY b.created_at DESC LIMIT ?", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// MonthlyStat is one point of the trailing revenue series.
type MonthlyStat struct {
	Month    string  `json:"month"`
	Bookings int     `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

// MonthlyStats groups bookings/revenue per month over the trailing window.
func (r StatsRepository) MonthlyStats(months int) ([]MonthlyStat, error) {
	if months <= 0 {
		months = 6
	}
	rows, err := r.db().Query(`
		SELECT
			DATE_FORMAT(created_at, '%Y-%m') AS month,
			COUNT(*) AS bookings,
			COALESCE(SUM(total_price), 0) AS revenue
		FROM bookings
		WHERE created_at >= DATE_SUB(NOW(), INTERVAL ? MONTH)
		GROUP BY DATE_FORMAT(created_at, '%Y-%m')
		ORDER BY month DESC
	`, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	list := []MonthlyStat{}
	for rows.Next() {
		var m MonthlyStat
		if err := rows.Scan(&m.Month, &m.Bookings, &m.Revenue); err != nil {
			return nil, err
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
