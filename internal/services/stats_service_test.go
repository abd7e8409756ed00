package services

import (
	"context"
	"testing"

	"transfer-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func countRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestStatsServiceGetDashboard(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// the count queries run concurrently, so arrival order is unknown
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings$`).
		WillReturnRows(countRows(120))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE status = \?`).
		WithArgs("pending").
		WillReturnRows(countRows(8))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE status = \?`).
		WithArgs("confirmed").
		WillReturnRows(countRows(15))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM drivers WHERE is_active = TRUE`).
		WillReturnRows(countRows(6))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM vehicles WHERE is_active = TRUE`).
		WillReturnRows(countRows(4))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM contact_messages WHERE is_read = FALSE`).
		WillReturnRows(countRows(3))
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM driver_applications WHERE status = 'pending'`).
		WillReturnRows(countRows(2))
	mock.ExpectQuery(`(?s)SELECT COALESCE\(SUM\(total_price\), 0\) FROM bookings WHERE payment_status = 'paid'`).
		WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(45250.0))
	mock.ExpectQuery(`(?s)FROM bookings b.*ORDER BY b\.created_at DESC LIMIT \?`).
		WithArgs(5).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "booking_number", "customer_name", "customer_email", "customer_phone",
			"pickup_location", "dropoff_location", "pickup_date", "pickup_time",
			"passengers", "luggage", "vehicle_id", "vehicle_name",
			"driver_id", "driver_name", "total_price", "currency", "status",
			"payment_status", "notes", "created_at", "updated_at",
		}))
	mock.ExpectQuery(`(?s)DATE_FORMAT\(created_at, '%Y-%m'\).*FROM bookings.*INTERVAL \? MONTH`).
		WithArgs(6).
		WillReturnRows(sqlmock.NewRows([]string{"month", "bookings", "revenue"}).
			AddRow("2026-08", 40, 18200.0).
			AddRow("2026-07", 35, 15400.0))

	svc := StatsService{StatsRepo: repositories.StatsRepository{DB: db}}
	snap, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	require.Equal(t, 120, snap.Stats.TotalBookings)
	require.Equal(t, 8, snap.Stats.PendingBookings)
	require.Equal(t, 15, snap.Stats.ConfirmedBookings)
	require.Equal(t, 6, snap.Stats.ActiveDrivers)
	require.Equal(t, 4, snap.Stats.ActiveVehicles)
	require.Equal(t, 3, snap.Stats.UnreadMessages)
	require.Equal(t, 2, snap.Stats.PendingApplications)
	require.Equal(t, 45250.0, snap.Stats.TotalRevenue)
	require.Empty(t, snap.RecentBookings)
	require.Len(t, snap.MonthlyStats, 2)
	require.Equal(t, "2026-08", snap.MonthlyStats[0].Month)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestStatsServiceGetDashboardPropagatesFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.MatchExpectationsInOrder(false)
	// every count query fails; any one failure must fail the snapshot
	mock.ExpectQuery(`SELECT COUNT`).WillReturnError(context.DeadlineExceeded)

	svc := StatsService{StatsRepo: repositories.StatsRepository{DB: db}}
	_, err = svc.GetDashboard(context.Background())
	require.Error(t, err)
}
