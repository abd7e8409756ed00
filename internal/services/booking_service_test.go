package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"transfer-backend/internal/domain"
	"transfer-backend/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

var bookingNumberRe = regexp.MustCompile(`^NVS-[A-Z0-9]{8}$`)

var testVehicleColumns = []string{
	"id", "name", "name_tr", "name_en", "name_ru", "name_hi",
	"model", "description_tr", "description_en", "description_ru", "description_hi",
	"capacity", "luggage_capacity", "image_url",
	"price_per_km", "base_price", "is_active", "created_at", "updated_at",
}

var testBookingColumns = []string{
	"id", "booking_number", "customer_name", "customer_email", "customer_phone",
	"pickup_location", "dropoff_location", "pickup_date", "pickup_time",
	"passengers", "luggage", "vehicle_id", "vehicle_name",
	"driver_id", "driver_name", "total_price", "currency", "status",
	"payment_status", "notes", "created_at", "updated_at",
}

func testVehicleRow(perKm, base float64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(testVehicleColumns).AddRow(
		3, "Sedan", "Ekonomik Sedan", "Economy Sedan", "Эконом седан", "इकोनॉमी सेडान",
		"", "", "", "", "",
		4, 3, "",
		perKm, base, true, now, now,
	)
}

func testBookingRow(number string, price float64) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(testBookingColumns).AddRow(
		1, number, "Jane Doe", "jane@example.com", "+905551234567",
		"Antalya Airport", "Kemer Hotel", "2026-09-01", "14:30",
		2, 2, 3, "Ekonomik Sedan",
		nil, "", price, "TRY", "pending",
		"pending", "", now, now,
	)
}

func testBookingInput() BookingInput {
	return BookingInput{
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "+905551234567",
		PickupLocation:  "Antalya Airport",
		DropoffLocation: "Kemer Hotel",
		PickupDate:      "2026-09-01",
		PickupTime:      "14:30",
		Passengers:      2,
		Luggage:         2,
		VehicleID:       3,
	}
}

func TestBookingServiceCreateUsesBasePrice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM vehicles.*WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnRows(testVehicleRow(12, 200))
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`(?s)FROM bookings b.*WHERE b\.id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(testBookingRow("NVS-ABC12345", 200))

	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		VehicleRepo: repositories.VehicleRepository{DB: db},
	}
	booking, err := svc.Create(testBookingInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if booking.TotalPrice != 200 {
		t.Fatalf("expected base price 200, got %v", booking.TotalPrice)
	}
	if !bookingNumberRe.MatchString(booking.BookingNumber) {
		t.Fatalf("stored booking number %q has wrong shape", booking.BookingNumber)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingServiceCreateUnknownVehicle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM vehicles.*WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(testVehicleColumns))

	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		VehicleRepo: repositories.VehicleRepository{DB: db},
	}
	_, err = svc.Create(testBookingInput())
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestBookingServiceCreateRegeneratesNumberOnCollision(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM vehicles.*WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnRows(testVehicleRow(12, 200))
	// first insert collides on the unique booking_number, the retry lands
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectExec(`INSERT INTO bookings`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`(?s)FROM bookings b.*WHERE b\.id = \?`).
		WithArgs(int64(1)).
		WillReturnRows(testBookingRow("NVS-XYZ98765", 200))

	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		VehicleRepo: repositories.VehicleRepository{DB: db},
	}
	booking, err := svc.Create(testBookingInput())
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if booking.BookingNumber != "NVS-XYZ98765" {
		t.Fatalf("unexpected booking number %q", booking.BookingNumber)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingServiceQuoteWithoutProviderFallsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM vehicles.*WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnRows(testVehicleRow(12, 200))

	svc := BookingService{
		BookingRepo: repositories.BookingRepository{DB: db},
		VehicleRepo: repositories.VehicleRepository{DB: db},
	}
	quote, err := svc.QuotePrice(context.Background(), "Antalya Airport", "Kemer", 3)
	if err != nil {
		t.Fatalf("QuotePrice returned error: %v", err)
	}
	if quote.Price != 200 {
		t.Fatalf("expected base price quote, got %v", quote.Price)
	}
	if quote.DistanceKm != nil {
		t.Fatalf("distance should be unknown without a provider")
	}
}
