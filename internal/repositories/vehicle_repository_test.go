package repositories

import (
	"testing"
	"time"

	"transfer-backend/internal/domain"
	"transfer-backend/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

var vehicleColumns = []string{
	"id", "name", "name_tr", "name_en", "name_ru", "name_hi",
	"model", "description_tr", "description_en", "description_ru", "description_hi",
	"capacity", "luggage_capacity", "image_url",
	"price_per_km", "base_price", "is_active", "created_at", "updated_at",
}

func vehicleRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(vehicleColumns).AddRow(
		3, "Sedan", "Ekonomik Sedan", "Economy Sedan", "Эконом седан", "इकोनॉमी सेडान",
		"Toyota Corolla", "", "", "", "",
		4, 3, "",
		12.0, 200.0, true, now, now,
	)
}

func TestVehicleRepositoryListActiveOnly(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM vehicles.*WHERE is_active = TRUE.*ORDER BY capacity ASC`).
		WillReturnRows(vehicleRow())

	repo := VehicleRepository{DB: db}
	list, err := repo.List(true)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(list) != 1 || list[0].NameTR != "Ekonomik Sedan" {
		t.Fatalf("unexpected list: %+v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVehicleRepositoryGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`(?s)FROM vehicles.*WHERE id = \?`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(vehicleColumns))

	repo := VehicleRepository{DB: db}
	_, err = repo.GetByID(404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestVehicleRepositoryEmptyPatchKeepsStoredValues(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	// every patch field is nil, so each COALESCE keeps the stored value
	mock.ExpectExec(`(?s)UPDATE vehicles SET.*name = COALESCE\(\?, name\).*base_price = COALESCE\(\?, base_price\)`).
		WithArgs(
			nil, nil, nil, nil, nil, nil,
			nil, nil, nil, nil,
			nil, nil, nil, nil, nil,
			nil, int64(3),
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := VehicleRepository{DB: db}
	if err := repo.Patch(3, models.VehiclePatch{}); err != nil {
		t.Fatalf("empty patch should succeed, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVehicleRepositoryRemoveSoftDeletesWhenReferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE vehicle_id = \?`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectExec(`UPDATE vehicles SET is_active = FALSE`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := VehicleRepository{DB: db}
	softDeleted, err := repo.Remove(3)
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if !softDeleted {
		t.Fatalf("expected soft delete for a referenced vehicle")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVehicleRepositoryRemoveHardDeletesWhenUnreferenced(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE vehicle_id = \?`).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`DELETE FROM vehicles WHERE id = \?`).
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	repo := VehicleRepository{DB: db}
	softDeleted, err := repo.Remove(3)
	if err != nil {
		t.Fatalf("Remove returned error: %v", err)
	}
	if softDeleted {
		t.Fatalf("expected hard delete for an unreferenced vehicle")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestVehicleRepositoryRemoveMissingVehicle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM bookings WHERE vehicle_id = \?`).
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`DELETE FROM vehicles WHERE id = \?`).
		WithArgs(int64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	repo := VehicleRepository{DB: db}
	_, err = repo.Remove(404)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
