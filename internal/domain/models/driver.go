package models

import "time"

type Driver struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email"`
	LicenseNumber string    `json:"licenseNumber"`
	VehicleID     *int64    `json:"vehicleId"`
	VehicleName   string    `json:"vehicleName,omitempty"`
	Status        string    `json:"status"`
	Rating        float64   `json:"rating"`
	TotalRides    int       `json:"totalRides"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type DriverPatch struct {
	Name          *string  `json:"name"`
	Phone         *string  `json:"phone"`
	Email         *string  `json:"email"`
	LicenseNumber *string  `json:"licenseNumber"`
	VehicleID     *int64   `json:"vehicleId"`
	Status        *string  `json:"status"`
	Rating        *float64 `json:"rating"`
	IsActive      *bool    `json:"isActive"`
}
