package models

import "time"

// DriverApplication is a prospective driver's submitted profile. Created by
// the public form, transitioned by an admin (pending -> approved|rejected).
type DriverApplication struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	ExperienceYears int       `json:"experienceYears"`
	LicenseType     string    `json:"licenseType"`
	HasOwnVehicle   bool      `json:"hasOwnVehicle"`
	VehicleType     string    `json:"vehicleType,omitempty"`
	City            string    `json:"city"`
	Message         string    `json:"message,omitempty"`
	Status          string    `json:"status"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
