package models

import "time"

// Booking is a stored transfer reservation. VehicleName and DriverName are
// filled by list/get queries that join the referenced rows.
type Booking struct {
	ID              int64     `json:"id"`
	BookingNumber   string    `json:"bookingNumber"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	PickupLocation  string    `json:"pickupLocation"`
	DropoffLocation string    `json:"dropoffLocation"`
	PickupDate      string    `json:"pickupDate"`
	PickupTime      string    `json:"pickupTime"`
	Passengers      int       `json:"passengers"`
	Luggage         int       `json:"luggage"`
	VehicleID       int64     `json:"vehicleId"`
	VehicleName     string    `json:"vehicleName,omitempty"`
	DriverID        *int64    `json:"driverId"`
	DriverName      string    `json:"driverName,omitempty"`
	TotalPrice      float64   `json:"totalPrice"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"paymentStatus"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NewBooking carries validated input for an insert.
type NewBooking struct {
	BookingNumber   string
	CustomerName    string
	CustomerEmail   string
	CustomerPhone   string
	PickupLocation  string
	DropoffLocation string
	PickupDate      string
	PickupTime      string
	Passengers      int
	Luggage         int
	VehicleID       int64
	TotalPrice      float64
	Currency        string
	Notes           string
}

// BookingPatch supports PATCH-style updates via key presence. Exactly one
// field set is applied per call.
type BookingPatch struct {
	Status        *string `json:"status"`
	DriverID      *int64  `json:"driverId"`
	PaymentStatus *string `json:"paymentStatus"`
}
