package services

import (
	"context"
	"fmt"

	"transfer-backend/internal/domain"
	"transfer-backend/internal/domain/models"
	"transfer-backend/internal/integrations/distance"
	"transfer-backend/internal/repositories"
	"transfer-backend/internal/utils"
)

// BookingService owns booking creation (pricing + booking number) and price
// quotes. Zero-value repos fall back to the shared DB handle.
type BookingService struct {
	BookingRepo repositories.BookingRepository
	VehicleRepo repositories.VehicleRepository
	Distance    *distance.Client
	RequestID   string
}

// bookingNumberAttempts bounds the regenerate-on-conflict loop. The suffix
// space is 36^8, so a second collision in a row is effectively noise.
const bookingNumberAttempts = 5

// BookingInput is the validated public booking form payload.
type BookingInput struct {
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
	Notes           string
}

// Create prices the booking off the vehicle's base price, assigns a booking
// number and persists the row. Returns the stored record.
func (s BookingService) Create(in BookingInput) (models.Booking, error) {
	vehicle, err := s.VehicleRepo.GetByID(in.VehicleID)
	if err != nil {
		return models.Booking{}, err
	}

	row := models.NewBooking{
		CustomerName:    in.CustomerName,
		CustomerEmail:   in.CustomerEmail,
		CustomerPhone:   in.CustomerPhone,
		PickupLocation:  in.PickupLocation,
		DropoffLocation: in.DropoffLocation,
		PickupDate:      in.PickupDate,
		PickupTime:      in.PickupTime,
		Passengers:      in.Passengers,
		Luggage:         in.Luggage,
		VehicleID:       vehicle.ID,
		TotalPrice:      vehicle.BasePrice,
		Currency:        "TRY",
		Notes:           in.Notes,
	}

	var id int64
	for attempt := 0; attempt < bookingNumberAttempts; attempt++ {
		row.BookingNumber = utils.NewBookingNumber()
		id, err = s.BookingRepo.Create(row)
		if err == nil {
			break
		}
		if !domain.IsConflict(err) {
			return models.Booking{}, err
		}
	}
	if err != nil {
		return models.Booking{}, domain.InternalError{Msg: "could not allocate a unique booking number", Err: err}
	}

	utils.LogEvent(s.RequestID, "bookings", "create",
		fmt.Sprintf("id=%d number=%s vehicle_id=%d", id, row.BookingNumber, vehicle.ID))

	return s.BookingRepo.GetByID(id)
}

// Quote is a price preview for a pickup/dropoff pair and vehicle class.
// DistanceKm stays nil when the provider cannot resolve a route; the price
// then falls back to the vehicle's base price.
type Quote struct {
	VehicleID       int64    `json:"vehicleId"`
	VehicleName     string   `json:"vehicleName"`
	DistanceKm      *float64 `json:"distanceKm"`
	DurationMinutes *float64 `json:"durationMinutes"`
	Price           float64  `json:"price"`
	Currency        string   `json:"currency"`
}

func (s BookingService) QuotePrice(ctx context.Context, origin, destination string, vehicleID int64) (Quote, error) {
	vehicle, err := s.VehicleRepo.GetByID(vehicleID)
	if err != nil {
		return Quote{}, err
	}

	quote := Quote{
		VehicleID:   vehicle.ID,
		VehicleName: vehicle.NameTR,
		Price:       vehicle.BasePrice,
		Currency:    "TRY",
	}

	if s.Distance == nil {
		return quote, nil
	}

	route, err := s.Distance.Route(ctx, origin, destination)
	if err != nil {
		// Provider failure is not a booking failure: quote at base price,
		// distance reported unknown.
		utils.LogEvent(s.RequestID, "bookings", "quote_fallback",
			fmt.Sprintf("vehicle_id=%d err=%v", vehicleID, err))
		return quote, nil
	}

	quote.DistanceKm = &route.DistanceKm
	quote.DurationMinutes = &route.DurationMinutes
	quote.Price = utils.ComputePrice(route.DistanceKm, vehicle.PricePerKm, vehicle.BasePrice)
	return quote, nil
}
