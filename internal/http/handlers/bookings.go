package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"transfer-backend/internal/domain"
	"transfer-backend/internal/domain/models"
	"transfer-backend/internal/http/middleware"
	"transfer-backend/internal/repositories"
	"transfer-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type bookingPayload struct {
	CustomerName    string `json:"customerName" binding:"required,min=2"`
	CustomerEmail   string `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string `json:"customerPhone" binding:"required,min=10"`
	PickupLocation  string `json:"pickupLocation" binding:"required"`
	DropoffLocation string `json:"dropoffLocation" binding:"required"`
	PickupDate      string `json:"pickupDate" binding:"required"`
	PickupTime      string `json:"pickupTime" binding:"required"`
	Passengers      int    `json:"passengers" binding:"required,min=1,max=50"`
	Luggage         int    `json:"luggage" binding:"min=0,max=50"`
	VehicleID       int64  `json:"vehicleId" binding:"required,min=1"`
	Notes           string `json:"notes"`
}

// GET /api/bookings?status=pending&limit=50&offset=0
func GetBookings(c *gin.Context) {
	status := strings.TrimSpace(c.Query("status"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	repo := repositories.BookingRepository{}
	bookings, total, err := repo.List(status, limit, offset)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings, "total": total})
}

// POST /api/bookings
func CreateBooking(c *gin.Context) {
	var payload bookingPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	svc := services.BookingService{
		Distance:  distanceClient,
		RequestID: middleware.GetRequestID(c),
	}
	booking, err := svc.Create(services.BookingInput{
		CustomerName:    strings.TrimSpace(payload.CustomerName),
		CustomerEmail:   strings.TrimSpace(payload.CustomerEmail),
		CustomerPhone:   strings.TrimSpace(payload.CustomerPhone),
		PickupLocation:  strings.TrimSpace(payload.PickupLocation),
		DropoffLocation: strings.TrimSpace(payload.DropoffLocation),
		PickupDate:      payload.PickupDate,
		PickupTime:      payload.PickupTime,
		Passengers:      payload.Passengers,
		Luggage:         payload.Luggage,
		VehicleID:       payload.VehicleID,
		Notes:           strings.TrimSpace(payload.Notes),
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"booking": booking, "bookingNumber": booking.BookingNumber})
}

// GET /api/bookings/:id
func GetBookingByID(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	repo := repositories.BookingRepository{}
	booking, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// PATCH /api/bookings/:id patches status, driver assignment or payment
// status; the first field present wins.
func UpdateBooking(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	var patch models.BookingPatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	if patch.Status != nil && !domain.ValidBookingStatus(*patch.Status) {
		RespondError(c, http.StatusBadRequest, "invalid status", nil)
		return
	}
	if patch.PaymentStatus != nil && !domain.ValidPaymentStatus(*patch.PaymentStatus) {
		RespondError(c, http.StatusBadRequest, "invalid payment status", nil)
		return
	}

	repo := repositories.BookingRepository{}
	if err := repo.Patch(id, patch); err != nil {
		RespondDomainError(c, err)
		return
	}

	booking, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// DELETE /api/bookings/:id
func DeleteBooking(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	repo := repositories.BookingRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type quotePayload struct {
	PickupLocation  string `json:"pickupLocation" binding:"required"`
	DropoffLocation string `json:"dropoffLocation" binding:"required"`
	VehicleID       int64  `json:"vehicleId" binding:"required,min=1"`
}

// POST /api/bookings/quote gives a price preview via the distance provider, with a
// base-price fallback when the route cannot be resolved.
func QuoteBooking(c *gin.Context) {
	var payload quotePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	svc := services.BookingService{
		Distance:  distanceClient,
		RequestID: middleware.GetRequestID(c),
	}
	quote, err := svc.QuotePrice(c.Request.Context(),
		strings.TrimSpace(payload.PickupLocation),
		strings.TrimSpace(payload.DropoffLocation),
		payload.VehicleID,
	)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, quote)
}

// GET /api/bookings/:id/voucher
func GetBookingVoucherPDF(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	pdf, filename, err := svc.GenerateVoucher(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
