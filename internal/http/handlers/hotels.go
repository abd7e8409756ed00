package handlers

import (
	"net/http"
	"strconv"

	"transfer-backend/internal/domain/models"
	"transfer-backend/internal/http/middleware"
	"transfer-backend/internal/repositories"
	"transfer-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type hotelPayload struct {
	Name        string  `json:"name" binding:"required,min=2"`
	Category    string  `json:"category" binding:"required"`
	Region      string  `json:"region" binding:"required"`
	Address     string  `json:"address"`
	Latitude    float64 `json:"latitude" binding:"required"`
	Longitude   float64 `json:"longitude" binding:"required"`
	Rating      float64 `json:"rating" binding:"omitempty,min=0,max=5"`
	ImageURL    string  `json:"imageUrl"`
	Phone       string  `json:"phone"`
	PriceRange  string  `json:"priceRange"`
	Description string  `json:"description"`
}

// GET /api/hotels?region=&category=&minRating=
func GetHotels(c *gin.Context) {
	minRating, _ := strconv.ParseFloat(c.Query("minRating"), 64)

	repo := repositories.HotelRepository{}
	hotels, err := repo.List(models.HotelFilter{
		Region:    c.Query("region"),
		Category:  c.Query("category"),
		MinRating: minRating,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hotels": hotels})
}

// GET /api/hotels/:id
func GetHotelByID(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	repo := repositories.HotelRepository{}
	hotel, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}

// POST /api/hotels
func CreateHotel(c *gin.Context) {
	var payload hotelPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	repo := repositories.HotelRepository{}
	id, err := repo.Create(models.Hotel{
		Name:        payload.Name,
		Category:    payload.Category,
		Region:      payload.Region,
		Address:     payload.Address,
		Latitude:    payload.Latitude,
		Longitude:   payload.Longitude,
		Rating:      payload.Rating,
		ImageURL:    payload.ImageURL,
		Phone:       payload.Phone,
		PriceRange:  payload.PriceRange,
		Description: payload.Description,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	hotel, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "hotels", "create", hotel.Name)
	c.JSON(http.StatusCreated, gin.H{"hotel": hotel})
}

// PATCH /api/hotels/:id
func UpdateHotel(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	var patch models.HotelPatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	repo := repositories.HotelRepository{}
	if err := repo.Patch(id, patch); err != nil {
		RespondDomainError(c, err)
		return
	}

	hotel, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"hotel": hotel})
}

// DELETE /api/hotels/:id is always a soft delete, the row stays for history.
func DeleteHotel(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	repo := repositories.HotelRepository{}
	if err := repo.Deactivate(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
