package handlers

import (
	"net/http"

	"transfer-backend/internal/domain/models"
	"transfer-backend/internal/http/middleware"
	"transfer-backend/internal/repositories"
	"transfer-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type vehiclePayload struct {
	Name            string  `json:"name" binding:"required,min=2"`
	NameTR          string  `json:"nameTr" binding:"required"`
	NameEN          string  `json:"nameEn" binding:"required"`
	NameRU          string  `json:"nameRu" binding:"required"`
	NameHI          string  `json:"nameHi" binding:"required"`
	Model           string  `json:"model"`
	DescriptionTR   string  `json:"descriptionTr"`
	DescriptionEN   string  `json:"descriptionEn"`
	DescriptionRU   string  `json:"descriptionRu"`
	DescriptionHI   string  `json:"descriptionHi"`
	Capacity        int     `json:"capacity" binding:"required,min=1,max=50"`
	LuggageCapacity int     `json:"luggageCapacity" binding:"min=0,max=50"`
	ImageURL        string  `json:"imageUrl"`
	PricePerKm      float64 `json:"pricePerKm" binding:"required,gt=0"`
	BasePrice       float64 `json:"basePrice" binding:"required,gt=0"`
}

// GET /api/vehicles?all=true. The public form gets active vehicles only;
// the back office passes all=true to include deactivated ones.
func GetVehicles(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	repo := repositories.VehicleRepository{}
	vehicles, err := repo.List(activeOnly)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicles": vehicles})
}

// GET /api/vehicles/:id
func GetVehicleByID(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	repo := repositories.VehicleRepository{}
	vehicle, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// POST /api/vehicles
func CreateVehicle(c *gin.Context) {
	var payload vehiclePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	repo := repositories.VehicleRepository{}
	id, err := repo.Create(models.Vehicle{
		Name:            payload.Name,
		NameTR:          payload.NameTR,
		NameEN:          payload.NameEN,
		NameRU:          payload.NameRU,
		NameHI:          payload.NameHI,
		Model:           payload.Model,
		DescriptionTR:   payload.DescriptionTR,
		DescriptionEN:   payload.DescriptionEN,
		DescriptionRU:   payload.DescriptionRU,
		DescriptionHI:   payload.DescriptionHI,
		Capacity:        payload.Capacity,
		LuggageCapacity: payload.LuggageCapacity,
		ImageURL:        payload.ImageURL,
		PricePerKm:      payload.PricePerKm,
		BasePrice:       payload.BasePrice,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	vehicle, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "vehicles", "create", vehicle.Name)
	c.JSON(http.StatusCreated, gin.H{"vehicle": vehicle})
}

// PATCH /api/vehicles/:id
func UpdateVehicle(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	var patch models.VehiclePatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	repo := repositories.VehicleRepository{}
	if err := repo.Patch(id, patch); err != nil {
		RespondDomainError(c, err)
		return
	}

	vehicle, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"vehicle": vehicle})
}

// DELETE /api/vehicles/:id hard-deletes unused vehicles, deactivates ones
// that bookings still reference.
func DeleteVehicle(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	repo := repositories.VehicleRepository{}
	softDeleted, err := repo.Remove(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	message := "vehicle deleted"
	if softDeleted {
		message = "vehicle deactivated, existing bookings reference it"
	}
	utils.LogEvent(middleware.GetRequestID(c), "vehicles", "delete", message)
	c.JSON(http.StatusOK, gin.H{"success": true, "deactivated": softDeleted, "message": message})
}
