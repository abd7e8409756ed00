package handlers

import (
	"net/http"

	"transfer-backend/internal/domain"
	"transfer-backend/internal/domain/models"
	"transfer-backend/internal/http/middleware"
	"transfer-backend/internal/repositories"
	"transfer-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type driverPayload struct {
	Name          string `json:"name" binding:"required,min=2"`
	Phone         string `json:"phone" binding:"required,min=10"`
	Email         string `json:"email" binding:"omitempty,email"`
	LicenseNumber string `json:"licenseNumber" binding:"required"`
	VehicleID     *int64 `json:"vehicleId"`
}

// GET /api/drivers?all=true
func GetDrivers(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	repo := repositories.DriverRepository{}
	drivers, err := repo.List(activeOnly)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"drivers": drivers})
}

// POST /api/drivers
func CreateDriver(c *gin.Context) {
	var payload driverPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	repo := repositories.DriverRepository{}
	id, err := repo.Create(models.Driver{
		Name:          payload.Name,
		Phone:         payload.Phone,
		Email:         payload.Email,
		LicenseNumber: payload.LicenseNumber,
		VehicleID:     payload.VehicleID,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	driver, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "drivers", "create", driver.Name)
	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

// PATCH /api/drivers/:id. A vehicleId of 0 clears the vehicle assignment.
func UpdateDriver(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	var patch models.DriverPatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	if patch.Status != nil && !domain.ValidDriverStatus(*patch.Status) {
		RespondError(c, http.StatusBadRequest, "invalid status", nil)
		return
	}

	repo := repositories.DriverRepository{}
	if err := repo.Patch(id, patch); err != nil {
		RespondDomainError(c, err)
		return
	}

	driver, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"driver": driver})
}

// DELETE /api/drivers/:id
func DeleteDriver(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	repo := repositories.DriverRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
