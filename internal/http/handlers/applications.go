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

type applicationPayload struct {
	Name            string `json:"name" binding:"required,min=2"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"required,min=10"`
	ExperienceYears int    `json:"experienceYears" binding:"min=0,max=60"`
	LicenseType     string `json:"licenseType" binding:"required"`
	HasOwnVehicle   bool   `json:"hasOwnVehicle"`
	VehicleType     string `json:"vehicleType"`
	City            string `json:"city" binding:"required"`
	Message         string `json:"message"`
}

// GET /api/driver-applications
func GetApplications(c *gin.Context) {
	repo := repositories.ApplicationRepository{}
	applications, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"applications": applications})
}

// POST /api/driver-applications handles the public "drive with us" form.
func CreateApplication(c *gin.Context) {
	var payload applicationPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	repo := repositories.ApplicationRepository{}
	id, err := repo.Create(models.DriverApplication{
		Name:            payload.Name,
		Email:           payload.Email,
		Phone:           payload.Phone,
		ExperienceYears: payload.ExperienceYears,
		LicenseType:     payload.LicenseType,
		HasOwnVehicle:   payload.HasOwnVehicle,
		VehicleType:     payload.VehicleType,
		City:            payload.City,
		Message:         payload.Message,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	application, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "applications", "create", "city="+application.City)
	c.JSON(http.StatusCreated, gin.H{"application": application})
}

type applicationStatusPayload struct {
	Status string  `json:"status" binding:"required"`
	Notes  *string `json:"notes"`
}

// PATCH /api/driver-applications/:id records the admin review decision.
func UpdateApplication(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	var payload applicationStatusPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	if !domain.ValidApplicationStatus(payload.Status) {
		RespondError(c, http.StatusBadRequest, "invalid status", nil)
		return
	}

	repo := repositories.ApplicationRepository{}
	if err := repo.SetStatus(id, payload.Status, payload.Notes); err != nil {
		RespondDomainError(c, err)
		return
	}

	application, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "applications", "set_status", payload.Status)
	c.JSON(http.StatusOK, gin.H{"application": application})
}

// DELETE /api/driver-applications/:id
func DeleteApplication(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	repo := repositories.ApplicationRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
