package handlers

import (
	"net/http"

	"transfer-backend/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/airports serves reference data for the booking form's pickup picker.
func GetAirports(c *gin.Context) {
	repo := repositories.AirportRepository{}
	airports, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"airports": airports})
}
