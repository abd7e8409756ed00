package handlers

import (
	"net/http"

	"transfer-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/stats assembles the admin dashboard snapshot.
func GetStats(c *gin.Context) {
	svc := services.StatsService{}
	snapshot, err := svc.GetDashboard(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}
