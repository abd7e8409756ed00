package handlers

import (
	"net/http"

	"transfer-backend/internal/domain/models"
	"transfer-backend/internal/http/middleware"
	"transfer-backend/internal/repositories"
	"transfer-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

type contactPayload struct {
	Name    string `json:"name" binding:"required,min=2"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required,min=2"`
	Message string `json:"message" binding:"required,min=5"`
}

// GET /api/contact
func GetContactMessages(c *gin.Context) {
	repo := repositories.MessageRepository{}
	messages, err := repo.List()
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// POST /api/contact handles the public contact form.
func CreateContactMessage(c *gin.Context) {
	var payload contactPayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	repo := repositories.MessageRepository{}
	id, err := repo.Create(models.ContactMessage{
		Name:    payload.Name,
		Email:   payload.Email,
		Phone:   payload.Phone,
		Subject: payload.Subject,
		Message: payload.Message,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	message, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "contact", "create", "subject="+message.Subject)
	c.JSON(http.StatusCreated, gin.H{"message": message})
}

// PATCH /api/contact/:id marks the message as read.
func MarkContactMessageRead(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	repo := repositories.MessageRepository{}
	if err := repo.MarkRead(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	message, err := repo.GetByID(id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": message})
}

// DELETE /api/contact/:id
func DeleteContactMessage(c *gin.Context) {
	id, ok := IDParam(c)
	if !ok {
		return
	}

	repo := repositories.MessageRepository{}
	if err := repo.Delete(id); err != nil {
		RespondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
