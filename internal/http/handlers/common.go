package handlers

import (
	"net/http"
	"strconv"

	"transfer-backend/internal/config"
	"transfer-backend/internal/domain"
	"transfer-backend/internal/http/middleware"
	"transfer-backend/internal/integrations/distance"
	"transfer-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

var (
	jwtSecret      []byte
	distanceClient *distance.Client
	localeList     = []string{"tr", "en", "ru", "hi"}
)

// Init wires env-derived state the package-level handlers need.
func Init(env config.Env) {
	jwtSecret = []byte(env.JWTSecret)
	if env.DistanceAPIURL != "" {
		distanceClient = distance.NewClient(env.DistanceAPIURL, 0)
	}
}

// JWTSecret exposes the configured signing key for the auth middleware.
func JWTSecret() []byte {
	return jwtSecret
}

// RespondError sends the standard error payload with request_id included.
func RespondError(c *gin.Context, status int, message string, err error) {
	payload := gin.H{
		"error":      message,
		"request_id": middleware.GetRequestID(c),
	}
	if err != nil && status < http.StatusInternalServerError {
		payload["detail"] = err.Error()
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. Internal detail
// never leaks past this point.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	case domain.IsConflict(err):
		RespondError(c, http.StatusConflict, err.Error(), nil)
	case domain.IsUnauthorized(err):
		RespondError(c, http.StatusUnauthorized, err.Error(), nil)
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "internal_error", err.Error())
		RespondError(c, http.StatusInternalServerError, "an unexpected error occurred", nil)
	}
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError[T any](c *gin.Context, dst *T) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "empty body", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid payload", err)
		return false
	}
	return true
}

// IDParam parses the :id path parameter, responding 400 on garbage.
func IDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, http.StatusBadRequest, "invalid id", nil)
		return 0, false
	}
	return id, true
}
