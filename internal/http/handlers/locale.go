package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	localeCookie = "locale"
	localeMaxAge = 365 * 24 * 60 * 60
)

type localePayload struct {
	Locale string `json:"locale" binding:"required"`
}

// GET /api/locale returns the active locale, falling back to Turkish.
func GetLocale(c *gin.Context) {
	locale, err := c.Cookie(localeCookie)
	if err != nil || !validLocale(locale) {
		locale = localeList[0]
	}
	c.JSON(http.StatusOK, gin.H{"locale": locale, "supported": localeList})
}

// POST /api/locale persists the visitor's language choice for a year.
func SetLocale(c *gin.Context) {
	var payload localePayload
	if !BindJSONOrError(c, &payload) {
		return
	}

	if !validLocale(payload.Locale) {
		RespondError(c, http.StatusBadRequest, "unsupported locale", nil)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(localeCookie, payload.Locale, localeMaxAge, "/", "", false, false)
	c.JSON(http.StatusOK, gin.H{"locale": payload.Locale})
}

func validLocale(locale string) bool {
	for _, l := range localeList {
		if l == locale {
			return true
		}
	}
	return false
}
