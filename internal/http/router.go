package api

import (
	"log"
	stdhttp "net/http"

	intconfig "transfer-backend/internal/config"
	h "transfer-backend/internal/http/handlers"
	"transfer-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(),
		gin.Recovery(),
		middleware.CORS(env.CORSOrigins),
		middleware.Metrics(),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	requireAuth := middleware.RequireAuth(h.JWTSecret())

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Locale
		api.GET("/locale", h.GetLocale)
		api.POST("/locale", h.SetLocale)

		// Bookings. Creation and quoting are public (the booking form),
		// everything else is back office.
		bookings := api.Group("/bookings")
		bookings.POST("", h.CreateBooking)
		bookings.POST("/quote", h.QuoteBooking)
		bookings.GET("", requireAuth, h.GetBookings)
		bookings.GET("/:id", requireAuth, h.GetBookingByID)
		bookings.PATCH("/:id", requireAuth, h.UpdateBooking)
		bookings.DELETE("/:id", requireAuth, h.DeleteBooking)
		bookings.GET("/:id/voucher", requireAuth, h.GetBookingVoucherPDF)

		// Vehicles
		vehicles := api.Group("/vehicles")
		vehicles.GET("", h.GetVehicles)
		vehicles.GET("/:id", h.GetVehicleByID)
		vehicles.POST("", requireAuth, h.CreateVehicle)
		vehicles.PATCH("/:id", requireAuth, h.UpdateVehicle)
		vehicles.DELETE("/:id", requireAuth, h.DeleteVehicle)

		// Drivers (back office only)
		drivers := api.Group("/drivers", requireAuth)
		drivers.GET("", h.GetDrivers)
		drivers.POST("", h.CreateDriver)
		drivers.PATCH("/:id", h.UpdateDriver)
		drivers.DELETE("/:id", h.DeleteDriver)

		// Driver applications. Submission is public, review is not.
		applications := api.Group("/driver-applications")
		applications.POST("", h.CreateApplication)
		applications.GET("", requireAuth, h.GetApplications)
		applications.PATCH("/:id", requireAuth, h.UpdateApplication)
		applications.DELETE("/:id", requireAuth, h.DeleteApplication)

		// Contact messages. Submission is public, the inbox is not.
		contact := api.Group("/contact")
		contact.POST("", h.CreateContactMessage)
		contact.GET("", requireAuth, h.GetContactMessages)
		contact.PATCH("/:id", requireAuth, h.MarkContactMessageRead)
		contact.DELETE("/:id", requireAuth, h.DeleteContactMessage)

		// Hotels
		hotels := api.Group("/hotels")
		hotels.GET("", h.GetHotels)
		hotels.GET("/:id", h.GetHotelByID)
		hotels.POST("", requireAuth, h.CreateHotel)
		hotels.PATCH("/:id", requireAuth, h.UpdateHotel)
		hotels.DELETE("/:id", requireAuth, h.DeleteHotel)

		// Airports
		api.GET("/airports", h.GetAirports)

		// Dashboard
		api.GET("/stats", requireAuth, h.GetStats)
	}

	return r
}
