package api

import (
	"log"
	stdhttp "net/http"

	h "taxiops/internal/http/handlers"
	"taxiops/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(d h.Deps) *gin.Engine {
	h.Setup(d)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(d.Env.CORSOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)

		secured := api.Group("", middleware.RequireSession(d.Tokens))
		secured.GET("/routes", h.Routes)
		secured.GET("/nav", h.GetNav)
		secured.GET("/auth/me", h.Me)
		secured.POST("/admins", h.CreateAdmin)

		// Dashboard
		secured.GET("/dashboard", h.GetDashboard)
		secured.GET("/dashboard/ws", h.DashboardWS)
		secured.GET("/live-drivers", h.GetLiveDrivers)

		// Drivers
		drivers := secured.Group("/drivers")
		drivers.GET("", h.GetDrivers)
		drivers.GET("/export.csv", h.ExportDriversCSV)
		drivers.POST("", h.CreateDriver)
		drivers.PUT("/:id", h.UpdateDriver)

		// Vehicles
		vehicles := secured.Group("/vehicles")
		vehicles.GET("", h.GetVehicles)
		vehicles.GET("/export.csv", h.ExportVehiclesCSV)
		vehicles.POST("", h.CreateVehicle)
		vehicles.PUT("/:id", h.UpdateVehicle)

		// Assignments (Assign screen + Active Fleet)
		assignments := secured.Group("/assignments")
		assignments.GET("", h.GetActiveFleet)
		assignments.GET("/export.csv", h.ExportFleetCSV)
		assignments.POST("", h.AssignVehicle)
		assignments.PUT("/:driver_id/:vehicle_id", h.UpdateAssignment)

		// Fare settings
		settings := secured.Group("/settings")
		settings.GET("", h.GetSettings)
		settings.POST("", h.CreateSettings)
		settings.PUT("/:id", h.UpdateSettings)

		// Reports
		trips := secured.Group("/trips")
		trips.GET("", h.GetTrips)
		trips.GET("/export.csv", h.ExportTripsCSV)
		trips.GET("/:id/receipt.pdf", h.GetTripReceiptPDF)

		sessions := secured.Group("/sessions")
		sessions.GET("", h.GetSessionGroups)
		sessions.GET("/export.csv", h.ExportSessionsCSV)

		secured.POST("/avi/upload", h.UploadAVIReport)

		// Letters
		forms := secured.Group("/forms")
		forms.GET("", h.GetFormTypes)
		forms.POST("", h.GenerateForm)
	}

	h.SetRouter(r)
	return r
}
