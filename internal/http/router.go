package api

import (
	"log"
	stdhttp "net/http"

	intconfig "railway-backend/internal/config"
	h "railway-backend/internal/http/handlers"
	"railway-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.OPTIONS("/*path", func(c *gin.Context) { c.AbortWithStatus(stdhttp.StatusNoContent) })

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route tidak ditemukan",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Train search is open to unauthenticated clients.
		api.GET("/search", h.SearchTrains)

		// Booking flow
		authed := api.Group("")
		authed.Use(middleware.RequireAuth(env.JWTSecret))
		{
			authed.POST("/bookings", h.CreateBooking)
			authed.GET("/bookings/my", h.MyBookings)
			authed.GET("/tickets/:pnr", h.ViewTicket)
			authed.PUT("/tickets/:pnr/cancel", h.CancelTicket)
			authed.GET("/tickets/:pnr/e-ticket", h.TicketETicketPDF)
		}

		// Master data and reports (admin)
		admin := api.Group("")
		admin.Use(middleware.RequireAuth(env.JWTSecret), middleware.RequireRoles("admin"))
		{
			trains := admin.Group("/trains")
			trains.GET("", h.GetTrains)
			trains.GET("/:id", h.GetTrainByID)
			trains.POST("", h.CreateTrain)
			trains.PUT("/:id", h.UpdateTrain)
			trains.DELETE("/:id", h.DeleteTrain)

			stations := admin.Group("/stations")
			stations.GET("", h.GetStations)
			stations.GET("/:id", h.GetStationByID)
			stations.POST("", h.CreateStation)
			stations.PUT("/:id", h.UpdateStation)
			stations.DELETE("/:id", h.DeleteStation)

			fares := admin.Group("/fares")
			fares.GET("", h.GetFares)
			fares.POST("", h.CreateFare)
			fares.PUT("/:id", h.UpdateFare)
			fares.DELETE("/:id", h.DeleteFare)

			schedules := admin.Group("/schedules")
			schedules.GET("", h.GetSchedules)
			schedules.POST("", h.CreateSchedule)
			schedules.DELETE("/:id", h.DeleteSchedule)

			users := admin.Group("/users")
			users.GET("", h.GetUsers)
			users.POST("", h.CreateUser)
			users.PUT("/:id", h.UpdateUser)
			users.DELETE("/:id", h.DeleteUser)

			reports := admin.Group("/reports")
			reports.GET("/tickets", h.TicketReport)
			reports.GET("/tickets/csv", h.TicketReportCSV)
		}
	}

	return r
}
