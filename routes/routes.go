package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"secretariat/handlers"
	"secretariat/middleware"
)

// RegisterAuthRoutes registers the Google OAuth flow endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := r.Group("/auth")
	{
		auth.GET("/login", hb.Login)
		auth.GET("/callback", hb.Callback)
		auth.POST("/logout", hb.Logout)
	}
}

// RegisterScheduleRoutes registers availability endpoints. The data
// route is public (signed-out users see business-side availability);
// the schedule page requires a session.
func RegisterScheduleRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/businesses", hb.ListBusinesses)
		api.GET("/availability", hb.GetAvailability)
	}
	r.GET("/schedule", middleware.RequireSession(), hb.GetAvailability)
}

// RegisterBookingRoutes registers the booking commit endpoint.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.RequireSession())
		bookingGroup.POST("", hb.CommitBooking)
	}
}

// RegisterHomeRoutes registers the user's own calendar views.
func RegisterHomeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	home := r.Group("/home")
	{
		home.Use(middleware.RequireSession())
		home.GET("", hb.GetHome)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Secretariat"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterScheduleRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHomeRoutes(r, hb)
}
