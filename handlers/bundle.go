package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every route handler for registration.
type HandlerBundle struct {
	// Auth flow.
	Login    gin.HandlerFunc
	Callback gin.HandlerFunc
	Logout   gin.HandlerFunc

	// Availability endpoints.
	GetAvailability gin.HandlerFunc
	ListBusinesses  gin.HandlerFunc

	// Booking endpoints.
	CommitBooking gin.HandlerFunc

	// Home calendar views.
	GetHome gin.HandlerFunc
}
