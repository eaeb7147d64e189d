package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"secretariat/middleware"
	"secretariat/models"
	"secretariat/services/booking"
	"secretariat/services/calendar"
	"secretariat/utils"
)

// BookingHandler exposes the booking commit operation.
type BookingHandler struct {
	Svc      booking.BookingService
	OAuth    *oauth2.Config
	Location *time.Location
}

func NewBookingHandler(svc booking.BookingService, oauthCfg *oauth2.Config, loc *time.Location) *BookingHandler {
	return &BookingHandler{Svc: svc, OAuth: oauthCfg, Location: loc}
}

// CommitBooking revalidates and commits one booking attempt. The route
// is session-guarded; commits always run against live credentials.
func (h *BookingHandler) CommitBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking request", err.Error())
		return
	}

	session, ok := middleware.SessionFrom(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "Sign in with Google to continue.", "")
		return
	}
	userCalendar, err := calendar.NewGoogleCalendarSource(c.Request.Context(), h.OAuth, session.Token, h.Location)
	if err != nil {
		utils.GetLogger().Error("Failed to build calendar client for commit", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Calendar provider unavailable", err.Error())
		return
	}

	confirmation, err := h.Svc.Commit(c.Request.Context(), userCalendar, req)
	if err != nil {
		switch booking.ErrorCode(err) {
		case booking.CodeInvalidSlot:
			utils.JSONError(c, http.StatusBadRequest, "Invalid slot", err.Error())
		case booking.CodeSlotTaken:
			utils.JSONError(c, http.StatusConflict, "Slot no longer available", err.Error())
		case booking.CodeProviderError:
			utils.JSONError(c, http.StatusBadGateway, "Calendar provider error", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Booking failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, confirmation)
}
