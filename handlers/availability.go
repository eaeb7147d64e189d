package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"secretariat/middleware"
	"secretariat/services/booking"
	"secretariat/services/calendar"
	"secretariat/services/catalog"
	"secretariat/utils"
)

// AvailabilityHandler serves the schedule view and its data twin.
type AvailabilityHandler struct {
	Svc      booking.BookingService
	Catalog  catalog.Directory
	OAuth    *oauth2.Config
	Location *time.Location
}

func NewAvailabilityHandler(svc booking.BookingService, directory catalog.Directory, oauthCfg *oauth2.Config, loc *time.Location) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc, Catalog: directory, OAuth: oauthCfg, Location: loc}
}

// userSource builds the per-request user busy source from the session's
// credentials, degrading to the signed-out source.
func (h *AvailabilityHandler) userSource(c *gin.Context) (calendar.UserBusySource, bool) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		return calendar.SignedOutSource{}, false
	}
	source, err := calendar.NewGoogleCalendarSource(c.Request.Context(), h.OAuth, session.Token, h.Location)
	if err != nil {
		utils.GetLogger().Warn("Failed to build calendar client, acting signed-out", zap.Error(err))
		return calendar.SignedOutSource{}, false
	}
	return source, true
}

// GetAvailability renders the availability view model for one business,
// service and date. It backs both the schedule page and the data route;
// the computation is identical.
func (h *AvailabilityHandler) GetAvailability(c *gin.Context) {
	source, signedIn := h.userSource(c)
	view := h.Svc.RenderAvailability(c.Request.Context(), source, booking.AvailabilityRequest{
		BusinessID: c.Query("business"),
		ServiceID:  c.Query("service"),
		Date:       c.Query("date"),
		View:       c.DefaultQuery("view", "week"),
		SignedIn:   signedIn,
	})
	c.JSON(http.StatusOK, view)
}

// ListBusinesses returns the bookable catalog.
func (h *AvailabilityHandler) ListBusinesses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"businesses": h.Catalog.Businesses()})
}
