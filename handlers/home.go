package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"secretariat/middleware"
	"secretariat/services/calendar"
	"secretariat/services/schedule"
	"secretariat/utils"
)

// HomeHandler renders the signed-in user's own calendar as week columns
// or a month grid. Display only; conflict logic never reads these.
type HomeHandler struct {
	OAuth    *oauth2.Config
	Location *time.Location
}

func NewHomeHandler(oauthCfg *oauth2.Config, loc *time.Location) *HomeHandler {
	return &HomeHandler{OAuth: oauthCfg, Location: loc}
}

// GetHome serves the home calendar view. Routes guard it with
// RequireSession, so a session is always present here.
func (h *HomeHandler) GetHome(c *gin.Context) {
	logger := utils.GetLogger()

	session, _ := middleware.SessionFrom(c)
	source, err := calendar.NewGoogleCalendarSource(c.Request.Context(), h.OAuth, session.Token, h.Location)
	if err != nil {
		logger.Error("Failed to build calendar client for home view", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Calendar provider unavailable", err.Error())
		return
	}

	now := time.Now().In(h.Location)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.Location)

	anchor := today
	if start := c.Query("start"); start != "" {
		if parsed, err := utils.ParseDate(start, h.Location); err == nil {
			anchor = parsed
		} else {
			logger.Warn("Malformed home start date, defaulting to today",
				zap.String("start", start), zap.Error(err))
		}
	}

	view := c.DefaultQuery("view", "week")
	from, to := homeWindow(anchor, view, h.Location)

	events, calendarName, err := source.ListEvents(c.Request.Context(), from, to)
	var notice string
	if err != nil {
		logger.Warn("User calendar read failed for home view", zap.Error(err))
		notice = "We couldn't load your calendar right now."
		events = nil
	}

	if view == "month" {
		c.JSON(http.StatusOK, gin.H{
			"view":         "month",
			"calendarName": calendarName,
			"notice":       notice,
			"month":        schedule.EventsMonthGrid(h.Location, anchor, today, events),
		})
		return
	}

	weekStart := schedule.MondayOf(anchor)
	c.JSON(http.StatusOK, gin.H{
		"view":         "week",
		"calendarName": calendarName,
		"notice":       notice,
		"weekStart":    weekStart.Format("2006-01-02"),
		"columns":      schedule.WeekColumns(weekStart, today, events),
	})
}

// homeWindow is the event range one home render needs.
func homeWindow(anchor time.Time, view string, loc *time.Location) (time.Time, time.Time) {
	if view == "month" {
		first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, loc)
		last := first.AddDate(0, 1, -1)
		return schedule.MondayOf(first), schedule.MondayOf(last).AddDate(0, 0, 7)
	}
	weekStart := schedule.MondayOf(anchor)
	return weekStart, weekStart.AddDate(0, 0, 7)
}
