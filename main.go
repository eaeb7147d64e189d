// File: secretariat/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gcal "google.golang.org/api/calendar/v3"

	"secretariat/config"
	"secretariat/handlers"
	"secretariat/middleware"
	"secretariat/routes"
	"secretariat/services/booking"
	"secretariat/services/calendar"
	"secretariat/services/catalog"
	"secretariat/services/schedule"
	"secretariat/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	sessionClient := utils.GetSessionClient()

	loc := utils.ResolveSchedulingTimezone(config.AppConfig.SchedulingTimezone)
	oauthCfg := &oauth2.Config{
		ClientID:     config.AppConfig.GoogleClientID,
		ClientSecret: config.AppConfig.GoogleClientSecret,
		RedirectURL:  config.AppConfig.OAuthRedirectURL,
		Scopes:       []string{gcal.CalendarReadonlyScope, gcal.CalendarEventsScope},
		Endpoint:     google.Endpoint,
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(middleware.SessionMiddleware(sessionClient))

	// Scheduling engine over the static business template and catalog.
	directory := catalog.NewStaticDirectory()
	engine := &schedule.Engine{
		BusinessBusy: calendar.NewTemplateBusySource(loc),
		Location:     loc,
	}
	bookingService := &booking.DefaultBookingService{
		Catalog:  directory,
		Engine:   engine,
		Location: loc,
	}

	authHandler := handlers.NewAuthHandler(oauthCfg, sessionClient)
	availabilityHandler := handlers.NewAvailabilityHandler(bookingService, directory, oauthCfg, loc)
	bookingHandler := handlers.NewBookingHandler(bookingService, oauthCfg, loc)
	homeHandler := handlers.NewHomeHandler(oauthCfg, loc)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Login:    authHandler.Login,
		Callback: authHandler.Callback,
		Logout:   authHandler.Logout,

		GetAvailability: availabilityHandler.GetAvailability,
		ListBusinesses:  availabilityHandler.ListBusinesses,

		CommitBooking: bookingHandler.CommitBooking,

		GetHome: homeHandler.GetHome,
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
