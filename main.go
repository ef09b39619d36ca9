package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-admin-backend/config"
	"hotel-admin-backend/controllers"
	"hotel-admin-backend/directory"
	"hotel-admin-backend/logger"
	"hotel-admin-backend/routes"
	"hotel-admin-backend/services"
	"hotel-admin-backend/workflow"
)

func main() {
	// .env is optional
	envMissing := godotenv.Load() != nil
	logger.Init()
	if envMissing {
		logger.L().Info(".env not found; continuing with environment variables")
	}

	if err := config.ConnectDatabase(); err != nil {
		logger.L().WithError(err).Fatal("database connect failed")
	}
	db := config.DB
	logger.L().Info("database connected, migrations applied")

	guestService := services.NewGuestService(db)
	roomService := services.NewRoomService(db)
	reservationService := services.NewReservationService(db)
	seasonService := services.NewSeasonService(db)
	dashboardService := services.NewDashboardService(db)

	// The wizard talks to the booking directory of this process unless a
	// remote directory URL is configured.
	var dir workflow.Directory = directory.NewLocal(guestService, reservationService, roomService)
	if base := strings.TrimSpace(os.Getenv("DIRECTORY_URL")); base != "" {
		dir = directory.NewClient(base)
		logger.L().WithField("url", base).Info("using remote booking directory")
	}

	guestController := controllers.NewGuestController(guestService)
	roomController := controllers.NewRoomController(roomService)
	reservationController := controllers.NewReservationController(reservationService)
	seasonController := controllers.NewSeasonController(seasonService)
	dashboardController := controllers.NewDashboardController(dashboardService)
	calendarController := controllers.NewCalendarController(reservationService)
	wizardController := controllers.NewWizardController(dir)

	router := routes.SetupRouter(
		guestController,
		roomController,
		reservationController,
		seasonController,
		dashboardController,
		calendarController,
		wizardController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().WithField("addr", addr).Info("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().WithError(err).Fatal("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.L().Info("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().WithError(err).Fatal("forced shutdown")
	}

	logger.L().Info("server stopped")
}
