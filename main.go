package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"garagehub/config"
	"garagehub/database"
	garageRepoPkg "garagehub/database/repository/garage"
	reservationRepoPkg "garagehub/database/repository/reservation"
	userRepoPkg "garagehub/database/repository/user"
	"garagehub/handlers"
	"garagehub/middleware"
	"garagehub/routes"
	"garagehub/services/booking"
	garageSvc "garagehub/services/garage"
	"garagehub/services/sweeper"
	userSvc "garagehub/services/user"
	"garagehub/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	garageRepo := garageRepoPkg.NewMongoGarageRepo()
	reservationRepo := reservationRepoPkg.NewMongoReservationRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	for name, ensure := range map[string]func() error{
		"garages":      garageRepo.EnsureIndexes,
		"reservations": reservationRepo.EnsureIndexes,
		"users":        userRepo.EnsureIndexes,
	} {
		if err := ensure(); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure %s indexes: %v", name, err)
		}
	}

	// services.
	cache := utils.GetCacheClient()
	bookingService := &booking.DefaultBookingService{
		GarageRepo:      garageRepo,
		ReservationRepo: reservationRepo,
		Cache:           cache,
	}
	garageService := &garageSvc.DefaultGarageService{
		Repo:  garageRepo,
		Cache: cache,
	}
	userService := &userSvc.DefaultUserService{
		Repo: userRepo,
	}

	// Slot sweeper: hourly maintenance with process lifetime.
	slotSweeper := &sweeper.Sweeper{
		Garages:      garageRepo,
		Reservations: reservationRepo,
		Cache:        cache,
	}
	if err := slotSweeper.Start(config.AppConfig.SweepSchedule); err != nil {
		logger.Sugar().Fatalf("main: failed to start slot sweeper: %v", err)
	}

	utils.StartHealthMonitor(cache, database.MongoClient)

	// handlers and routes.
	h := &routes.Handlers{
		Auth:        handlers.NewAuthHandler(userService),
		Garage:      handlers.NewGarageHandler(garageService, bookingService),
		Reservation: handlers.NewReservationHandler(bookingService),
	}
	routes.RegisterRoutes(router, h)

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

	slotSweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
