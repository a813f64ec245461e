package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"frontdesk-backend/config"
	"frontdesk-backend/controllers"
	"frontdesk-backend/repositories"
	"frontdesk-backend/routes"
	"frontdesk-backend/services"
	"frontdesk-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("ERROR: JWT_SECRET environment variable is not set.")
	}

	// The hotel operates in one time zone; "today" for check-in windows
	// and due-in promotion is computed against it.
	tz := utils.EnvOrDefault("HOTEL_TIMEZONE", "America/Los_Angeles")
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("ERROR: invalid HOTEL_TIMEZONE %q: %v", tz, err)
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied")

	roomRepo := repositories.NewRoomRepository(db)
	reservationRepo := repositories.NewReservationRepository(db)
	adminRepo := repositories.NewAdminRepository(db)

	jwtService := services.NewJWTService(jwtSecret, "frontdesk-backend")
	imageService := services.NewImageService(utils.EnvOrDefault("UPLOAD_DIR", "uploads"))
	availabilityService := services.NewAvailabilityService(roomRepo, reservationRepo)
	transitioner := services.NewTransitioner(roomRepo)
	roomService := services.NewRoomService(roomRepo, availabilityService, imageService)
	reservationService := services.NewReservationService(reservationRepo, roomRepo, availabilityService, transitioner, loc)
	adminService := services.NewAdminService(adminRepo, jwtService)

	roomController := controllers.NewRoomController(roomService)
	reservationController := controllers.NewReservationController(reservationService)
	adminController := controllers.NewAdminController(adminService)
	authController := controllers.NewAuthController(adminService)

	router := routes.SetupRouter(roomController, reservationController, adminController, authController, jwtService)

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
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
