package main

import (
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"backoffice/internal/database"
	"backoffice/internal/middleware"
	"backoffice/internal/modules/auth"
	"backoffice/internal/modules/events"
	"backoffice/internal/modules/hotel"
	"backoffice/internal/modules/library"
	"backoffice/internal/modules/training"
	jwtsvc "backoffice/internal/pkg/jwt"
	"backoffice/internal/repository"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "backoffice.db"
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	hotelServiceRepo := repository.NewHotelServiceRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	bookRepo := repository.NewBookRepository(db)
	loanRepo := repository.NewLoanRepository(db)
	classRepo := repository.NewClassRepository(db)
	trainingRepo := repository.NewTrainingRepository(db)

	j := jwtsvc.New(secret, 24*time.Hour)
	hub := events.NewHub()

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	hotelService := hotel.NewService(bookingRepo, roomRepo, customerRepo, hotelServiceRepo, hub)
	hotelHandler := hotel.NewHandler(hotelService)

	libraryService := library.NewService(bookRepo, loanRepo, hub)
	libraryHandler := library.NewHandler(libraryService)

	trainingService := training.NewService(classRepo, trainingRepo, hub)
	trainingHandler := training.NewHandler(trainingService)

	eventsHandler := events.NewHandler(hub)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterPublicRoutes(v1)
		hotelHandler.RegisterRoutes(v1)
		libraryHandler.RegisterRoutes(v1)
		trainingHandler.RegisterRoutes(v1)
		eventsHandler.RegisterRoutes(v1)

		// protected writes
		protected := v1.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			hotelHandler.RegisterProtectedRoutes(protected)
			libraryHandler.RegisterProtectedRoutes(protected)
			trainingHandler.RegisterProtectedRoutes(protected)
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
