package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"luminavenues/internal/catalog"
	"luminavenues/internal/concierge"
	"luminavenues/internal/config"
	"luminavenues/internal/database"
	"luminavenues/internal/middleware"
	bookingmod "luminavenues/internal/modules/booking"
	browsemod "luminavenues/internal/modules/browse"
	catalogmod "luminavenues/internal/modules/catalog"
	"luminavenues/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal(err)
	}

	venues := catalog.NewSeeded()
	log.Printf("catalog seeded venues=%d", venues.Len())

	bookingRepo := repository.NewBookingRepository(db)

	recommender := concierge.New(concierge.Config{
		APIKey:  cfg.GeminiAPIKey,
		Model:   cfg.GeminiModel,
		BaseURL: cfg.GeminiBaseURL,
	})
	if cfg.GeminiAPIKey == "" {
		log.Println("GEMINI_API_KEY not set: concierge search will answer as unavailable")
	}

	catalogService := catalogmod.NewService(venues)
	catalogHandler := catalogmod.NewHandler(catalogService)

	hub := browsemod.NewHub()
	browseService := browsemod.NewService(venues, recommender, hub, cfg.SessionTTL)
	defer browseService.Close()
	browseHandler := browsemod.NewHandler(browseService, hub)

	bookingService := bookingmod.NewService(venues, bookingRepo, cfg.PaymentDelay, cfg.SessionTTL)
	defer bookingService.Shutdown()
	bookingHandler := bookingmod.NewHandler(bookingService)

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		catalogHandler.RegisterRoutes(v1)
		browseHandler.RegisterRoutes(v1)
		bookingHandler.RegisterRoutes(v1)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
